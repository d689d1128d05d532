// Services defined in this package:
// - AuthService: registration and login
// - UserService: user administration
// - RoomService: rooms and occupancy
// - AnnouncementService: announcements and the live feed
// - AttendanceService: daily attendance marks
// - ComplaintService: complaint lifecycle
//
// Each service depends on a narrow store interface satisfied by the
// concrete repository, so unit tests can substitute in-memory fakes.
package services
