package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	RoomRepository         *RoomRepository
	AnnouncementRepository *AnnouncementRepository
	AttendanceRepository   *AttendanceRepository
	ComplaintRepository    *ComplaintRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		RoomRepository:         NewRoomRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		ComplaintRepository:    NewComplaintRepository(db),
	}
}
