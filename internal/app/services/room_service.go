package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
)

// roomStore is the slice of the room repository the room service needs
type roomStore interface {
	CreateRoom(ctx context.Context, room *models.Room) (int64, error)
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	ListRooms(ctx context.Context, hostel string) ([]*models.Room, error)
	ListAvailableRooms(ctx context.Context) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id int64) error
	AddStudent(ctx context.Context, roomID int64, student *models.RoomStudent) error
	RemoveStudent(ctx context.Context, roomID, studentID int64) error
}

// RoomService handles rooms and their occupancy
type RoomService struct {
	roomStore roomStore
	logger    zerolog.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(roomStore roomStore, logger zerolog.Logger) *RoomService {
	return &RoomService{
		roomStore: roomStore,
		logger:    logger,
	}
}

// CreateRoom adds a new empty room
func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		RoomNumber: req.RoomNumber,
		Hostel:     req.Hostel,
		Capacity:   req.Capacity,
		Occupied:   0,
	}

	if _, err := s.roomStore.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomID", room.ID).Str("roomNumber", room.RoomNumber).Str("hostel", room.Hostel).Msg("Room created")
	return room, nil
}

// GetRooms lists rooms, optionally filtered by hostel
func (s *RoomService) GetRooms(ctx context.Context, hostel string) ([]*models.Room, error) {
	return s.roomStore.ListRooms(ctx, hostel)
}

// GetAvailableRooms lists rooms with at least one free place
func (s *RoomService) GetAvailableRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomStore.ListAvailableRooms(ctx)
}

// GetRoom retrieves a room with its roster
func (s *RoomService) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomStore.GetRoomByID(ctx, id)
}

// GetRoomStudents lists a room's roster. The room must exist.
func (s *RoomService) GetRoomStudents(ctx context.Context, id int64) ([]models.RoomStudent, error) {
	room, err := s.roomStore.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return room.Students, nil
}

// UpdateRoom overwrites a room's number, capacity and hostel. Occupancy is
// left alone, and the new capacity is not checked against the current
// occupancy; a room can end up over capacity until students are removed.
func (s *RoomService) UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		ID:         id,
		RoomNumber: req.RoomNumber,
		Hostel:     req.Hostel,
		Capacity:   req.Capacity,
	}

	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomID", id).Msg("Room updated")
	return s.roomStore.GetRoomByID(ctx, id)
}

// DeleteRoom removes a room and its roster entries
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.roomStore.DeleteRoom(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("roomID", id).Msg("Room deleted")
	return nil
}

// AddStudent places a student into a room. The placement fails if the room
// is already at capacity.
func (s *RoomService) AddStudent(ctx context.Context, roomID int64, req *dto.AddRoomStudentRequest) (*models.Room, error) {
	student := &models.RoomStudent{
		RollNumber: req.RollNumber,
		Name:       req.Name,
	}

	if err := s.roomStore.AddStudent(ctx, roomID, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomID", roomID).Str("rollNumber", student.RollNumber).Msg("Student added to room")
	return s.roomStore.GetRoomByID(ctx, roomID)
}

// RemoveStudent removes a roster entry and recounts occupancy
func (s *RoomService) RemoveStudent(ctx context.Context, roomID, studentID int64) (*models.Room, error) {
	if err := s.roomStore.RemoveStudent(ctx, roomID, studentID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomID", roomID).Int64("entryID", studentID).Msg("Student removed from room")
	return s.roomStore.GetRoomByID(ctx, roomID)
}
