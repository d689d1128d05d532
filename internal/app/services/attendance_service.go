package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/helpers"
)

// attendanceStore is the slice of the attendance repository this service needs
type attendanceStore interface {
	UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) error
	ListAttendanceByDate(ctx context.Context, date time.Time) ([]*models.AttendanceRecord, error)
	ListAttendanceByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error)
}

// attendanceUserStore verifies that the marked user is really a student
type attendanceUserStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// AttendanceService handles daily attendance marks
type AttendanceService struct {
	store     attendanceStore
	userStore attendanceUserStore
	logger    zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(store attendanceStore, userStore attendanceUserStore, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		store:     store,
		userStore: userStore,
		logger:    logger,
	}
}

// MarkAttendance records a status for one student and date. Marking the
// same pair again overwrites the earlier status rather than failing.
func (s *AttendanceService) MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	date, err := helpers.DateOnly(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	user, err := s.userStore.GetUserByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, apperrors.NewValidationError("attendance can only be marked for students")
	}

	record := &models.AttendanceRecord{
		StudentID: req.StudentID,
		Date:      date,
		Status:    req.Status,
	}

	if err := s.store.UpsertAttendance(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", record.StudentID).
		Str("date", req.Date).
		Str("status", string(record.Status)).
		Msg("Attendance marked")

	return record, nil
}

// GetAttendanceByDate lists every student's mark for one date
func (s *AttendanceService) GetAttendanceByDate(ctx context.Context, dateStr string) ([]*models.AttendanceRecord, error) {
	date, err := helpers.DateOnly(dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return s.store.ListAttendanceByDate(ctx, date)
}

// GetAttendanceByStudent lists one student's attendance history
func (s *AttendanceService) GetAttendanceByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	return s.store.ListAttendanceByStudent(ctx, studentID)
}
