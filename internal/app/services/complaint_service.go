package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
)

// complaintStore is the slice of the complaint repository this service needs
type complaintStore interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	ListComplaints(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
	DeleteComplaint(ctx context.Context, id int64) error
}

// ComplaintService handles the complaint lifecycle
type ComplaintService struct {
	store  complaintStore
	logger zerolog.Logger
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(store complaintStore, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		store:  store,
		logger: logger,
	}
}

// CreateComplaint files a complaint on behalf of the authenticated student
func (s *ComplaintService) CreateComplaint(ctx context.Context, studentID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.store.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("complaintID", complaint.ID).Int64("studentID", studentID).Msg("Complaint filed")
	return complaint, nil
}

// GetComplaints lists complaints. Students see only their own; admins and
// wardens see everything, optionally narrowed to one student.
func (s *ComplaintService) GetComplaints(ctx context.Context, requesterID int64, requesterRole models.Role, filterStudentID int64) ([]*models.Complaint, error) {
	if requesterRole == models.RoleStudent {
		return s.store.ListComplaints(ctx, requesterID)
	}
	return s.store.ListComplaints(ctx, filterStudentID)
}

// UpdateComplaintStatus transitions a complaint between pending and resolved
func (s *ComplaintService) UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error) {
	if err := s.store.UpdateComplaintStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("complaintID", id).Str("status", string(status)).Msg("Complaint status updated")
	return s.store.GetComplaintByID(ctx, id)
}

// DeleteComplaint removes a complaint. A student may delete only their own;
// admins and wardens may delete any.
func (s *ComplaintService) DeleteComplaint(ctx context.Context, id int64, requesterID int64, requesterRole models.Role) error {
	if requesterRole == models.RoleStudent {
		complaint, err := s.store.GetComplaintByID(ctx, id)
		if err != nil {
			return err
		}
		if complaint.StudentID != requesterID {
			return apperrors.NewForbiddenError("you can only delete your own complaints")
		}
	}

	if err := s.store.DeleteComplaint(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("complaintID", id).Msg("Complaint deleted")
	return nil
}
