package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
)

type fakeComplaintStore struct {
	complaints map[int64]*models.Complaint
	nextID     int64
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{complaints: make(map[int64]*models.Complaint), nextID: 1}
}

func (f *fakeComplaintStore) CreateComplaint(_ context.Context, c *models.Complaint) error {
	c.ID = f.nextID
	f.nextID++
	c.Status = models.ComplaintPending
	f.complaints[c.ID] = c
	return nil
}

func (f *fakeComplaintStore) ListComplaints(_ context.Context, studentID int64) ([]*models.Complaint, error) {
	out := []*models.Complaint{}
	for _, c := range f.complaints {
		if studentID == 0 || c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplaintStore) GetComplaintByID(_ context.Context, id int64) (*models.Complaint, error) {
	c, ok := f.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	return c, nil
}

func (f *fakeComplaintStore) UpdateComplaintStatus(_ context.Context, id int64, status models.ComplaintStatus) error {
	c, ok := f.complaints[id]
	if !ok {
		return apperrors.ErrComplaintNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeComplaintStore) DeleteComplaint(_ context.Context, id int64) error {
	if _, ok := f.complaints[id]; !ok {
		return apperrors.ErrComplaintNotFound
	}
	delete(f.complaints, id)
	return nil
}

func TestComplaintServiceVisibility(t *testing.T) {
	store := newFakeComplaintStore()
	svc := NewComplaintService(store, zerolog.Nop())

	ctx := context.Background()
	if _, err := svc.CreateComplaint(ctx, 1, &dto.CreateComplaintRequest{Title: "Fan", Description: "broken"}); err != nil {
		t.Fatalf("CreateComplaint: %v", err)
	}
	if _, err := svc.CreateComplaint(ctx, 2, &dto.CreateComplaintRequest{Title: "Light", Description: "flickers"}); err != nil {
		t.Fatalf("CreateComplaint: %v", err)
	}

	tests := []struct {
		name        string
		requesterID int64
		role        models.Role
		filter      int64
		want        int
	}{
		{"student sees own only", 1, models.RoleStudent, 0, 1},
		{"student filter ignored", 1, models.RoleStudent, 2, 1},
		{"admin sees all", 9, models.RoleAdmin, 0, 2},
		{"warden filter by student", 9, models.RoleWarden, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetComplaints(ctx, tt.requesterID, tt.role, tt.filter)
			if err != nil {
				t.Fatalf("GetComplaints: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("complaint count = %d, want %d", len(got), tt.want)
			}
			if tt.role == models.RoleStudent {
				for _, c := range got {
					if c.StudentID != tt.requesterID {
						t.Errorf("student saw complaint of student %d", c.StudentID)
					}
				}
			}
		})
	}
}

func TestComplaintServiceStatusTransition(t *testing.T) {
	store := newFakeComplaintStore()
	svc := NewComplaintService(store, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.CreateComplaint(ctx, 1, &dto.CreateComplaintRequest{Title: "Fan", Description: "broken"})
	if err != nil {
		t.Fatalf("CreateComplaint: %v", err)
	}
	if c.Status != models.ComplaintPending {
		t.Errorf("new complaint status = %q, want pending", c.Status)
	}

	updated, err := svc.UpdateComplaintStatus(ctx, c.ID, models.ComplaintResolved)
	if err != nil {
		t.Fatalf("UpdateComplaintStatus: %v", err)
	}
	if updated.Status != models.ComplaintResolved {
		t.Errorf("status = %q, want resolved", updated.Status)
	}

	if _, err := svc.UpdateComplaintStatus(ctx, 999, models.ComplaintResolved); !errors.Is(err, apperrors.ErrComplaintNotFound) {
		t.Errorf("missing complaint error = %v, want ErrComplaintNotFound", err)
	}
}

func TestComplaintServiceDeleteOwnership(t *testing.T) {
	store := newFakeComplaintStore()
	svc := NewComplaintService(store, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.CreateComplaint(ctx, 1, &dto.CreateComplaintRequest{Title: "Fan", Description: "broken"})
	if err != nil {
		t.Fatalf("CreateComplaint: %v", err)
	}

	// Another student cannot delete it
	err = svc.DeleteComplaint(ctx, c.ID, 2, models.RoleStudent)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign delete error = %v, want ErrPermissionDenied", err)
	}

	// A warden can
	if err := svc.DeleteComplaint(ctx, c.ID, 9, models.RoleWarden); err != nil {
		t.Fatalf("warden delete: %v", err)
	}
}
