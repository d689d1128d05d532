package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	records map[string]*models.AttendanceRecord
	nextID  int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: make(map[string]*models.AttendanceRecord), nextID: 1}
}

func attendanceKey(studentID int64, date time.Time) string {
	return date.Format("2006-01-02") + "/" + time.Unix(studentID, 0).String()
}

func (f *fakeAttendanceStore) UpsertAttendance(_ context.Context, record *models.AttendanceRecord) error {
	key := attendanceKey(record.StudentID, record.Date)
	if existing, ok := f.records[key]; ok {
		existing.Status = record.Status
		record.ID = existing.ID
		return nil
	}
	record.ID = f.nextID
	f.nextID++
	clone := *record
	f.records[key] = &clone
	return nil
}

func (f *fakeAttendanceStore) ListAttendanceByDate(_ context.Context, date time.Time) ([]*models.AttendanceRecord, error) {
	out := []*models.AttendanceRecord{}
	for _, r := range f.records {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListAttendanceByStudent(_ context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	out := []*models.AttendanceRecord{}
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserLookup struct {
	users map[int64]*models.User
}

func (f *fakeUserLookup) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func TestAttendanceServiceMark(t *testing.T) {
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleStudent},
		2: {ID: 2, Role: models.RoleWarden},
	}}

	tests := []struct {
		name    string
		req     *dto.MarkAttendanceRequest
		wantErr bool
	}{
		{
			name: "mark student present",
			req:  &dto.MarkAttendanceRequest{StudentID: 1, Date: "2026-08-29", Status: models.AttendancePresent},
		},
		{
			name:    "bad date",
			req:     &dto.MarkAttendanceRequest{StudentID: 1, Date: "29-08-2026", Status: models.AttendancePresent},
			wantErr: true,
		},
		{
			name:    "unknown student",
			req:     &dto.MarkAttendanceRequest{StudentID: 99, Date: "2026-08-29", Status: models.AttendanceAbsent},
			wantErr: true,
		},
		{
			name:    "non-student target",
			req:     &dto.MarkAttendanceRequest{StudentID: 2, Date: "2026-08-29", Status: models.AttendancePresent},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAttendanceService(newFakeAttendanceStore(), users, zerolog.Nop())
			record, err := svc.MarkAttendance(context.Background(), tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("MarkAttendance() expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("MarkAttendance() unexpected error: %v", err)
			}
			if record.Status != tt.req.Status {
				t.Errorf("status = %q, want %q", record.Status, tt.req.Status)
			}
		})
	}
}

func TestAttendanceServiceRemarkOverwrites(t *testing.T) {
	users := &fakeUserLookup{users: map[int64]*models.User{1: {ID: 1, Role: models.RoleStudent}}}
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, users, zerolog.Nop())

	first, err := svc.MarkAttendance(context.Background(), &dto.MarkAttendanceRequest{
		StudentID: 1, Date: "2026-08-29", Status: models.AttendancePresent,
	})
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}

	second, err := svc.MarkAttendance(context.Background(), &dto.MarkAttendanceRequest{
		StudentID: 1, Date: "2026-08-29", Status: models.AttendanceAbsent,
	})
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-mark created a new record: ids %d and %d", first.ID, second.ID)
	}

	records, err := svc.GetAttendanceByStudent(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAttendanceByStudent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].Status != models.AttendanceAbsent {
		t.Errorf("status after re-mark = %q, want Absent", records[0].Status)
	}
}

func TestAttendanceServiceGetByDate(t *testing.T) {
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleStudent},
		3: {ID: 3, Role: models.RoleStudent},
	}}
	svc := NewAttendanceService(newFakeAttendanceStore(), users, zerolog.Nop())

	for _, id := range []int64{1, 3} {
		if _, err := svc.MarkAttendance(context.Background(), &dto.MarkAttendanceRequest{
			StudentID: id, Date: "2026-08-29", Status: models.AttendancePresent,
		}); err != nil {
			t.Fatalf("mark student %d: %v", id, err)
		}
	}

	records, err := svc.GetAttendanceByDate(context.Background(), "2026-08-29")
	if err != nil {
		t.Fatalf("GetAttendanceByDate: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("record count = %d, want 2", len(records))
	}

	if _, err := svc.GetAttendanceByDate(context.Background(), "not-a-date"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("bad date error = %v, want a validation error", err)
	}
}
