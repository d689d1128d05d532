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

type fakeRoomStore struct {
	rooms  map[int64]*models.Room
	nextID int64
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[int64]*models.Room), nextID: 1}
}

func (f *fakeRoomStore) CreateRoom(_ context.Context, room *models.Room) (int64, error) {
	for _, existing := range f.rooms {
		if existing.RoomNumber == room.RoomNumber && existing.Hostel == room.Hostel {
			return 0, apperrors.ErrRoomExists
		}
	}
	room.ID = f.nextID
	f.nextID++
	f.rooms[room.ID] = room
	return room.ID, nil
}

func (f *fakeRoomStore) GetRoomByID(_ context.Context, id int64) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeRoomStore) ListRooms(_ context.Context, hostel string) ([]*models.Room, error) {
	out := []*models.Room{}
	for _, room := range f.rooms {
		if hostel == "" || room.Hostel == hostel {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) ListAvailableRooms(_ context.Context) ([]*models.Room, error) {
	out := []*models.Room{}
	for _, room := range f.rooms {
		if room.Occupied < room.Capacity {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) UpdateRoom(_ context.Context, room *models.Room) error {
	existing, ok := f.rooms[room.ID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	existing.RoomNumber = room.RoomNumber
	existing.Hostel = room.Hostel
	existing.Capacity = room.Capacity
	return nil
}

func (f *fakeRoomStore) DeleteRoom(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomStore) AddStudent(_ context.Context, roomID int64, student *models.RoomStudent) error {
	room, ok := f.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if room.Occupied >= room.Capacity {
		return apperrors.ErrRoomFull
	}
	student.ID = int64(len(room.Students) + 1)
	student.RoomID = roomID
	room.Students = append(room.Students, *student)
	room.Occupied++
	return nil
}

func (f *fakeRoomStore) RemoveStudent(_ context.Context, roomID, studentID int64) error {
	room, ok := f.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	kept := room.Students[:0]
	for _, s := range room.Students {
		if s.ID != studentID {
			kept = append(kept, s)
		}
	}
	room.Students = kept
	room.Occupied = len(kept)
	return nil
}

func TestRoomServiceAddStudentFillsRoom(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store, zerolog.Nop())

	room, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomNumber: "101", Hostel: "Boys Hostel A", Capacity: 2,
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.AddStudent(context.Background(), room.ID, &dto.AddRoomStudentRequest{
			RollNumber: "R-1", Name: "A",
		}); err != nil {
			t.Fatalf("AddStudent %d: %v", i, err)
		}
	}

	_, err = svc.AddStudent(context.Background(), room.ID, &dto.AddRoomStudentRequest{RollNumber: "R-3", Name: "C"})
	if !errors.Is(err, apperrors.ErrRoomFull) {
		t.Fatalf("AddStudent on full room error = %v, want ErrRoomFull", err)
	}

	got, err := svc.GetRoom(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Occupied != 2 {
		t.Errorf("occupied = %d, want 2", got.Occupied)
	}
}

func TestRoomServiceRemoveStudentRecountsOccupancy(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store, zerolog.Nop())

	room, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomNumber: "102", Hostel: "Boys Hostel A", Capacity: 3,
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	updated, err := svc.AddStudent(context.Background(), room.ID, &dto.AddRoomStudentRequest{RollNumber: "R-1", Name: "A"})
	if err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	entryID := updated.Students[0].ID
	after, err := svc.RemoveStudent(context.Background(), room.ID, entryID)
	if err != nil {
		t.Fatalf("RemoveStudent: %v", err)
	}
	if after.Occupied != 0 {
		t.Errorf("occupied after removal = %d, want 0", after.Occupied)
	}
}

func TestRoomServiceUpdateAllowsShrinkBelowOccupancy(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store, zerolog.Nop())

	room, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomNumber: "103", Hostel: "Boys Hostel A", Capacity: 3,
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.AddStudent(context.Background(), room.ID, &dto.AddRoomStudentRequest{RollNumber: "R", Name: "X"}); err != nil {
			t.Fatalf("AddStudent: %v", err)
		}
	}

	// Shrinking below the current occupancy is accepted as-is
	got, err := svc.UpdateRoom(context.Background(), room.ID, &dto.UpdateRoomRequest{
		RoomNumber: "103", Hostel: "Boys Hostel A", Capacity: 1,
	})
	if err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if got.Capacity != 1 {
		t.Errorf("capacity = %d, want 1", got.Capacity)
	}
	if got.Occupied != 3 {
		t.Errorf("occupied = %d, want 3 (unchanged)", got.Occupied)
	}
}

func TestRoomServiceCreateDuplicate(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store, zerolog.Nop())

	req := &dto.CreateRoomRequest{RoomNumber: "201", Hostel: "Girls Hostel A", Capacity: 2}
	if _, err := svc.CreateRoom(context.Background(), req); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := svc.CreateRoom(context.Background(), req); !errors.Is(err, apperrors.ErrRoomExists) {
		t.Fatalf("duplicate CreateRoom error = %v, want ErrRoomExists", err)
	}
}

func TestRoomServiceAvailableRooms(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store, zerolog.Nop())

	full, _ := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomNumber: "301", Hostel: "H", Capacity: 1})
	if _, err := svc.AddStudent(context.Background(), full.ID, &dto.AddRoomStudentRequest{RollNumber: "R", Name: "X"}); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}
	open, _ := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomNumber: "302", Hostel: "H", Capacity: 2})

	available, err := svc.GetAvailableRooms(context.Background())
	if err != nil {
		t.Fatalf("GetAvailableRooms: %v", err)
	}
	if len(available) != 1 || available[0].ID != open.ID {
		t.Errorf("available rooms = %v, want only room %d", available, open.ID)
	}
}
