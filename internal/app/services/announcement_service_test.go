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

type fakeAnnouncementStore struct {
	announcements map[int64]*models.Announcement
	nextID        int64
	createErr     error
}

func newFakeAnnouncementStore() *fakeAnnouncementStore {
	return &fakeAnnouncementStore{announcements: make(map[int64]*models.Announcement), nextID: 1}
}

func (f *fakeAnnouncementStore) CreateAnnouncement(_ context.Context, a *models.Announcement) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = f.nextID
	f.nextID++
	f.announcements[a.ID] = a
	return nil
}

func (f *fakeAnnouncementStore) ListAnnouncements(_ context.Context) ([]*models.Announcement, error) {
	out := []*models.Announcement{}
	for _, a := range f.announcements {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnnouncementStore) DeleteAnnouncement(_ context.Context, id int64) error {
	if _, ok := f.announcements[id]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	delete(f.announcements, id)
	return nil
}

type recordingBroadcaster struct {
	events []string
	data   []interface{}
}

func (r *recordingBroadcaster) Broadcast(event string, data interface{}) {
	r.events = append(r.events, event)
	r.data = append(r.data, data)
}

func TestAnnouncementServiceCreateBroadcasts(t *testing.T) {
	store := newFakeAnnouncementStore()
	broadcaster := &recordingBroadcaster{}
	svc := NewAnnouncementService(store, broadcaster, zerolog.Nop())

	announcement, err := svc.CreateAnnouncement(context.Background(), &dto.CreateAnnouncementRequest{
		Title:   "Water outage",
		Content: "No water on Saturday morning",
	})
	if err != nil {
		t.Fatalf("CreateAnnouncement: %v", err)
	}
	if announcement.ID == 0 {
		t.Error("announcement was not assigned an ID")
	}

	if len(broadcaster.events) != 1 || broadcaster.events[0] != "newAnnouncement" {
		t.Fatalf("broadcast events = %v, want [newAnnouncement]", broadcaster.events)
	}
	sent, ok := broadcaster.data[0].(*models.Announcement)
	if !ok || sent.ID != announcement.ID {
		t.Errorf("broadcast payload = %#v, want the stored announcement", broadcaster.data[0])
	}
}

func TestAnnouncementServiceCreateFailureDoesNotBroadcast(t *testing.T) {
	store := newFakeAnnouncementStore()
	store.createErr = errors.New("db down")
	broadcaster := &recordingBroadcaster{}
	svc := NewAnnouncementService(store, broadcaster, zerolog.Nop())

	_, err := svc.CreateAnnouncement(context.Background(), &dto.CreateAnnouncementRequest{Title: "t", Content: "c"})
	if err == nil {
		t.Fatal("CreateAnnouncement should have failed")
	}
	if len(broadcaster.events) != 0 {
		t.Errorf("broadcast happened despite storage failure: %v", broadcaster.events)
	}
}

func TestAnnouncementServiceDelete(t *testing.T) {
	store := newFakeAnnouncementStore()
	broadcaster := &recordingBroadcaster{}
	svc := NewAnnouncementService(store, broadcaster, zerolog.Nop())

	a, err := svc.CreateAnnouncement(context.Background(), &dto.CreateAnnouncementRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateAnnouncement: %v", err)
	}

	if err := svc.DeleteAnnouncement(context.Background(), a.ID); err != nil {
		t.Fatalf("DeleteAnnouncement: %v", err)
	}
	if err := svc.DeleteAnnouncement(context.Background(), a.ID); !errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		t.Fatalf("second delete error = %v, want ErrAnnouncementNotFound", err)
	}

	if len(broadcaster.events) != 2 || broadcaster.events[1] != "announcementDeleted" {
		t.Errorf("broadcast events = %v, want delete notification after the announcement", broadcaster.events)
	}
}
