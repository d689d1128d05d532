package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
)

// announcementStore is the slice of the announcement repository this service needs
type announcementStore interface {
	CreateAnnouncement(ctx context.Context, announcement *models.Announcement) error
	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// Broadcaster pushes events to connected websocket clients
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// AnnouncementService handles announcements and their live feed
type AnnouncementService struct {
	store       announcementStore
	broadcaster Broadcaster
	logger      zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(store announcementStore, broadcaster Broadcaster, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		store:       store,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// CreateAnnouncement stores an announcement and pushes it to the live feed.
// The announcement is persisted first; a broadcast failure cannot lose it.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.store.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast("newAnnouncement", announcement)
	s.logger.Info().Int64("announcementID", announcement.ID).Str("title", announcement.Title).Msg("Announcement published")

	return announcement, nil
}

// GetAnnouncements lists announcements, newest first
func (s *AnnouncementService) GetAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.store.ListAnnouncements(ctx)
}

// DeleteAnnouncement removes an announcement and notifies the live feed
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id int64) error {
	if err := s.store.DeleteAnnouncement(ctx, id); err != nil {
		return err
	}

	s.broadcaster.Broadcast("announcementDeleted", map[string]int64{"id": id})
	s.logger.Info().Int64("announcementID", id).Msg("Announcement deleted")

	return nil
}
