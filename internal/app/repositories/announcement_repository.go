package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/logger"
)

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateAnnouncement stores a new announcement
func (r *AnnouncementRepository) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "content").
		Values(announcement.Title, announcement.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert announcement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert announcement query")
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// ListAnnouncements retrieves all announcements, newest first
func (r *AnnouncementRepository) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "created_at").
		From("announcements").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		a := &models.Announcement{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}

// DeleteAnnouncement removes an announcement by ID
func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error executing delete announcement query")
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
