package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/logger"
)

const complaintColumns = "id, student_id, title, description, status, created_at, updated_at"

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateComplaint files a new complaint with status pending
func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_id", "title", "description", "status").
		Values(complaint.StudentID, complaint.Title, complaint.Description, models.ComplaintPending).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert complaint query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&complaint.ID, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", complaint.StudentID).Msg("Error executing insert complaint query")
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// ListComplaints retrieves complaints, newest first. When studentID is
// non-zero only that student's complaints are returned.
func (r *ComplaintRepository) ListComplaints(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	builder := r.sb.Select(complaintColumns).
		From("complaints").
		OrderBy("created_at DESC")
	if studentID != 0 {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		c := &models.Complaint{}
		if err := rows.Scan(
			&c.ID, &c.StudentID, &c.Title, &c.Description,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// GetComplaintByID retrieves a single complaint
func (r *ComplaintRepository) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	c := &models.Complaint{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.StudentID, &c.Title, &c.Description,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error getting complaint: %w", err)
	}

	return c, nil
}

// UpdateComplaintStatus transitions a complaint to the given status
func (r *ComplaintRepository) UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	sql, args, err := r.sb.Update("complaints").
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update complaint query")
		return fmt.Errorf("error updating complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}

// DeleteComplaint removes a complaint by ID
func (r *ComplaintRepository) DeleteComplaint(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("complaints").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing delete complaint query")
		return fmt.Errorf("error deleting complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}
