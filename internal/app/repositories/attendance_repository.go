package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// UpsertAttendance records a student's attendance for a date. Marking the
// same student and date again overwrites the previous status.
func (r *AttendanceRepository) UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	sql, args, err := r.sb.Insert("attendance_records").
		Columns("student_id", "date", "status").
		Values(record.StudentID, record.Date, record.Status).
		Suffix("ON CONFLICT ON CONSTRAINT attendance_student_date_key DO UPDATE SET status = EXCLUDED.status").
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert attendance query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", record.StudentID).Msg("Error executing upsert attendance query")
		return fmt.Errorf("error recording attendance: %w", err)
	}

	return nil
}

// ListAttendanceByDate retrieves all attendance records for a date
func (r *AttendanceRepository) ListAttendanceByDate(ctx context.Context, date time.Time) ([]*models.AttendanceRecord, error) {
	return r.queryAttendance(ctx, squirrel.Eq{"date": date})
}

// ListAttendanceByStudent retrieves one student's attendance history
func (r *AttendanceRepository) ListAttendanceByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	return r.queryAttendance(ctx, squirrel.Eq{"student_id": studentID})
}

func (r *AttendanceRepository) queryAttendance(ctx context.Context, pred interface{}) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select("id", "student_id", "date", "status", "created_at").
		From("attendance_records").
		Where(pred).
		OrderBy("date DESC", "student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list attendance query")
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}
