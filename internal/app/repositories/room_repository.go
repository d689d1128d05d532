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
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/dberrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/logger"
)

const roomColumns = "id, room_number, hostel, capacity, occupied, created_at"

// RoomRepository handles room and roster database operations.
// Occupancy mutations are single atomic statements: the capacity guard lives
// in the UPDATE itself, so two concurrent adds can never jointly overshoot
// capacity the way a read-check-write sequence could.
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateRoom creates a new room with zero occupancy
func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.Room) (int64, error) {
	sql, args, err := r.sb.Insert("rooms").
		Columns("room_number", "hostel", "capacity", "occupied").
		Values(room.RoomNumber, room.Hostel, room.Capacity, 0).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create room query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrRoomExists
		}
		logger.Error().Err(err).Msg("Error executing create room query")
		return 0, fmt.Errorf("error creating room: %w", err)
	}

	return room.ID, nil
}

// GetRoomByID retrieves a room with its roster
func (r *RoomRepository) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	sql, args, err := r.sb.Select(roomColumns).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&room.ID, &room.RoomNumber, &room.Hostel, &room.Capacity, &room.Occupied, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("roomID", id).Msg("Error scanning room row")
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}

	students, err := r.ListStudents(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Students = students

	return room, nil
}

// ListRooms retrieves all rooms, optionally filtered by hostel, with rosters
func (r *RoomRepository) ListRooms(ctx context.Context, hostel string) ([]*models.Room, error) {
	builder := r.sb.Select(roomColumns).
		From("rooms").
		OrderBy("hostel ASC", "room_number ASC")
	if hostel != "" {
		builder = builder.Where(squirrel.Eq{"hostel": hostel})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	return r.queryRooms(ctx, sql, args)
}

// ListAvailableRooms retrieves rooms that still have a free place
func (r *RoomRepository) ListAvailableRooms(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select(roomColumns).
		From("rooms").
		Where("occupied < capacity").
		OrderBy("hostel ASC", "room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build available rooms query: %w", err)
	}

	return r.queryRooms(ctx, sql, args)
}

func (r *RoomRepository) queryRooms(ctx context.Context, sql string, args []interface{}) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing rooms query")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Hostel, &room.Capacity, &room.Occupied, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	for _, room := range rooms {
		students, err := r.ListStudents(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		room.Students = students
	}

	return rooms, nil
}

// UpdateRoom overwrites roomNumber, capacity and hostel. Occupancy is left
// untouched, and a capacity below the current occupancy is accepted as-is;
// the records then read over capacity until students are removed.
func (r *RoomRepository) UpdateRoom(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Update("rooms").
		SetMap(map[string]interface{}{
			"room_number": room.RoomNumber,
			"capacity":    room.Capacity,
			"hostel":      room.Hostel,
		}).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrRoomExists
		}
		logger.Error().Err(err).Int64("roomID", room.ID).Msg("Error executing update room query")
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// DeleteRoom deletes a room; roster rows go with it via the FK cascade.
// Users whose student profile references the room keep their stale back
// reference, matching the observed behavior of the system this replaces.
func (r *RoomRepository) DeleteRoom(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("roomID", id).Msg("Error executing delete room query")
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// ListStudents retrieves the roster of a room
func (r *RoomRepository) ListStudents(ctx context.Context, roomID int64) ([]models.RoomStudent, error) {
	sql, args, err := r.sb.Select("id", "room_id", "roll_number", "name", "user_id").
		From("room_students").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("roomID", roomID).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying room students: %w", err)
	}
	defer rows.Close()

	students := []models.RoomStudent{}
	for rows.Next() {
		var student models.RoomStudent
		if err := rows.Scan(&student.ID, &student.RoomID, &student.RollNumber, &student.Name, &student.UserID); err != nil {
			return nil, fmt.Errorf("error scanning room student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room student rows: %w", err)
	}

	return students, nil
}

// AddStudent appends a roster entry and increments occupancy in one
// transaction. The guard `occupied < capacity` sits inside the UPDATE, so the
// statement affects zero rows instead of overfilling under concurrency.
func (r *RoomRepository) AddStudent(ctx context.Context, roomID int64, student *models.RoomStudent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin add student transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := addStudentTx(ctx, tx, r.sb, roomID, student); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit add student transaction: %w", err)
	}

	return nil
}

// addStudentTx runs the conditional occupancy increment plus roster insert on
// an existing transaction. Shared with the student self-registration path.
func addStudentTx(ctx context.Context, tx pgx.Tx, sb squirrel.StatementBuilderType, roomID int64, student *models.RoomStudent) error {
	updateSQL, updateArgs, err := sb.Update("rooms").
		Set("occupied", squirrel.Expr("occupied + 1")).
		Where(squirrel.Eq{"id": roomID}).
		Where("occupied < capacity").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build occupancy update query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		logger.Error().Err(err).Int64("roomID", roomID).Msg("Error executing occupancy update")
		return fmt.Errorf("error updating room occupancy: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the room is gone or the guard rejected the increment
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, roomID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking room existence: %w", err)
		}
		if !exists {
			return apperrors.ErrRoomNotFound
		}
		return apperrors.ErrRoomFull
	}

	insertSQL, insertArgs, err := sb.Insert("room_students").
		Columns("room_id", "roll_number", "name", "user_id").
		Values(roomID, student.RollNumber, student.Name, student.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build roster insert query: %w", err)
	}

	if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&student.ID); err != nil {
		logger.Error().Err(err).Int64("roomID", roomID).Msg("Error executing roster insert")
		return fmt.Errorf("error inserting roster entry: %w", err)
	}
	student.RoomID = roomID

	return nil
}

// RemoveStudent deletes a roster entry and recomputes occupancy from the
// remaining roster, keeping occupied equal to the roster length.
func (r *RoomRepository) RemoveStudent(ctx context.Context, roomID, studentID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin remove student transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, roomID).Scan(&exists); err != nil {
		return fmt.Errorf("error checking room existence: %w", err)
	}
	if !exists {
		return apperrors.ErrRoomNotFound
	}

	deleteSQL, deleteArgs, err := r.sb.Delete("room_students").
		Where(squirrel.Eq{"id": studentID, "room_id": roomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build roster delete query: %w", err)
	}

	// Removing an entry that is already gone is a no-op, like the original
	if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
		logger.Error().Err(err).Int64("roomID", roomID).Int64("studentID", studentID).Msg("Error executing roster delete")
		return fmt.Errorf("error deleting roster entry: %w", err)
	}

	recountSQL := `UPDATE rooms SET occupied = (SELECT COUNT(*) FROM room_students WHERE room_id = $1) WHERE id = $1`
	if _, err := tx.Exec(ctx, recountSQL, roomID); err != nil {
		logger.Error().Err(err).Int64("roomID", roomID).Msg("Error recomputing occupancy")
		return fmt.Errorf("error recomputing room occupancy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit remove student transaction: %w", err)
	}

	return nil
}
