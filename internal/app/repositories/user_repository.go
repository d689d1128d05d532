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

const userColumns = "id, username, password, role, name, email, phone, image_path, created_at, updated_at"

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser creates a non-student user (admin or warden)
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin create user transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertUserTx(ctx, tx, user); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit create user transaction: %w", err)
	}

	return nil
}

// CreateStudent creates a student user, their profile and their room placement
// in one transaction. If the room lookup or the occupancy guard fails, the
// whole registration rolls back and no orphan user record remains.
func (r *UserRepository) CreateStudent(ctx context.Context, user *models.User, profile *models.StudentProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin register student transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertUserTx(ctx, tx, user); err != nil {
		return err
	}

	profile.UserID = user.ID
	profileSQL, profileArgs, err := r.sb.Insert("student_profiles").
		Columns("user_id", "roll_number", "hostel", "room_number").
		Values(profile.UserID, profile.RollNumber, profile.Hostel, profile.RoomNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert profile query: %w", err)
	}
	if err := tx.QueryRow(ctx, profileSQL, profileArgs...).Scan(&profile.ID); err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error inserting student profile")
		return fmt.Errorf("error inserting student profile: %w", err)
	}

	var roomID int64
	roomSQL, roomArgs, err := r.sb.Select("id").
		From("rooms").
		Where(squirrel.Eq{"room_number": profile.RoomNumber, "hostel": profile.Hostel}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build room lookup query: %w", err)
	}
	if err := tx.QueryRow(ctx, roomSQL, roomArgs...).Scan(&roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error looking up room: %w", err)
	}

	entry := &models.RoomStudent{
		RollNumber: profile.RollNumber,
		Name:       user.Name,
		UserID:     &user.ID,
	}
	if err := addStudentTx(ctx, tx, r.sb, roomID, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit register student transaction: %w", err)
	}

	return nil
}

// insertUserTx inserts the base user row on an existing transaction
func (r *UserRepository) insertUserTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password", "role", "name", "email", "phone", "image_path").
		Values(user.Username, user.Password, user.Role, user.Name, user.Email, user.Phone, user.ImagePath).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUserExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing insert user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID, with the student profile when present
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := r.scanUserRow(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	return r.attachStudentProfile(ctx, user)
}

// GetUserByUsername retrieves a user by unique username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := r.scanUserRow(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	return r.attachStudentProfile(ctx, user)
}

func (r *UserRepository) scanUserRow(ctx context.Context, sql string, args []interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.Name, &user.Email, &user.Phone, &user.ImagePath,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) attachStudentProfile(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Role != models.RoleStudent {
		return user, nil
	}

	sql, args, err := r.sb.Select("id", "user_id", "roll_number", "hostel", "room_number").
		From("student_profiles").
		Where(squirrel.Eq{"user_id": user.ID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.StudentProfile{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&profile.ID, &profile.UserID, &profile.RollNumber, &profile.Hostel, &profile.RoomNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A student without a profile row is tolerated on read
			return user, nil
		}
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}

	user.StudentProfile = profile
	return user, nil
}

// ListUsers retrieves all users, optionally filtered by role
func (r *UserRepository) ListUsers(ctx context.Context, role models.Role) ([]*models.User, error) {
	builder := r.sb.Select(userColumns).
		From("users").
		OrderBy("username ASC")
	if role != "" {
		builder = builder.Where(squirrel.Eq{"role": role})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Password, &user.Role,
			&user.Name, &user.Email, &user.Phone, &user.ImagePath,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	for _, user := range users {
		if _, err := r.attachStudentProfile(ctx, user); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// UpdateUser overwrites the mutable user fields. Role is never touched here.
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"username":   user.Username,
			"password":   user.Password,
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"image_path": user.ImagePath,
			"updated_at": squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUserExists
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser hard-deletes a user; the student profile cascades with it.
// Roster entries keep the name but lose the user reference (SET NULL).
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UsernameExists checks whether a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username existence: %w", err)
	}
	return exists, nil
}
