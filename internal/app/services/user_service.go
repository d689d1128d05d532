package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/auth"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/filestorage"
)

// userStore is the slice of the user repository the user service needs
type userStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, role models.Role) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserService handles user administration
type UserService struct {
	userStore   userStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore userStore, fileStorage filestorage.FileStorage, logger zerolog.Logger) *UserService {
	return &UserService{
		userStore:   userStore,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetUsers lists users, optionally filtered by role
func (s *UserService) GetUsers(ctx context.Context, role models.Role) ([]*models.User, error) {
	return s.userStore.ListUsers(ctx, role)
}

// GetUser retrieves one user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userStore.GetUserByID(ctx, id)
}

// UpdateUser applies the provided fields on top of the stored user.
// Role is never changed through this path. A new password is re-hashed;
// an empty one keeps the existing hash.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userStore.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", id).Msg("Failed to hash new password")
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userStore.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Msg("User updated")
	return user, nil
}

// DeleteUser removes a user. The profile image is deleted after the row,
// on a best effort basis.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userStore.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userStore.DeleteUser(ctx, id); err != nil {
		return err
	}

	if user.ImagePath != "" {
		if err := s.fileStorage.DeleteFile(user.ImagePath); err != nil {
			s.logger.Warn().Err(err).Str("path", user.ImagePath).Msg("Failed to delete profile image")
		}
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
