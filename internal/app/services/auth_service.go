package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/auth"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/filestorage"
)

// authUserStore is the slice of the user repository the auth service needs
type authUserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateStudent(ctx context.Context, user *models.User, profile *models.StudentProfile) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles registration and login
type AuthService struct {
	userStore   authUserStore
	jwtService  *auth.JWTService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore authUserStore,
	jwtService *auth.JWTService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userStore:   userStore,
		jwtService:  jwtService,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Register creates a new user account. For students the profile row and the
// room placement are created in the same transaction as the user, so a full
// room or a missing room leaves no partial registration behind.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, image *multipart.FileHeader) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Password: hashed,
		Role:     req.Role,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	if image != nil {
		path, err := s.fileStorage.SaveFileWithPath(image, "profiles")
		if err != nil {
			s.logger.Error().Err(err).Str("username", user.Username).Msg("Failed to store profile image")
			return nil, err
		}
		user.ImagePath = path
	}

	if req.Role == models.RoleStudent {
		profile := &models.StudentProfile{
			RollNumber: strings.TrimSpace(req.RollNumber),
			Hostel:     strings.TrimSpace(req.Hostel),
			RoomNumber: strings.TrimSpace(req.RoomNumber),
		}
		err = s.userStore.CreateStudent(ctx, user, profile)
		if err == nil {
			user.StudentProfile = profile
		}
	} else {
		err = s.userStore.CreateUser(ctx, user)
	}
	if err != nil {
		// The registration rolled back, so the uploaded image is orphaned
		if user.ImagePath != "" {
			if delErr := s.fileStorage.DeleteFile(user.ImagePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", user.ImagePath).Msg("Failed to remove orphaned profile image")
			}
		}
		s.logger.Warn().Err(err).Str("username", user.Username).Str("role", string(user.Role)).Msg("Registration failed")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and the claimed role, then issues a token.
// A wrong password and an unknown username both map to invalid credentials;
// a correct password under the wrong role is reported as a role mismatch.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userStore.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Login failed: bad password")
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role != req.Role {
		s.logger.Warn().
			Str("username", req.Username).
			Str("claimed", string(req.Role)).
			Str("actual", string(user.Role)).
			Msg("Login failed: role mismatch")
		return nil, apperrors.ErrRoleMismatch
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		StudentID: user.ID,
	}, nil
}
