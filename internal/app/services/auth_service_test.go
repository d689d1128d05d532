package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/auth"
)

type fakeAuthUserStore struct {
	users       map[string]*models.User
	studentErr  error
	lastProfile *models.StudentProfile
}

func newFakeAuthUserStore() *fakeAuthUserStore {
	return &fakeAuthUserStore{users: make(map[string]*models.User)}
}

func (f *fakeAuthUserStore) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return apperrors.ErrUserExists
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Username] = user
	return nil
}

func (f *fakeAuthUserStore) CreateStudent(ctx context.Context, user *models.User, profile *models.StudentProfile) error {
	if f.studentErr != nil {
		return f.studentErr
	}
	if err := f.CreateUser(ctx, user); err != nil {
		return err
	}
	profile.UserID = user.ID
	f.lastProfile = profile
	return nil
}

func (f *fakeAuthUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeFileStorage) SaveFile(_ *multipart.FileHeader) (string, error) {
	f.saved = append(f.saved, "file")
	return "/uploads/file", nil
}

func (f *fakeFileStorage) SaveFileWithPath(_ *multipart.FileHeader, path string) (string, error) {
	f.saved = append(f.saved, path)
	return "/uploads/" + path + "/file", nil
}

func (f *fakeFileStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    3600000000000,
		TokenIssuer: "test",
	})
}

func TestAuthServiceRegister(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.RegisterRequest
		prep    func(store *fakeAuthUserStore)
		wantErr error
	}{
		{
			name: "admin registration",
			req:  &dto.RegisterRequest{Username: "boss", Password: "secret1", Role: models.RoleAdmin},
		},
		{
			name: "student registration with placement",
			req: &dto.RegisterRequest{
				Username: "amit", Password: "secret1", Role: models.RoleStudent,
				RollNumber: "R-42", Hostel: "Boys Hostel A", RoomNumber: "101",
			},
		},
		{
			name: "duplicate username",
			req:  &dto.RegisterRequest{Username: "boss", Password: "secret1", Role: models.RoleWarden},
			prep: func(store *fakeAuthUserStore) {
				store.users["boss"] = &models.User{ID: 1, Username: "boss"}
			},
			wantErr: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeAuthUserStore()
			if tt.prep != nil {
				tt.prep(store)
			}
			svc := NewAuthService(store, testJWTService(), &fakeFileStorage{}, zerolog.Nop())

			user, err := svc.Register(context.Background(), tt.req, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() unexpected error: %v", err)
			}
			if user.ID == 0 {
				t.Error("Register() did not assign an ID")
			}
			if user.Password == tt.req.Password {
				t.Error("Register() stored the plaintext password")
			}
			if tt.req.Role == models.RoleStudent {
				if user.StudentProfile == nil {
					t.Fatal("Register() student has no profile")
				}
				if user.StudentProfile.RollNumber != tt.req.RollNumber {
					t.Errorf("profile roll number = %q, want %q", user.StudentProfile.RollNumber, tt.req.RollNumber)
				}
			}
		})
	}
}

func TestAuthServiceRegisterRoomFull(t *testing.T) {
	store := newFakeAuthUserStore()
	store.studentErr = apperrors.ErrRoomFull
	svc := NewAuthService(store, testJWTService(), &fakeFileStorage{}, zerolog.Nop())

	req := &dto.RegisterRequest{
		Username: "amit", Password: "secret1", Role: models.RoleStudent,
		RollNumber: "R-42", Hostel: "Boys Hostel A", RoomNumber: "101",
	}
	_, err := svc.Register(context.Background(), req, nil)
	if !errors.Is(err, apperrors.ErrRoomFull) {
		t.Fatalf("Register() error = %v, want ErrRoomFull", err)
	}
	if _, ok := store.users["amit"]; ok {
		t.Error("Register() left a user behind after a failed placement")
	}
}

func TestAuthServiceLogin(t *testing.T) {
	hashed, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	store := newFakeAuthUserStore()
	store.users["amit"] = &models.User{
		ID:       7,
		Username: "amit",
		Password: hashed,
		Role:     models.RoleStudent,
	}
	svc := NewAuthService(store, testJWTService(), &fakeFileStorage{}, zerolog.Nop())

	tests := []struct {
		name    string
		req     *dto.LoginRequest
		wantErr error
	}{
		{
			name: "success",
			req:  &dto.LoginRequest{Username: "amit", Password: "secret1", Role: models.RoleStudent},
		},
		{
			name:    "wrong password",
			req:     &dto.LoginRequest{Username: "amit", Password: "nope", Role: models.RoleStudent},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:    "unknown user",
			req:     &dto.LoginRequest{Username: "ghost", Password: "secret1", Role: models.RoleStudent},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:    "role mismatch",
			req:     &dto.LoginRequest{Username: "amit", Password: "secret1", Role: models.RoleAdmin},
			wantErr: apperrors.ErrRoleMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			if resp.Token == "" {
				t.Error("Login() returned an empty token")
			}
			if resp.StudentID != 7 {
				t.Errorf("Login() studentId = %d, want 7", resp.StudentID)
			}
		})
	}
}
