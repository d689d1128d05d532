package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	appRepos "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/repositories"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
	pkgAuth "github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account and a couple of rooms
// so a fresh install is usable immediately. Existing records are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	roomRepo := appRepos.NewRoomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin --- //
	exists, err := userRepo.UsernameExists(ctx, "admin")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := pkgAuth.HashPassword("admin123")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Username: "admin",
				Password: hashed,
				Role:     appModels.RoleAdmin,
				Name:     "Administrator",
			}
			if err := userRepo.CreateUser(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrUserExists) {
				lgr.Error().Err(err).Msg("Error creating default admin")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Msg("Default admin account created (username: admin)")
			}
		}
	}

	// --- Sample rooms --- //
	defaultRooms := []*appModels.Room{
		{RoomNumber: "101", Hostel: "Boys Hostel A", Capacity: 4},
		{RoomNumber: "102", Hostel: "Boys Hostel A", Capacity: 4},
		{RoomNumber: "101", Hostel: "Girls Hostel A", Capacity: 3},
	}
	for _, room := range defaultRooms {
		if _, err := roomRepo.CreateRoom(ctx, room); err != nil && !errors.Is(err, apperrors.ErrRoomExists) {
			lgr.Error().Err(err).Str("roomNumber", room.RoomNumber).Str("hostel", room.Hostel).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
