package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	appControllers "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/controllers"
	appMigrations "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/migrations"
	appRepos "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/repositories"
	appRoutes "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/routes"
	appServices "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/config"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/db"
	appMiddleware "github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
	pkgAuth "github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/auth"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/filestorage"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/helpers"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/logger"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/websocket"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	UserService            *appServices.UserService
	RoomService            *appServices.RoomService
	AnnouncementService    *appServices.AnnouncementService
	AttendanceService      *appServices.AttendanceService
	ComplaintService       *appServices.ComplaintService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	RoomController         *appControllers.RoomController
	AnnouncementController *appControllers.AnnouncementController
	AttendanceController   *appControllers.AttendanceController
	ComplaintController    *appControllers.ComplaintController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	AuthLimiter            *appMiddleware.RateLimiter
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Hub                    *websocket.Hub
	WSHandler              *websocket.Handler
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding problems should not stop the server from starting
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	// The websocket hub runs for the lifetime of the process
	deps.Hub = websocket.NewHub(lgr)
	deps.Hub.OnClientCountChange(appMiddleware.SetWebsocketClients)
	go deps.Hub.Run()
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.FileStorage, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage, lgr)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, deps.Hub, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.UserRepository, lgr)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AuthLimiter = appMiddleware.NewRateLimiter(rate.Limit(5), 10)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.RoomController,
		deps.AnnouncementController,
		deps.AttendanceController,
		deps.ComplaintController,
		deps.WSHandler,
		deps.AuthMiddleware,
		deps.AuthLimiter,
	)

	return router
}
