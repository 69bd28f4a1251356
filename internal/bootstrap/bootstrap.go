package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/Anurg29/Aluminiconnect/internal/app/auth"
	appControllers "github.com/Anurg29/Aluminiconnect/internal/app/controllers"
	appMigrations "github.com/Anurg29/Aluminiconnect/internal/app/migrations"
	appRepos "github.com/Anurg29/Aluminiconnect/internal/app/repositories"
	appRoutes "github.com/Anurg29/Aluminiconnect/internal/app/routes"
	appServices "github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/config"
	"github.com/Anurg29/Aluminiconnect/internal/db"
	appMiddleware "github.com/Anurg29/Aluminiconnect/internal/middleware"
	pkgAuth "github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/filestorage"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/helpers"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/logger"
	"github.com/Anurg29/Aluminiconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services        *appServices.Services
	AuthController  *appControllers.AuthController
	UserController  *appControllers.UserController
	JobController   *appControllers.JobController
	ChatController  *appControllers.ChatController
	AdminController *appControllers.AdminController
	AuthMiddleware  *appMiddleware.AuthMiddleware
	Repos           *appRepos.Repositories
	JWTService      *pkgAuth.JWTService
	AuthzService    *appAuth.AuthorizationService
	FileStorage     *filestorage.LocalStorage
	Logger          zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the admin accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, database.Pool, lgr); err != nil {
		// Startup continues without seed data, the error is only logged.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services,
// controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(cfg.Admin.Emails)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.JWTService,
		deps.AuthzService,
		deps.FileStorage,
		appServices.UploadLimits{
			MaxSizeBytes:      int64(cfg.Upload.MaxSizeMB) << 20,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository, deps.AuthzService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.JobController = appControllers.NewJobController(deps.Services.JobService)
	deps.ChatController = appControllers.NewChatController(deps.Services.ChatService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService)

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

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.JobController,
		deps.ChatController,
		deps.AdminController,
		deps.AuthMiddleware,
		cfg.Upload.Dir,
	)

	return router
}
