package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/setnu/clubportal/internal/app/controllers"
	"github.com/setnu/clubportal/internal/app/manage"
	appMigrations "github.com/setnu/clubportal/internal/app/migrations"
	appRepos "github.com/setnu/clubportal/internal/app/repositories"
	appRoutes "github.com/setnu/clubportal/internal/app/routes"
	appServices "github.com/setnu/clubportal/internal/app/services"
	"github.com/setnu/clubportal/internal/config"
	"github.com/setnu/clubportal/internal/db"
	appMiddleware "github.com/setnu/clubportal/internal/middleware"
	pkgAuth "github.com/setnu/clubportal/internal/pkg/auth"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
	"github.com/setnu/clubportal/internal/pkg/logger"
	"github.com/setnu/clubportal/internal/pkg/notify"
	"github.com/setnu/clubportal/internal/pkg/websocket"
	"github.com/setnu/clubportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	AuthService *appServices.AuthService
	Portal      *appServices.PortalService
	Shell       *manage.Shell
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Hub         *websocket.Hub
	Handlers    appRoutes.Handlers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
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

// SetupDatabase connects to Postgres and applies migrations. It returns nil
// when the memory driver is configured.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory tables; content is lost on restart")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes repositories, services, screens and controllers.
// database may be nil, in which case the in-memory tables are used.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if database != nil {
		deps.Repos = appRepos.NewRepositories(database)
	} else {
		deps.Repos = appRepos.NewMemoryRepositories()
	}

	if cfg.Portal.SeedDefaults {
		if err := seed.CreateDefaultData(context.Background(), deps.Repos.ClubInfo, lgr); err != nil {
			// not fatal; the about page is simply empty
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService, appServices.SpecialCodes{
		Mentor:      cfg.Portal.MentorCode,
		Coordinator: cfg.Portal.CoordinatorCode,
	}, logger.Component("auth"))
	deps.Portal = appServices.NewPortalService(deps.Services, appServices.PortalLimits{
		UpcomingOnHome: cfg.Portal.UpcomingOnHome,
		GalleryOnHome:  cfg.Portal.GalleryOnHome,
	}, logger.Component("portal"))

	deps.Hub = websocket.NewHub(logger.Component("notifications"))
	adminLogger := logger.Component("admin")
	notifiers := notify.Fanout{notify.NewLogNotifier(adminLogger), deps.Hub}
	deps.Shell = manage.NewShell(deps.Services, cfg.Location(), notifiers, adminLogger)

	deps.Handlers = appRoutes.Handlers{
		Auth:           appControllers.NewAuthController(deps.AuthService, lgr),
		Portal:         appControllers.NewPortalController(deps.Portal),
		Admin:          appControllers.NewAdminController(deps.Shell, cfg.Server.MaxUploadBytes, adminLogger),
		Notifications:  websocket.NewHandler(deps.Hub, cfg.Server.CORSOrigins, logger.Component("websocket")),
		AuthMiddleware: appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.Users, lgr),
	}
	if database != nil {
		deps.Handlers.Health = func(c *gin.Context) error { return database.Ping(c.Request.Context()) }
	}

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
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	router.Use(appMiddleware.CORS(cfg.Server.CORSOrigins))

	appRoutes.SetupSwagger(router)

	// Serve stored blobs at the prefix their public URLs use
	router.Static("/uploads", deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Msg("Static file serving configured for uploads directory")

	appRoutes.SetupRouter(router, deps.Handlers)
	return router
}
