package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/campusconnect/placement-api/internal/app/controllers"
	appMigrations "github.com/campusconnect/placement-api/internal/app/migrations"
	appRepos "github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/app/repositories/memory"
	"github.com/campusconnect/placement-api/internal/app/repositories/mongorepo"
	appRoutes "github.com/campusconnect/placement-api/internal/app/routes"
	appServices "github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/config"
	"github.com/campusconnect/placement-api/internal/db"
	appMiddleware "github.com/campusconnect/placement-api/internal/middleware"
	pkgAuth "github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/campusconnect/placement-api/internal/pkg/logger"
	"github.com/campusconnect/placement-api/internal/seed"
	schema "github.com/campusconnect/placement-api/migrations"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config         *config.Config
	Logger         zerolog.Logger
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	Publisher      events.Publisher
	Services       *appServices.Services
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers

	closers []func()
}

// Close releases the datastore and broker connections in reverse order of creation
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := logger.Default()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatastore opens the configured datastore, prepares its schema and returns the
// repositories with a function that closes the connection.
func SetupDatastore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		if err := migrate(ctx, database, lgr); err != nil {
			database.Close()
			return nil, nil, err
		}
		return appRepos.NewRepositories(database), database.Close, nil

	case config.DriverMongo:
		mongoDB, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, mongoDB.Database); err != nil {
			mongoDB.Close()
			return nil, nil, fmt.Errorf("failed to create mongodb indexes: %w", err)
		}
		return mongorepo.NewRepositories(mongoDB.Database), mongoDB.Close, nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory datastore; data is lost on restart")
		return memory.NewRepositories(memory.NewStore()), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// RunMigrations applies the PostgreSQL schema without starting the server
func RunMigrations(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) error {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()
		return migrate(ctx, database, lgr)
	case config.DriverMongo:
		mongoDB, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer mongoDB.Close()
		return mongorepo.EnsureIndexes(ctx, mongoDB.Database)
	}
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Nothing to migrate")
	return nil
}

func migrate(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool, lgr).Apply(ctx, schema.Files)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations complete")
	return nil
}

// SetupStorage creates the configured upload backend
func SetupStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	if cfg.Uploads.Driver == config.StorageS3 {
		s3Storage, err := filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
			URLPrefix:    cfg.Uploads.URLPrefix,
		})
		if err != nil {
			return nil, err
		}
		return s3Storage, nil
	}

	localStorage, err := filestorage.NewLocalStorage(cfg.Uploads.Path, cfg.Uploads.URLPrefix)
	if err != nil {
		return nil, err
	}
	return localStorage, nil
}

// SetupPublisher connects to the broker when events are enabled. A broker that cannot
// be reached degrades to dropping events rather than failing startup.
func SetupPublisher(cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange, lgr.With().Str("component", "events").Logger())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to message broker, events disabled")
		return events.NoopPublisher{}
	}
	return publisher
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Logger: lgr}

	repos, closeStore, err := SetupDatastore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, closeStore)

	deps.FileStorage, err = SetupStorage(ctx, cfg)
	if err != nil {
		deps.Close()
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Publisher = SetupPublisher(cfg, lgr)
	deps.closers = append(deps.closers, func() {
		if err := deps.Publisher.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close event publisher")
		}
	})

	if err := seed.CreateDefaultAdmin(ctx, repos.Accounts, seed.AdminAccount{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		FullName: cfg.Seed.AdminName,
	}, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	wireApplication(deps, repos)
	return deps, nil
}

// NewTestDependencies wires the application over the given repositories and storage
// with events disabled.
func NewTestDependencies(cfg *config.Config, repos *appRepos.Repositories, storage filestorage.FileStorage, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Config:      cfg,
		Logger:      lgr,
		FileStorage: storage,
		Publisher:   events.NoopPublisher{},
	}
	wireApplication(deps, repos)
	return deps
}

func wireApplication(deps *Dependencies, repos *appRepos.Repositories) {
	cfg := deps.Config
	lgr := deps.Logger
	deps.Repos = repos

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 168*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:      repos,
		JWTService: deps.JWTService,
		Storage:    deps.FileStorage,
		Publisher:  deps.Publisher,
		Profile: appServices.ProfileOptions{
			LegacyHostPrefix:  cfg.Uploads.LegacyHostPrefix,
			MaxCertifications: cfg.Uploads.MaxCertifications,
			CleanupSuperseded: cfg.Uploads.CleanupSuperseded,
		},
		Logger: lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	uploadConfig := appControllers.UploadConfig{
		MaxUploadBytes:    cfg.MaxUploadBytes(),
		MaxCertifications: cfg.Uploads.MaxCertifications,
		Inspector:         filestorage.Inspector{InspectResumes: cfg.Uploads.InspectResumes},
	}
	controllerLogger := func(name string) zerolog.Logger {
		return lgr.With().Str("component", name).Logger()
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.Auth, controllerLogger("auth_controller")),
		Profile:      appControllers.NewProfileController(deps.Services.Profile, deps.FileStorage, uploadConfig, controllerLogger("profile_controller")),
		Jobs:         appControllers.NewJobController(deps.Services.Jobs, controllerLogger("job_controller")),
		Admin:        appControllers.NewAdminController(deps.Services.Profile),
		Applications: appControllers.NewApplicationController(deps.Services.Applications, deps.FileStorage, uploadConfig, controllerLogger("application_controller")),
		Files:        appControllers.NewFileController(deps.FileStorage, cfg.Uploads.URLPrefix, controllerLogger("file_controller")),
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production", "release":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))
	router.Use(appMiddleware.CORS(appMiddleware.CORSConfig{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           helpers.ParseDuration(cfg.CORS.MaxAge, 12*time.Hour),
	}))
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	if gin.Mode() != gin.ReleaseMode {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
