package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eohue/ibookee-web-sub001/internal/app/controllers"
	appMigrations "github.com/eohue/ibookee-web-sub001/internal/app/migrations"
	appRepos "github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	appRoutes "github.com/eohue/ibookee-web-sub001/internal/app/routes"
	appServices "github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/config"
	"github.com/eohue/ibookee-web-sub001/internal/db"
	appMiddleware "github.com/eohue/ibookee-web-sub001/internal/middleware"
	pkgAuth "github.com/eohue/ibookee-web-sub001/internal/pkg/auth"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/email"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/filestorage"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/images"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/markdown"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/oauth"
	"github.com/eohue/ibookee-web-sub001/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	ProjectService     appServices.ProjectService
	EventService       appServices.EventService
	ProgramService     appServices.ProgramService
	RecruitmentService appServices.RecruitmentService
	ArticleService     appServices.ArticleService
	CommunityService   appServices.CommunityService
	ReporterService    appServices.ReporterService
	SiteService        appServices.SiteService
	InquiryService     appServices.InquiryService
	PageService        appServices.PageService
	UploadService      appServices.UploadService

	AuthController        *appControllers.AuthController
	ProjectController     *appControllers.ProjectController
	EventController       *appControllers.EventController
	ProgramController     *appControllers.ProgramController
	RecruitmentController *appControllers.RecruitmentController
	ArticleController     *appControllers.ArticleController
	CommunityController   *appControllers.CommunityController
	ReporterController    *appControllers.ReporterController
	SiteController        *appControllers.SiteController
	InquiryController     *appControllers.InquiryController
	PageController        *appControllers.PageController
	UploadController      *appControllers.UploadController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Storage        *filestorage.Chain
	Logger         zerolog.Logger
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
// seeds default data.
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

	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Storage chain: S3 first, then Supabase, local disk as the fallback.
	// Unconfigured backends fail their constructor and are left out.
	var backends []filestorage.Storage
	if s3, err := filestorage.NewS3Storage(
		context.Background(),
		cfg.Storage.S3.Bucket,
		cfg.Storage.S3.Region,
		cfg.Storage.S3.AccessKeyID,
		cfg.Storage.S3.SecretAccessKey,
	); err == nil {
		backends = append(backends, s3)
	} else {
		lgr.Info().Err(err).Msg("S3 storage not configured")
	}
	if supabase, err := filestorage.NewSupabaseStorage(
		cfg.Storage.Supabase.URL,
		cfg.Storage.Supabase.ServiceKey,
		cfg.Storage.Supabase.Bucket,
	); err == nil {
		backends = append(backends, supabase)
	} else {
		lgr.Info().Err(err).Msg("Supabase storage not configured")
	}
	local, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize local storage")
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	backends = append(backends, local)
	deps.Storage = filestorage.NewChain(backends...)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// OAuth providers: constructors return nil when the client id is unset.
	var providers []oauth.Provider
	redirectBase := strings.TrimRight(cfg.OAuth.RedirectBaseURL, "/")
	if p := oauth.NewGoogleProvider(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, redirectBase+"/auth/google/callback"); p != nil {
		providers = append(providers, p)
	}
	if p := oauth.NewNaverProvider(cfg.OAuth.Naver.ClientID, cfg.OAuth.Naver.ClientSecret, redirectBase+"/auth/naver/callback"); p != nil {
		providers = append(providers, p)
	}
	if p := oauth.NewKakaoProvider(cfg.OAuth.Kakao.ClientID, cfg.OAuth.Kakao.ClientSecret, redirectBase+"/auth/kakao/callback"); p != nil {
		providers = append(providers, p)
	}
	registry := oauth.NewRegistry(providers...)

	renderer := markdown.NewRenderer()
	processor := images.NewProcessor(cfg.Upload.MaxImageWidth, cfg.Upload.WebPQuality)

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.Port == 465,
		AdminTo:   cfg.SMTP.AdminTo,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		registry,
		lgr,
	)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.Repos.ApplicationRepository, lgr)
	deps.RecruitmentService = appServices.NewRecruitmentService(deps.Repos.RecruitmentRepository)
	deps.ArticleService = appServices.NewArticleService(deps.Repos.ArticleRepository, renderer)
	deps.CommunityService = appServices.NewCommunityService(deps.Repos.CommunityRepository)
	deps.ReporterService = appServices.NewReporterService(deps.Repos.ReporterRepository, renderer, lgr)
	deps.SiteService = appServices.NewSiteService(deps.Repos.PartnerRepository, deps.Repos.HistoryRepository, deps.Repos.SocialRepository)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository, emailService, lgr)
	deps.PageService = appServices.NewPageService(deps.Repos.PageImageRepository, deps.Repos.SettingRepository)
	deps.UploadService = appServices.NewUploadService(deps.Storage, processor, cfg.Upload.MaxFileSizeMB, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.RecruitmentController = appControllers.NewRecruitmentController(deps.RecruitmentService)
	deps.ArticleController = appControllers.NewArticleController(deps.ArticleService)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService)
	deps.ReporterController = appControllers.NewReporterController(deps.ReporterService, deps.AuthService)
	deps.SiteController = appControllers.NewSiteController(deps.SiteService)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)
	deps.PageController = appControllers.NewPageController(deps.PageService)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(""))

	appRoutes.SetupSwagger(router)

	// Local uploads are served straight from disk.
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProjectController,
		deps.EventController,
		deps.ProgramController,
		deps.RecruitmentController,
		deps.ArticleController,
		deps.CommunityController,
		deps.ReporterController,
		deps.SiteController,
		deps.InquiryController,
		deps.PageController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
