package server

import (
	"context"
	"io/fs"
	"log"
	"os"
	"strings"

	_ "github.com/cyphera/cyphera-pitch/docs" // swagger docs
	"github.com/cyphera/cyphera-pitch/internal/chapters"
	awsclient "github.com/cyphera/cyphera-pitch/internal/client/aws"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/handlers"
	"github.com/cyphera/cyphera-pitch/internal/helpers"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/middleware"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	accessCodeEnv    = "PITCH_ACCESS_CODE"
	accessCodeArnEnv = "PITCH_ACCESS_CODE_ARN"

	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40
)

// Config holds everything the server reads from the environment.
type Config struct {
	Stage          string
	DefaultLocale  content.Locale
	ContentDir     string
	AccessCode     string
	RateLimitRPS   int
	RateLimitBurst int
	// TrustedProxies are the peers whose X-Forwarded-For is believed.
	// Empty means the connection's remote address is the client.
	TrustedProxies []string
	// Watch reloads ContentDir on change. Only honoured when ContentDir is set.
	Watch bool
}

// Server is an initialized router together with the content it serves.
type Server struct {
	Config  Config
	Store   *content.Store
	Router  *gin.Engine
	watcher *content.Watcher
	limiter *middleware.RateLimiter
}

// LoadStage reads .env and returns the validated STAGE. It exits on an
// invalid stage, before any logger exists.
func LoadStage() string {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage
}

// LoadEnvironment loads the stage and initializes the logger for it.
func LoadEnvironment() string {
	stage := LoadStage()
	logger.InitLogger(stage)
	return stage
}

// ConfigFromEnv builds the server configuration for stage. The access code
// is resolved through Secrets Manager when PITCH_ACCESS_CODE_ARN is set.
func ConfigFromEnv(ctx context.Context, stage string) Config {
	defaultLocale, ok := content.ParseLocale(helpers.GetEnvWithDefault("DEFAULT_LOCALE", string(content.DefaultLocale)))
	if !ok {
		logger.Warn("Unsupported DEFAULT_LOCALE, using built-in default",
			zap.String("value", os.Getenv("DEFAULT_LOCALE")),
			zap.String("default", string(content.DefaultLocale)),
		)
		defaultLocale = content.DefaultLocale
	}

	contentDir := strings.TrimSpace(os.Getenv("CONTENT_DIR"))

	return Config{
		Stage:          stage,
		DefaultLocale:  defaultLocale,
		ContentDir:     contentDir,
		AccessCode:     resolveAccessCode(ctx),
		RateLimitRPS:   helpers.GetEnvInt("RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst: helpers.GetEnvInt("RATE_LIMIT_BURST", defaultRateLimitBurst),
		TrustedProxies: helpers.SplitAndTrim(os.Getenv("TRUSTED_PROXIES")),
		Watch:          stage == helpers.StageLocal && contentDir != "",
	}
}

func resolveAccessCode(ctx context.Context) string {
	var secretsClient *awsclient.SecretsManagerClient
	if os.Getenv(accessCodeArnEnv) != "" {
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Error("Failed to initialize AWS Secrets Manager client", zap.Error(err))
		} else {
			secretsClient = client
		}
	}

	code, err := secretsClient.GetSecretString(ctx, accessCodeArnEnv, accessCodeEnv)
	if err != nil {
		logger.Info("No access code configured, site is public")
		return ""
	}
	return code
}

// NewStore builds a content store over ContentDir, or over the embedded
// content when no directory is configured.
func NewStore(cfg Config) *content.Store {
	var fsys fs.FS = content.EmbeddedFS()
	if cfg.ContentDir != "" {
		fsys = os.DirFS(cfg.ContentDir)
	}
	return content.NewStore(content.NewLoader(fsys), chapters.Default, cfg.DefaultLocale)
}

// New loads content and builds the router. The content watcher, when
// enabled, runs until ctx is cancelled or Close is called.
func New(ctx context.Context, cfg Config) (*Server, error) {
	store := NewStore(cfg)
	if err := store.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	if cfg.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "invalid TRUSTED_PROXIES")
	}

	s := &Server{Config: cfg, Store: store, Router: router}

	if cfg.Watch && cfg.ContentDir != "" {
		w, err := content.NewWatcher(cfg.ContentDir, store.Load, 0)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create content watcher")
		}
		if err := w.Start(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to watch %s", cfg.ContentDir)
		}
		s.watcher = w
	}

	s.Router.Use(gin.Recovery())
	s.limiter = InitializeRoutes(s.Router, store, cfg)

	logger.Info("Server initialized",
		zap.String("stage", cfg.Stage),
		zap.String("default_locale", string(cfg.DefaultLocale)),
		zap.Bool("content_override", cfg.ContentDir != ""),
		zap.Bool("watch", s.watcher != nil),
		zap.Bool("access_gate", cfg.AccessCode != ""),
		zap.Strings("trusted_proxies", cfg.TrustedProxies),
	)
	return s, nil
}

// InitializeHandlers reads the environment and builds a server, exiting on
// any startup failure.
func InitializeHandlers(ctx context.Context) *Server {
	stage := LoadEnvironment()
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	s, err := New(ctx, ConfigFromEnv(ctx, stage))
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	return s
}

// Close stops background work started by New.
func (s *Server) Close() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// InitializeRoutes installs middleware and routes on router. The returned
// rate limiter is nil when rate limiting is disabled.
func InitializeRoutes(router *gin.Engine, source interfaces.ContentSource, cfg Config) *middleware.RateLimiter {
	pages := handlers.NewPageHandler(source)
	chapterHandler := handlers.NewChapterHandler(source)
	deckHandler := handlers.NewDeckHandler(source)
	contentHandler := handlers.NewContentHandler(source)
	healthHandler := handlers.NewHealthHandler(source)

	router.SetHTMLTemplate(render.MustTemplates())

	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(cfg.Stage == helpers.StageLocal))
	router.Use(middleware.LocaleMiddleware(source.DefaultLocale()))

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		router.Use(limiter.Middleware())
	}
	router.Use(middleware.AccessGate(cfg.AccessCode, pages.AccessForm))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	router.GET("/", pages.RedirectHome)
	for _, l := range content.Supported {
		localized := router.Group("/" + string(l))
		{
			localized.GET("/", pages.Index)
			localized.GET("/chapters/:ref", pages.Chapter)
			localized.GET("/deck", pages.Deck)
			localized.GET("/print", pages.Print)
		}
	}

	// Unprefixed forms negotiate the locale.
	router.GET("/chapters/:ref", pages.Chapter)
	router.GET("/deck", pages.Deck)
	router.GET("/print", pages.Print)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/chapters", chapterHandler.ListChapters)
		v1.GET("/chapters/:ref", chapterHandler.GetChapter)
		v1.GET("/routes", chapterHandler.GetRouteParams)
		v1.GET("/deck", deckHandler.GetDeck)
		v1.GET("/print", deckHandler.GetPrint)
		v1.GET("/content/issues", contentHandler.ListIssues)
		v1.GET("/locales", contentHandler.ListLocales)
	}

	router.NoRoute(pages.NotFound)
	return limiter
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if origins := helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	if methods := helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_METHODS")); len(methods) > 0 {
		corsConfig.AllowMethods = methods
	} else {
		corsConfig.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	}

	if headers := helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_HEADERS")); len(headers) > 0 {
		corsConfig.AllowHeaders = headers
	} else {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", middleware.AccessCodeHeader, "X-Correlation-ID"}
	}

	if exposed := helpers.SplitAndTrim(os.Getenv("CORS_EXPOSED_HEADERS")); len(exposed) > 0 {
		corsConfig.ExposeHeaders = exposed
	} else {
		corsConfig.ExposeHeaders = []string{"Retry-After", "X-Correlation-ID"}
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
