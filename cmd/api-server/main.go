package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"folkfest/database"
	"folkfest/internal/cache"
	"folkfest/internal/config"
	"folkfest/internal/http-api/handler"
	"folkfest/internal/http-api/middleware"
	"folkfest/internal/http-api/repository"
	"folkfest/internal/http-api/service"
	"folkfest/internal/translate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// ConnectDB also runs migrations and seeds the configured languages.
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Cache is optional: a nil-safe wrapper is returned even when redis is
	// unreachable, so the API still serves from the database.
	contentCache, err := cache.New(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
	}

	translator := translate.NewClient(cfg.TranslateAPIURL, cfg.TranslateAPIKey)

	// Repositories
	languageRepo := repository.NewLanguageRepository(db)
	festivalRepo := repository.NewFestivalRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	localeService := service.NewLocaleService(languageRepo, contentCache, cfg.DefaultLocale)
	translationService := service.NewTranslationService(languageRepo, translator)
	festivalService := service.NewFestivalService(festivalRepo, languageRepo, localeService)
	groupService := service.NewGroupService(groupRepo, languageRepo, localeService)
	sectionService := service.NewSectionService(sectionRepo, languageRepo, localeService)
	reportService := service.NewReportService(reportRepo, festivalRepo, groupRepo, sectionRepo)
	categoryService := service.NewCategoryService(categoryRepo, translationService, localeService, contentCache)
	menuService := service.NewMenuService(menuRepo, translationService, localeService, contentCache)
	bannerService := service.NewBannerService(bannerRepo, translationService, localeService, contentCache)
	articleService := service.NewArticleService(articleRepo, languageRepo, localeService)
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)

	// Handlers
	festivalHandler := handler.NewFestivalHandler(festivalService)
	groupHandler := handler.NewGroupHandler(groupService)
	sectionHandler := handler.NewSectionHandler(sectionService)
	reportHandler := handler.NewReportHandler(reportService)
	contentHandler := handler.NewContentHandler(categoryService, menuService, bannerService)
	articleHandler := handler.NewArticleHandler(articleService)
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	userHandler := handler.NewUserHandler(userService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		// Public catalogue
		festivalHandler.RegisterRoutes(api)
		groupHandler.RegisterRoutes(api)
		sectionHandler.RegisterRoutes(api)
		contentHandler.RegisterRoutes(api)
		articleHandler.RegisterRoutes(api)

		// Reports: any authenticated member of the federation
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(authService))
		reportHandler.RegisterRoutes(authed)

		// Admin and editor writes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(authService))
		admin.Use(middleware.RequireRole("admin", "editor"))
		{
			festivalHandler.RegisterAdminRoutes(admin)
			groupHandler.RegisterAdminRoutes(admin)
			sectionHandler.RegisterAdminRoutes(admin)
			contentHandler.RegisterAdminRoutes(admin)
			articleHandler.RegisterAdminRoutes(admin)
		}

		// Member directory is admin only
		users := api.Group("/admin")
		users.Use(middleware.AuthMiddleware(authService))
		users.Use(middleware.RequireAdmin())
		userHandler.RegisterAdminRoutes(users)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
