package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/character-api/docs"
	httphandlers "github.com/rafabene/character-api/internal/handlers/http"
	"github.com/rafabene/character-api/internal/infrastructure/config"
	"github.com/rafabene/character-api/internal/infrastructure/i18n"
	"github.com/rafabene/character-api/internal/infrastructure/logging"
	"github.com/rafabene/character-api/internal/infrastructure/metrics"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/character-api/internal/services"
)

// @title        Character API
// @version      1.0
// @description  CRUD de personagens de chat com respostas em envelope.
// @BasePath     /
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting character api",
		"env", cfg.Env,
		"version", "dev",
		"db_driver", cfg.Database.Driver,
	)

	// Conectar ao banco de dados
	db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger, cfg.Logging.Level)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := gormdb.AutoMigrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	characterRepo := gormdb.NewCharacterRepository(db)
	uow := gormdb.NewUnitOfWork(db)

	// Inicializar services
	characterService := services.NewCharacterService(characterRepo, uow, logger)

	// Inicializar handlers
	characterHandler := httphandlers.NewCharacterHandler(characterService, cfg.Server.BaseURL, !cfg.IsProduction())

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.Host = cfg.Server.Host + ":" + cfg.Server.Port

	router, err := httphandlers.NewRouter(httphandlers.RouterDeps{
		Env:              cfg.Env,
		EnableSwagger:    !cfg.IsProduction(),
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Logger:           logger,
		I18n:             i18nService,
		Metrics:          metrics.NewHTTPMetrics(),
		CharacterHandler: characterHandler,
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		log.Fatal(err)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := gormdb.Close(db); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	logger.Info("server exited")
}
