package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "award-voting/docs"
	"award-voting/internal/cache"
	"award-voting/internal/config"
	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
	"award-voting/internal/domain/settings"
	"award-voting/internal/domain/tally"
	"award-voting/internal/domain/user"
	api "award-voting/internal/http"
	"award-voting/internal/metrics"
	"award-voting/internal/platform/database"
	"award-voting/internal/platform/iplookup"
	jwtpkg "award-voting/internal/platform/jwt"
	"award-voting/internal/platform/webhook"
	"award-voting/internal/repository/postgres"
	"award-voting/internal/worker"
)

// @title           Award Voting API
// @version         1.0
// @description     Category voting with webhook-backed ballot submission
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	logger := slog.Default()

	metrics.Register()
	api.SetLogger(logger)

	db, err := database.NewPostgres(cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	categoryRepo := postgres.NewCategoryRepo(db)
	selectionRepo := postgres.NewSelectionRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	userRepo := postgres.NewUserRepo(db)

	var tallyCache *cache.TallyCache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		defer client.Close()
		tallyCache = cache.NewTallyCache(client, logger)
	}

	categorySvc := category.NewService(categoryRepo)
	settingsSvc := settings.NewService(settingsRepo)
	ballotSvc := ballot.NewService(
		selectionRepo,
		iplookup.NewClient(cfg.IPLookupURL, logger),
		webhook.NewClient(cfg.WebhookURL),
		logger,
	)
	userSvc := user.NewService(userRepo, user.NewProvisioner(userRepo), cfg.AdminEmail)

	// Avoid handing the service a typed nil when Redis is not configured.
	var tc tally.Cache
	if tallyCache != nil {
		tc = tallyCache
	}
	tallySvc := tally.NewService(categorySvc, selectionRepo, tc, cfg.PageSize)

	jwtMgr := jwtpkg.NewManager(cfg.JWTSecret, "")

	submitCh := make(chan worker.SubmissionEvent, 100)
	var invalidator worker.Invalidator
	if tallyCache != nil {
		invalidator = tallyCache
	}
	submissionWorker := worker.NewSubmissionWorker(submitCh, invalidator, logger)

	router := api.NewRouter(categorySvc, ballotSvc, tallySvc, settingsSvc, userSvc,
		jwtMgr, cfg.EventSlug, submitCh, db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go submissionWorker.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}

	logger.Info("server stopped")
}
