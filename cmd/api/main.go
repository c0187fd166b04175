package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/config"
	"github.com/tassuhoiva/booking-api/internal/email"
	adminHandler "github.com/tassuhoiva/booking-api/internal/handler/admin"
	bookingHandler "github.com/tassuhoiva/booking-api/internal/handler/booking"
	serviceHandler "github.com/tassuhoiva/booking-api/internal/handler/service"
	"github.com/tassuhoiva/booking-api/internal/middleware"
	"github.com/tassuhoiva/booking-api/internal/repository"
	fsrepo "github.com/tassuhoiva/booking-api/internal/repository/firestore"
	"github.com/tassuhoiva/booking-api/internal/repository/postgres"
	"github.com/tassuhoiva/booking-api/internal/router"
	"github.com/tassuhoiva/booking-api/internal/store"
	"github.com/tassuhoiva/booking-api/pkg/auth"
	"github.com/tassuhoiva/booking-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Pretty)

	ctx := context.Background()

	var (
		serviceRepo repository.ServiceRepository
		bookingRepo repository.BookingRepository
	)

	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if cfg.Database.MigrationsDir != "" {
			if err := postgres.Migrate(cfg.Database); err != nil {
				log.Fatal().Err(err).Msg("failed to migrate database")
			}
		}

		serviceRepo = postgres.NewServiceRepository(db)
		bookingRepo = postgres.NewBookingRepository(db)

	case config.BackendFirestore:
		client, err := fsrepo.NewClient(ctx, cfg.Firestore)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to firestore")
		}
		defer client.Close()

		serviceRepo = fsrepo.NewServiceRepository(client)
		bookingRepo = fsrepo.NewBookingRepository(client)
	}

	log.Info().Str("backend", cfg.Backend).Msg("remote data store configured")

	catalogSvc := catalog.NewService(serviceRepo, cfg.Catalog.CacheTTL)
	st := store.New(catalogSvc, bookingRepo)
	st.LoadServices(ctx)

	mailer := email.NewService(cfg.SMTP)
	tokens := auth.NewTokenService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
	adminAuth := middleware.NewAdminAuth(tokens)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.New(router.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		CORS:             corsConfig,
	})

	api := r.API()
	serviceHandler.NewHandler(st, catalogSvc).RegisterRoutes(api)
	bookingHandler.NewHandler(st, mailer).RegisterRoutes(api, adminAuth.Require())
	adminHandler.NewHandler(cfg.Admin, tokens, st).RegisterRoutes(api, adminAuth.Require())

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
