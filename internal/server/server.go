// Package server wires the admin API: storage, handlers, middleware
// and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/handlers"
	"github.com/thaedal/thaedal-admin/internal/server/jwt"
	"github.com/thaedal/thaedal-admin/internal/server/middleware"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
	"github.com/thaedal/thaedal-admin/internal/server/storage/sqlite"
)

// Config holds the server configuration.
type Config struct {
	Addr          string
	DBPath        string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Server owns the router and its dependencies. The database connection
// is closed during shutdown.
type Server struct {
	router  *chi.Mux
	config  Config
	logger  *slog.Logger
	db      *sqlite.Storage
	limiter *middleware.RateLimiter
}

// New assembles the server: opens the database, seeds the admin
// account and wires all routes.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := seedAdmin(ctx, db, cfg, logger); err != nil {
		db.Close()
		return nil, err
	}

	tokens, err := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  logger,
		db:      db,
		limiter: middleware.NewRateLimiter(10, time.Minute, logger),
	}
	s.setupRoutes(tokens)
	return s, nil
}

// seedAdmin creates the configured console account if it is missing,
// so a fresh install can log in immediately.
func seedAdmin(ctx context.Context, db *sqlite.Storage, cfg Config, logger *slog.Logger) error {
	_, err := db.GetAdminByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New().String(),
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("seeded admin account", "email", cfg.AdminEmail)
	return nil
}

func (s *Server) setupRoutes(tokens *jwt.Service) {
	authHandler := handlers.NewAuthHandler(s.logger, s.db, tokens)
	statsHandler := handlers.NewStatsHandler(s.logger, s.db)
	videoHandler := handlers.NewVideoHandler(s.logger, s.db)
	categoryHandler := handlers.NewCategoryHandler(s.logger, s.db)
	creatorHandler := handlers.NewCreatorHandler(s.logger, s.db)
	userHandler := handlers.NewUserHandler(s.logger, s.db)
	subscriptionHandler := handlers.NewSubscriptionHandler(s.logger, s.db, s.db)
	paymentHandler := handlers.NewPaymentHandler(s.logger, s.db)
	settingsHandler := handlers.NewSettingsHandler(s.logger, s.db, s.db, s.db)

	s.router.Use(middleware.Recovery(s.logger))
	s.router.Use(middleware.Logging(s.logger))

	s.router.Get("/health", handlers.Health)

	s.router.Route("/api/v1/admin", func(r chi.Router) {
		r.With(s.limiter.Middleware).Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(s.logger, tokens))

			r.Post("/logout", authHandler.Logout)
			r.Get("/profile", authHandler.Profile)
			r.Get("/stats", statsHandler.Get)

			r.Route("/videos", func(r chi.Router) {
				r.Get("/", videoHandler.List)
				r.Post("/", videoHandler.Create)
				r.Get("/{id}", videoHandler.Get)
				r.Put("/{id}", videoHandler.Update)
				r.Delete("/{id}", videoHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.List)
				r.Post("/", categoryHandler.Create)
				r.Get("/{id}", categoryHandler.Get)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/creators", func(r chi.Router) {
				r.Get("/", creatorHandler.List)
				r.Post("/", creatorHandler.Create)
				r.Get("/{id}", creatorHandler.Get)
				r.Put("/{id}", creatorHandler.Update)
				r.Delete("/{id}", creatorHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Delete("/{id}", userHandler.Delete)
				r.Post("/{id}/toggle-subscription", userHandler.ToggleSubscription)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/", subscriptionHandler.List)
				r.Route("/plans", func(r chi.Router) {
					r.Get("/", subscriptionHandler.ListPlans)
					r.Post("/", subscriptionHandler.CreatePlan)
					r.Get("/{id}", subscriptionHandler.GetPlan)
					r.Put("/{id}", subscriptionHandler.UpdatePlan)
					r.Delete("/{id}", subscriptionHandler.DeletePlan)
				})
				r.Get("/{id}", subscriptionHandler.Get)
				r.Post("/{id}/status", subscriptionHandler.UpdateStatus)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", paymentHandler.List)
				r.Get("/{id}", paymentHandler.Get)
			})

			r.Route("/legal-pages", func(r chi.Router) {
				r.Get("/", settingsHandler.ListLegalPages)
				r.Get("/{type}", settingsHandler.GetLegalPage)
				r.Put("/{type}", settingsHandler.UpdateLegalPage)
			})

			r.Get("/payment-settings", settingsHandler.GetPaymentSettings)
			r.Put("/payment-settings", settingsHandler.UpdatePaymentSettings)

			r.Get("/notifications", settingsHandler.ListNotifications)
			r.Post("/notifications/send", settingsHandler.SendNotification)
		})
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the listener until SIGINT/SIGTERM, then drains in-flight
// requests and closes the database.
func (s *Server) Start() error {
	httpServer := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("admin API listening", "addr", s.config.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errC:
		s.close()
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.close()
		return fmt.Errorf("shutdown failed: %w", err)
	}

	s.close()
	return nil
}

func (s *Server) close() {
	s.limiter.Stop()
	if err := s.db.Close(); err != nil {
		s.logger.Error("failed to close database", "error", err)
	}
}
