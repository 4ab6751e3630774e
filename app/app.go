// File: app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"go-login-api/config"
	"go-login-api/handler"
	"go-login-api/logger"
	"go-login-api/router"
	"go-login-api/service"
	"go-login-api/view"
	"net/http"
	"os/signal"
	"syscall"
)

// App holds the wired HTTP stack for one configuration.
type App struct {
	Config config.Config
	Router http.Handler
	Server *http.Server
}

// New wires the service, views and handlers for cfg.
func New(cfg config.Config) (*App, error) {
	authService, err := newAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not set up credential check: %w", err)
	}

	renderer, err := view.NewRenderer("/login")
	if err != nil {
		return nil, fmt.Errorf("could not compile views: %w", err)
	}

	loginHandler := handler.NewLoginHandler(authService, renderer)
	r := router.NewRouter(loginHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{Config: cfg, Router: r, Server: srv}, nil
}

func newAuthService(cfg config.Config) (*service.AuthService, error) {
	if cfg.Auth.PasswordHash != "" {
		return service.NewAuthServiceWithHash(cfg.Auth.Username, cfg.Auth.PasswordHash)
	}
	return service.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.BcryptCost)
}

// Run loads configuration from configPath, starts the server and blocks until
// ctx is done or SIGINT/SIGTERM arrives, then shuts down gracefully.
// A non-empty port overrides the configured one.
func Run(ctx context.Context, configPath, port string) error {
	logger.Init()

	if err := config.LoadConfig(configPath); err != nil {
		return err
	}
	cfg := config.AppConfig
	if port != "" {
		cfg.Server.Port = port
	}

	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	logger.Log.Info("Configuration loaded successfully")

	a, err := New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exited properly")
	return nil
}
