/*
Package main is the entry point for the InnoEvent portal.

It is responsible for loading configuration, initializing the global logging system, wiring the
InnoEvent API client into the per-browser workspace registry, setting up the HTTP server,
and gracefully handling operating system interrupt signals (SIGINT, SIGTERM)
to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"innoevent/internal/app/apiclient"
	"innoevent/internal/app/workspace"
	"innoevent/internal/configs"
	"innoevent/internal/handler"
	"innoevent/internal/pkg/limiter"
	"innoevent/internal/pkg/logx"
)

const (
	AuthRate  = 0.2
	AuthBurst = 5

	WorkspaceRate  = 0.1
	WorkspaceBurst = 10
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("api_base_url", cfg.APIBaseURL).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Int("min_total_seats", cfg.MinTotalSeats).
		Str("display_locale", cfg.DisplayLocale).
		Str("timezone", cfg.Location.String()).
		Dur("workspace_idle_timeout", cfg.WorkspaceIdleTimeout).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := apiclient.New(cfg.APIBaseURL, nil)
	workspaces := workspace.NewManager(workspace.PortalFactory(api, cfg), cfg.WorkspaceIdleTimeout)
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)
	workspaceLimiter := limiter.NewIPRateLimiter(rate.Limit(WorkspaceRate), WorkspaceBurst)

	router := handler.Router(&handler.AppDeps{
		Config:           cfg,
		Workspaces:       workspaces,
		AuthLimiter:      authLimiter,
		WorkspaceLimiter: workspaceLimiter,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("InnoEvent portal starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	workspaces.Shutdown()
	authLimiter.Stop()
	workspaceLimiter.Stop()

	logx.Info("Server gracefully stopped.")
}
