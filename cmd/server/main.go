package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oklog/run"
	"github.com/yukikurage/defect-tracker-api/internal/config"
	"github.com/yukikurage/defect-tracker-api/internal/database"
	"github.com/yukikurage/defect-tracker-api/internal/handlers"
	"github.com/yukikurage/defect-tracker-api/internal/repository"
	"github.com/yukikurage/defect-tracker-api/internal/services"
)

func main() {
	if err := runServer(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func runServer() error {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		return err
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		return err
	}

	// Initialize repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	defectRepo := repository.NewDefectRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, tokens)
	defectService := services.NewDefectService(defectRepo)

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	handlers.RegisterRoutes(r, tokens, handlers.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Defects: handlers.NewDefectHandler(defectService),
		Users:   handlers.NewUserHandler(userService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	var g run.Group

	// HTTP server
	g.Add(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	})

	// Signal handling
	g.Add(run.SignalHandler(context.Background(), os.Interrupt, syscall.SIGTERM))

	err = g.Run()
	var signalErr run.SignalError
	if errors.As(err, &signalErr) {
		slog.Info("shutting down", "signal", signalErr.Signal)
		return nil
	}
	return err
}
