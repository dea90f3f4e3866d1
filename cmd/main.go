// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/RaczoOBY/bible-app/internal/config"
	"github.com/RaczoOBY/bible-app/internal/gamification"
	"github.com/RaczoOBY/bible-app/internal/handlers"
	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"
	"github.com/RaczoOBY/bible-app/internal/repository"
	"github.com/RaczoOBY/bible-app/internal/service"
	"github.com/RaczoOBY/bible-app/internal/streak"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// Plan catalog: loaded once, validated, injected everywhere.
	catalog, err := plan.Load(config.Cfg.App.PlanFile)
	if err != nil {
		slog.Error("Error loading reading plan", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Reading plan loaded",
		slog.Int("months", len(catalog.Months())),
		slog.Int("days_per_month", catalog.DaysPerPlanMonth()),
	)

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := db.AutoMigrate(
		&model.User{},
		&model.Reading{},
		&model.Achievement{},
		&model.UserAchievement{},
	); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection.
	readingRepo := repository.NewGormReadingRepository()
	userRepo := repository.NewGormUserRepository()
	achievementRepo := repository.NewGormAchievementRepository()

	if err := achievementRepo.SyncDefinitions(context.Background(), db, catalog.AchievementDefs()); err != nil {
		slog.Error("Error syncing achievement catalog", slog.Any("error", err))
		os.Exit(1)
	}

	calc := gamification.NewCalculator(catalog)
	engine := streak.NewEngine(catalog)

	readingService := service.NewReadingService(db, readingRepo, userRepo, achievementRepo, catalog, calc, engine, &config.Cfg)
	progressService := service.NewProgressService(db, readingRepo, userRepo, catalog, calc, engine)
	achievementService := service.NewAchievementService(db, achievementRepo, catalog)

	readingHandler := handlers.NewReadingHandler(readingService)
	progressHandler := handlers.NewProgressHandler(progressService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	planHandler := handlers.NewPlanHandler(catalog)

	// Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				slog.Warn("Auth disabled, applying development user middleware")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Route("/readings", func(r chi.Router) {
				r.Post("/toggle", readingHandler.ToggleReading)
				r.Get("/day", readingHandler.GetDayReadings)
			})
			r.Get("/progress", progressHandler.GetProgress)
			r.Get("/achievements", achievementHandler.ListAchievements)
			r.Get("/plan", planHandler.GetPlan)
		})
	})

	// Health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
