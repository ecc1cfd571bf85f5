// Package app wires repositories, services and handlers into the HTTP API
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/nursingskill/backend/internal/capture"
	"github.com/nursingskill/backend/internal/catalog"
	"github.com/nursingskill/backend/internal/config"
	"github.com/nursingskill/backend/internal/handlers"
	"github.com/nursingskill/backend/internal/middlewares"
	"github.com/nursingskill/backend/internal/navigation"
	"github.com/nursingskill/backend/internal/repositories"
	"github.com/nursingskill/backend/internal/services"
	"github.com/nursingskill/backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// App holds the HTTP router and the stateful flows that must be stopped on shutdown
type App struct {
	Router http.Handler

	games      interface{ Abandon() }
	recordings interface{ Reset(ctx context.Context) }
	logger     *zap.Logger
}

// New builds the application on top of a key-value store.
//
// Clips left over from a previous run are removed.
func New(cfg *config.Config, store repositories.KVStore, logger *zap.Logger) (*App, error) {
	skills, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	historyRepo := repositories.NewHistoryRepository(store, logger)
	profileRepo := repositories.NewProfileRepository(store, logger)

	// Initialize capture
	fileStorage := storage.NewLocalStorage(cfg.Media.BasePath)
	flow := capture.NewFlow(capture.NewFileDevice(fileStorage), logger)

	// Initialize services
	profileService := services.NewProfileService(profileRepo, logger)
	practiceService := services.NewPracticeService(skills, logger)
	assessmentService := services.NewAssessmentService(skills, historyRepo, logger)
	gameService := services.NewGameService(skills, historyRepo, cfg.Game.ItemTimeLimit, cfg.Game.OrderTimeLimit, logger)
	dashboardService := services.NewDashboardService(historyRepo, cfg.Location, logger)
	recordingService := services.NewRecordingService(skills, flow, fileStorage, logger)

	recordingService.Reset(context.Background())

	navigator := navigation.NewNavigator(navigation.Hooks{
		LeavePractice: func(ctx context.Context) { practiceService.Reset() },
		LeaveVideo:    func(ctx context.Context) { recordingService.Leave() },
		LeaveGame:     func(ctx context.Context) { gameService.Abandon() },
	}, logger)

	// Resources are held only while their view is active
	gameService.OnEnter(func(ctx context.Context) { navigator.Navigate(ctx, navigation.Game{}) })
	recordingService.OnEnter(func(ctx context.Context) { navigator.Navigate(ctx, navigation.Video{}) })

	// Logging out ends every flow of the session
	profileService.OnLogout(navigator.Reset)
	profileService.OnLogout(func(ctx context.Context) {
		practiceService.Reset()
		gameService.Abandon()
		recordingService.Reset(ctx)
	})

	// Initialize handlers
	skillHandler := handlers.NewSkillHandler(skills, logger)
	profileHandler := handlers.NewProfileHandler(profileService, logger)
	navigationHandler := handlers.NewNavigationHandler(navigator, logger)
	practiceHandler := handlers.NewPracticeHandler(practiceService, logger)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, logger)
	gameHandler := handlers.NewGameHandler(gameService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	recordingHandler := handlers.NewRecordingHandler(recordingService, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger))
	r.Use(middlewares.RecoveryMiddleware(logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog and profile are available before the profile is entered
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))
			skillHandler.RegisterRoutes(r)
			profileHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireProfile(profileService, logger))

			// Recording routes set their own body limits
			recordingHandler.RegisterRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))
				navigationHandler.RegisterRoutes(r)
				practiceHandler.RegisterRoutes(r)
				assessmentHandler.RegisterRoutes(r)
				gameHandler.RegisterRoutes(r)
				dashboardHandler.RegisterRoutes(r)
			})
		})
	})

	return &App{
		Router:     r,
		games:      gameService,
		recordings: recordingService,
		logger:     logger,
	}, nil
}

// Shutdown stops the running game and releases the camera.
// Recorded clips are session-only and are removed.
func (a *App) Shutdown(ctx context.Context) {
	a.games.Abandon()
	a.recordings.Reset(ctx)
	a.logger.Info("Session flows stopped")
}

// loadCatalog loads the catalog from path, or the embedded one when path is empty
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		skills, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return skills, nil
	}

	skills, err := catalog.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	return skills, nil
}
