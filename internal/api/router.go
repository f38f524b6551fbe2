package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shubham56-h/Trackify/internal/api/handlers"
	"github.com/shubham56-h/Trackify/internal/api/middleware"
	"github.com/shubham56-h/Trackify/internal/live"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/shubham56-h/Trackify/internal/service"
)

func NewRouter(services *service.Services, hub *live.Hub, m *metrics.Manager, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(m))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	authHandler := handlers.NewAuthHandler(services.Auth)
	splitHandler := handlers.NewSplitHandler(services.Split, services.Rotation)
	exerciseHandler := handlers.NewExerciseHandler(services.Exercise)
	todayHandler := handlers.NewTodayHandler(services.Rotation, services.Workout)
	progressHandler := handlers.NewProgressHandler(services.Progress)
	liveHandler := handlers.NewLiveHandler(hub, services.Auth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/today", func(r chi.Router) {
			// Authenticates through the query string.
			r.Get("/live", liveHandler.Handle)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/", todayHandler.Get)
				r.Post("/start", todayHandler.Start)
				r.Post("/add-set", todayHandler.AddSet)
				r.Post("/finish", todayHandler.Finish)
				r.Post("/cancel", todayHandler.Cancel)
				r.Get("/session-summary", todayHandler.Summary)
				r.Get("/exercise-history/{exerciseID}", todayHandler.ExerciseHistory)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/splits", func(r chi.Router) {
				r.Post("/", splitHandler.Create)
				r.Get("/", splitHandler.List)
				r.Get("/templates", splitHandler.Templates)
				r.Post("/assign", splitHandler.Assign)
				r.Get("/{id}", splitHandler.Get)
				r.Delete("/{id}", splitHandler.Delete)
				r.Delete("/{id}/days/{dayID}", splitHandler.DeleteDay)
			})

			r.Route("/exercises", func(r chi.Router) {
				r.Post("/", exerciseHandler.Create)
				r.Get("/{muscleGroup}/{specificMuscle}", exerciseHandler.List)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/best-lifts", progressHandler.BestLifts)
				r.Get("/volume", progressHandler.Volume)
				r.Get("/heatmap", progressHandler.Heatmap)
				r.Get("/stats", progressHandler.Stats)
				r.Get("/workout-history", progressHandler.WorkoutHistory)
			})
		})
	})

	return r
}
