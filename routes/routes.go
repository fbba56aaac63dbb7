package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/leaderboard-admin/docs"
	"github.com/Dosada05/leaderboard-admin/handlers"
	"github.com/Dosada05/leaderboard-admin/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AllowedOrigins []string
	Registry       *prometheus.Registry
	Logger         *slog.Logger
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	participantHandler *handlers.ParticipantHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	dataHandler *handlers.DataHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(opts.Logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	router.Use(chiMiddleware.Recoverer)
	if opts.Registry != nil {
		router.Use(middleware.NewHTTPMetrics(opts.Registry).Handler)
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/participants", func(r chi.Router) {
			r.Get("/", participantHandler.ListParticipants)
			r.Post("/", participantHandler.RegisterParticipant)
			r.Delete("/{id}", participantHandler.DeleteParticipant)
		})
		r.Post("/move-to-leaderboard/{id}", participantHandler.MoveToLeaderboard)

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", leaderboardHandler.ListLeaderboard)
			r.Post("/{id}/status", leaderboardHandler.SetLeaderboardStatus)
		})

		r.Get("/all-data", dataHandler.AllData)
		r.Get("/generate-code", dataHandler.GenerateCode)
		r.Get("/export/teams.xlsx", dataHandler.ExportTeams)
	})

	if webSocketHandler != nil {
		router.Get("/ws/leaderboard", webSocketHandler.ServeWs)
	}

	if opts.Registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))
	}

	router.Get("/swagger/doc.json", docs.ServeOpenAPI)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
