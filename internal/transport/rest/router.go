package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warmline/warmline-backend/internal/config"
	"github.com/warmline/warmline-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Auth        middleware.Middleware
	WebhookAuth middleware.Middleware
	Artifacts   *ArtifactHandler
	Suggestions *SuggestionHandler
	Health      *HealthHandler
}

// NewRouter assembles the HTTP routing table. User-facing routes sit behind
// bearer auth; transcription worker callbacks sit behind the shared webhook
// secret; probes and metrics are open.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(deps.CORS))

	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/live", deps.Health.Live)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(deps.WebhookAuth)
			r.Post("/artifacts/{id}/transcription-started", deps.Artifacts.TranscriptionStarted)
			r.Post("/artifacts/{id}/transcription-complete", deps.Artifacts.TranscriptionComplete)
			r.Post("/artifacts/{id}/transcription-failed", deps.Artifacts.TranscriptionFailed)
		})

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth)

			r.Post("/artifacts", deps.Artifacts.Ingest)
			r.Get("/artifacts", deps.Artifacts.List)
			r.Get("/artifacts/{id}", deps.Artifacts.Get)
			r.Post("/artifacts/{id}/parse", deps.Artifacts.RequestParse)
			r.Post("/artifacts/{id}/reprocess", deps.Artifacts.Reprocess)

			r.Get("/suggestions", deps.Suggestions.List)
			r.Get("/suggestions/{id}", deps.Suggestions.Get)
			r.Post("/suggestions/{id}/review", deps.Suggestions.Review)
		})
	})

	return r
}
