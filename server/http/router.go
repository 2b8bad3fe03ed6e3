package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"component-linker/internal/config"
	linkHnd "component-linker/internal/linkage/handler"
	"component-linker/internal/linkage/model"
	"component-linker/internal/metrics"
	"component-linker/internal/middleware"
	"component-linker/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, m *metrics.Metrics, cands []model.Component) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger, m))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(cfg.MaxUploadBytes()))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", m.Handler())

	r.Post("/linkage", linkHnd.Linkage(cfg, logger, m, cands))

	return r
}
