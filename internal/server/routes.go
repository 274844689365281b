package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"placerank/internal/category"
	"placerank/internal/engine"
	"placerank/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(e *engine.Engine, categories *category.Store, log *slog.Logger) {
	analyzeHandler := api.NewAnalyzeHandler(e, log)
	metaHandler := api.NewMetaHandler(categories, s.Cfg)
	healthHandler := api.NewHealthHandler()

	s.App.Get("/health", healthHandler.Health)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := s.App.Group("/api")
	apiGroup.Get("/business-types", metaHandler.BusinessTypes)
	apiGroup.Get("/guides", metaHandler.Guides)
	apiGroup.Get("/guides/:section", metaHandler.GuideSection)
	apiGroup.Get("/config/status", metaHandler.ConfigStatus)
	apiGroup.Post("/v2/analyze", analyzeHandler.Analyze)
}
