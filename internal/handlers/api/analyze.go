// Package api contains the JSON handlers for the analysis service.
package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"placerank/internal/engine"
	"placerank/internal/models"
	"placerank/internal/validation"
)

// AnalyzeHandler runs the full keyword analysis for a business.
type AnalyzeHandler struct {
	engine *engine.Engine
	log    *slog.Logger
}

func NewAnalyzeHandler(e *engine.Engine, log *slog.Logger) *AnalyzeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AnalyzeHandler{engine: e, log: log}
}

// Analyze handles POST /api/v2/analyze.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req models.AnalysisRequest
	if err := c.Bind().JSON(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg := validation.ValidateAnalysisRequest(&req); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.engine.Analyze(c.Context(), req)
	if err != nil {
		h.log.Error("analysis failed",
			"business_type", req.BusinessType,
			"location", req.Location,
			"error", err)
		return jsonError(c, fiber.StatusInternalServerError, "analysis failed")
	}

	h.log.Info("analysis complete",
		"analysis_id", result.AnalysisID,
		"business_type", req.BusinessType,
		"keywords", result.TotalKeywords,
		"gap", result.Summary.Gap)
	return jsonSuccess(c, result)
}
