package api

import (
	"github.com/gofiber/fiber/v3"

	"placerank/internal/category"
	"placerank/internal/config"
	"placerank/internal/guides"
	"placerank/internal/validation"
)

// MetaHandler serves the static lookups around the analysis API: known
// business types, the place optimization guide, and configuration status.
type MetaHandler struct {
	categories *category.Store
	cfg        *config.Config
}

func NewMetaHandler(categories *category.Store, cfg *config.Config) *MetaHandler {
	return &MetaHandler{categories: categories, cfg: cfg}
}

// BusinessTypes handles GET /api/business-types.
func (h *MetaHandler) BusinessTypes(c fiber.Ctx) error {
	names := h.categories.Names()
	return jsonSuccess(c, fiber.Map{
		"business_types": names,
		"total":          len(names),
		"note":           "목록에 없는 업종도 분석 가능합니다 (범용 키워드 확장 사용)",
	})
}

// Guides handles GET /api/guides.
func (h *MetaHandler) Guides(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"guides":   guides.All(),
		"sections": guides.Sections(),
	})
}

// GuideSection handles GET /api/guides/:section.
func (h *MetaHandler) GuideSection(c fiber.Ctx) error {
	section := c.Params("section")
	if !validation.ValidGuideSection(section) {
		return jsonError(c, fiber.StatusBadRequest, "invalid guide section")
	}
	guide, ok := guides.Get(section)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "guide section not found")
	}
	return jsonSuccess(c, guide)
}

// ConfigStatus handles GET /api/config/status. It reports which external
// data sources are configured, never the credentials themselves.
func (h *MetaHandler) ConfigStatus(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"naver_search_ad": h.cfg.SearchAdConfigured(),
		"naver_local":     h.cfg.LocalSearchConfigured(),
		"mois_population": h.cfg.MOISAPIKey != "",
		"gemini":          h.cfg.GeminiAPIKey != "",
		"redis_cache":     h.cfg.RedisURL != "",
		"all_live_data":   h.cfg.SearchAdConfigured() && h.cfg.LocalSearchConfigured() && h.cfg.GeminiAPIKey != "",
	})
}
