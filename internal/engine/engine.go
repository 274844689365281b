// Package engine orchestrates a full keyword analysis: candidate
// generation, per-keyword volume and competition scoring, and roadmap
// planning. One Engine serves all requests; it holds no per-request state.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"placerank/internal/category"
	"placerank/internal/keyword"
	"placerank/internal/metrics"
	"placerank/internal/models"
	"placerank/internal/strategy"
)

type Engine struct {
	generator   *keyword.Generator
	volume      *keyword.VolumeEstimator
	competition *keyword.CompetitionAnalyzer
	planner     *strategy.Planner
	categories  *category.Store
	log         *slog.Logger
}

func New(gen *keyword.Generator, vol *keyword.VolumeEstimator, comp *keyword.CompetitionAnalyzer, planner *strategy.Planner, categories *category.Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		generator:   gen,
		volume:      vol,
		competition: comp,
		planner:     planner,
		categories:  categories,
		log:         log,
	}
}

// Analyze runs the full pipeline for one business. External-dependency
// failures degrade to estimates inside the pipeline and never surface here;
// the only error condition is a context cancellation mid-analysis.
func (e *Engine) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	candidates := e.generator.Generate(ctx, req.BusinessType, req.Location, req.Specialty)
	e.log.Info("keywords generated",
		"business_type", req.BusinessType,
		"location", req.Location,
		"candidates", len(candidates))

	byLevel := make(map[int][]models.KeywordMetrics)
	total := 0
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			metrics.RecordAnalysis("error")
			return nil, fmt.Errorf("engine: analysis cancelled: %w", err)
		}
		m := e.analyzeKeyword(ctx, cand, req.BusinessType, req.Location)
		byLevel[m.Level] = append(byLevel[m.Level], m)
		total++
	}

	roadmap, summary := e.planner.Plan(req.BusinessType, byLevel, req.CurrentDailyVisitors, req.TargetDailyVisitors)

	metrics.RecordAnalysis("ok")
	return &models.AnalysisResult{
		AnalysisID:      uuid.NewString(),
		BusinessInfo:    req.Business(),
		TotalKeywords:   total,
		KeywordsByLevel: groupKeys(byLevel),
		StrategyRoadmap: roadmap,
		Summary:         summary,
	}, nil
}

// analyzeKeyword derives every metric for one candidate.
func (e *Engine) analyzeKeyword(ctx context.Context, cand models.KeywordCandidate, businessType, location string) models.KeywordMetrics {
	vol, live := e.volume.Estimate(ctx, cand.Keyword, cand.Level, businessType, location)
	comp := e.competition.Analyze(ctx, cand.Keyword, live)
	difficulty := keyword.Difficulty(comp.Score, cand.Level, vol.Total)

	rankTarget, timeline, ctr := strategy.RankTarget(cand.Level)
	dailyTraffic := int(math.Round(float64(vol.Total) * ctr / 30))

	return models.KeywordMetrics{
		Keyword:                  cand.Keyword,
		Level:                    cand.Level,
		LevelName:                models.LevelName(cand.Level),
		EstimatedMonthlySearches: vol.Total,
		MonthlyPCSearches:        vol.PC,
		MonthlyMobileSearches:    vol.Mobile,
		CompetitionScore:         comp.Score,
		CompetitionLevel:         comp.Tier,
		LocalResultCount:         comp.LocalCount,
		AvgCPC:                   comp.AvgCPC,
		DifficultyScore:          difficulty,
		RecommendedRankTarget:    rankTarget,
		EstimatedTimeline:        timeline,
		EstimatedDailyTraffic:    dailyTraffic,
		ConversionRate:           e.categories.ConversionRate(businessType),
		Confidence:               vol.Source,
		Reason:                   cand.Reason,
	}
}

// groupKeys rekeys the level map for the JSON response ("level_5" ...).
func groupKeys(byLevel map[int][]models.KeywordMetrics) map[string][]models.KeywordMetrics {
	out := make(map[string][]models.KeywordMetrics, len(byLevel))
	for level, keywords := range byLevel {
		out[fmt.Sprintf("level_%d", level)] = keywords
	}
	return out
}
