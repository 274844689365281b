// Package keyword contains the analysis core: candidate generation, search
// volume estimation and competition scoring. External data sources are
// injected behind small interfaces so each fallback tier can be exercised in
// isolation.
package keyword

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"

	"placerank/internal/cache"
	"placerank/internal/category"
	"placerank/internal/metrics"
	"placerank/internal/models"
	"placerank/internal/naver"
)

// StatsSource provides live keyword statistics (the SearchAd API).
type StatsSource interface {
	KeywordStats(ctx context.Context, keywords []string) ([]naver.KeywordStats, error)
}

// PopulationSource resolves a region to a resident count plus source label.
type PopulationSource interface {
	Resolve(ctx context.Context, region string) (int, string)
}

// levelMultipliers scale the category-wide base volume down to a single
// keyword's share. More specific keywords capture a smaller slice.
var levelMultipliers = map[int]float64{
	models.LevelLongtail:    0.02,
	models.LevelNiche:       0.06,
	models.LevelMedium:      0.15,
	models.LevelCompetitive: 0.30,
	models.LevelTop:         0.50,
}

// lengthVolumes is the terminal fallback: assumed monthly volume by word
// count when neither live data nor a population model is available.
var lengthVolumes = map[int]int{
	1: 30000,
	2: 12000,
	3: 5000,
	4: 1500,
}

const lengthVolumeLong = 400 // 5+ words

// Mobile dominates local search; used only for estimated splits.
const (
	pcShare     = 0.3
	mobileShare = 0.7
)

// VolumeEstimator runs the three-tier search volume chain: live API,
// population model, keyword-length heuristic. Failures never propagate;
// every tier hands off to the next.
type VolumeEstimator struct {
	stats      StatsSource
	population PopulationSource
	categories *category.Store
	cache      *cache.Cache
	log        *slog.Logger
}

func NewVolumeEstimator(stats StatsSource, pop PopulationSource, categories *category.Store, c *cache.Cache, log *slog.Logger) *VolumeEstimator {
	if log == nil {
		log = slog.Default()
	}
	return &VolumeEstimator{stats: stats, population: pop, categories: categories, cache: c, log: log}
}

// Estimate returns the monthly search volume for a keyword. The second
// return carries the raw API row when tier 1 answered, so the competition
// analyzer can reuse its tier and CPC without a second call.
func (e *VolumeEstimator) Estimate(ctx context.Context, keyword string, level int, businessType, location string) (models.VolumeEstimate, *naver.KeywordStats) {
	if live := e.fromAPI(ctx, keyword); live != nil && live.MonthlyTotal() > 0 {
		metrics.RecordFallback("volume", "api")
		return models.VolumeEstimate{
			Total:  live.MonthlyTotal(),
			PC:     live.MonthlyPC,
			Mobile: live.MonthlyMobile,
			Source: models.SourceAPI,
		}, live
	}

	if location != "" {
		metrics.RecordFallback("volume", "population")
		return e.fromPopulation(ctx, level, businessType, location), nil
	}

	metrics.RecordFallback("volume", "length")
	return e.fromLength(keyword), nil
}

// fromAPI is tier 1. Results are cached; any error means "no data".
func (e *VolumeEstimator) fromAPI(ctx context.Context, keyword string) *naver.KeywordStats {
	if e.stats == nil {
		return nil
	}

	cacheKey := "searchad:" + keyword
	if e.cache != nil {
		if raw := e.cache.Get(cacheKey); raw != nil {
			var cached naver.KeywordStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached
			}
		}
	}

	rows, err := e.stats.KeywordStats(ctx, []string{keyword})
	if err != nil {
		if err != naver.ErrNotConfigured {
			e.log.Warn("searchad lookup failed", "keyword", keyword, "error", err)
		}
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	// The API strips spaces from keywords; match accordingly.
	compact := strings.ReplaceAll(keyword, " ", "")
	row := rows[0]
	for _, r := range rows {
		if strings.EqualFold(r.Keyword, compact) {
			row = r
			break
		}
	}

	if e.cache != nil {
		if raw, err := json.Marshal(row); err == nil {
			e.cache.Set(cacheKey, raw)
		}
	}
	return &row
}

// fromPopulation is tier 2: population × usage_rate × search_rate, scaled by
// the keyword level's multiplier.
func (e *VolumeEstimator) fromPopulation(ctx context.Context, level int, businessType, location string) models.VolumeEstimate {
	pop, _ := e.population.Resolve(ctx, location)
	usage, search := e.categories.Rates(businessType)

	base := float64(pop) * usage * search
	mult, ok := levelMultipliers[level]
	if !ok {
		mult = 0.1
	}
	total := int(math.Round(base * mult))
	return splitEstimate(total)
}

// fromLength is tier 3, pure computation; it cannot fail.
func (e *VolumeEstimator) fromLength(keyword string) models.VolumeEstimate {
	words := len(strings.Fields(keyword))
	total, ok := lengthVolumes[words]
	if !ok {
		total = lengthVolumeLong
	}
	return splitEstimate(total)
}

func splitEstimate(total int) models.VolumeEstimate {
	if total < 0 {
		total = 0
	}
	return models.VolumeEstimate{
		Total:  total,
		PC:     int(float64(total) * pcShare),
		Mobile: int(float64(total) * mobileShare),
		Source: models.SourceEstimated,
	}
}
