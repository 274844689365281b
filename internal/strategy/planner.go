// Package strategy turns analyzed keywords into a staged rollout roadmap.
// The roadmap always has exactly four phases, working keyword levels 5 down
// to 2; level 1 head terms are reported with metrics but never scheduled as
// an active phase.
package strategy

import (
	"fmt"
	"sort"

	"placerank/internal/category"
	"placerank/internal/models"
)

// rankTarget describes the realistic rank goal for a keyword level and the
// click-through rate assumed at that position.
type rankTarget struct {
	target   string
	timeline string
	ctr      float64
}

var rankTargets = map[int]rankTarget{
	models.LevelLongtail:    {"Top 1-3", "1-2주", 0.25},
	models.LevelNiche:       {"Top 5", "1개월", 0.15},
	models.LevelMedium:      {"Top 10", "2-3개월", 0.10},
	models.LevelCompetitive: {"Top 20", "6개월", 0.05},
	models.LevelTop:         {"노출 목표", "장기", 0.02},
}

// phaseOrder fixes the active roadmap: four phases, easiest level first.
var phaseOrder = []struct {
	level    int
	name     string
	duration string
}{
	{models.LevelLongtail, "롱테일 킬러", "1-2주"},
	{models.LevelNiche, "니치 공략", "3-8주"},
	{models.LevelMedium, "중위권 진입", "3-6개월"},
	{models.LevelCompetitive, "상위권 도전", "6개월 이상"},
}

const priorityKeywordCount = 5

// Planner builds strategy roadmaps. Strategies and goals per phase come from
// the category templates.
type Planner struct {
	categories *category.Store
}

func NewPlanner(categories *category.Store) *Planner {
	return &Planner{categories: categories}
}

// RankTarget returns the recommended rank, timeline and assumed CTR for a
// keyword level.
func RankTarget(level int) (target, timeline string, ctr float64) {
	rt, ok := rankTargets[level]
	if !ok {
		rt = rankTargets[models.LevelMedium]
	}
	return rt.target, rt.timeline, rt.ctr
}

// Plan produces the four-phase roadmap plus the gap summary. Output is fully
// deterministic: identical inputs give identical phases in identical order.
func (p *Planner) Plan(businessType string, byLevel map[int][]models.KeywordMetrics, currentVisitors, targetVisitors int) ([]models.StrategyPhase, models.AnalysisSummary) {
	gap := targetVisitors - currentVisitors
	if gap < 0 {
		gap = 0
	}

	phases := make([]models.StrategyPhase, 0, len(phaseOrder))
	cumulative := 0
	for i, cfg := range phaseOrder {
		keywords := sortedByTraffic(byLevel[cfg.level])
		traffic := 0
		for _, kw := range keywords {
			traffic += kw.EstimatedDailyTraffic
		}
		cumulative += traffic

		levelKey := fmt.Sprintf("level_%d", cfg.level)
		phases = append(phases, models.StrategyPhase{
			Phase:                   i + 1,
			Name:                    cfg.name,
			Duration:                cfg.duration,
			TargetLevel:             cfg.level,
			TargetLevelName:         models.LevelName(cfg.level),
			TargetKeywords:          candidates(keywords),
			TargetKeywordsCount:     len(keywords),
			Strategies:              p.categories.StrategiesFor(businessType, levelKey),
			Goals:                   p.categories.GoalsFor(businessType, levelKey),
			ExpectedDailyVisitors:   traffic,
			PriorityKeywords:        priorityKeywords(keywords),
			KeywordTrafficBreakdown: trafficBreakdown(keywords),
			DifficultyLevel:         difficultyLabel(keywords),
			CumulativeVisitors:      cumulative,
		})
	}

	summary := models.AnalysisSummary{
		CurrentDailyVisitors: currentVisitors,
		TargetDailyVisitors:  targetVisitors,
		Gap:                  gap,
		TotalExpectedTraffic: cumulative,
		AchievementRate:      achievementRate(cumulative, gap),
		TotalPhases:          len(phases),
		RecommendedTimeline:  phaseOrder[len(phaseOrder)-1].duration,
		DataSources:          dataSources(byLevel),
	}
	return phases, summary
}

// sortedByTraffic orders keywords by expected traffic descending, breaking
// ties by keyword text so the plan is stable.
func sortedByTraffic(keywords []models.KeywordMetrics) []models.KeywordMetrics {
	out := make([]models.KeywordMetrics, len(keywords))
	copy(out, keywords)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EstimatedDailyTraffic != out[j].EstimatedDailyTraffic {
			return out[i].EstimatedDailyTraffic > out[j].EstimatedDailyTraffic
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

func candidates(keywords []models.KeywordMetrics) []models.KeywordCandidate {
	out := make([]models.KeywordCandidate, 0, len(keywords))
	for i := range keywords {
		out = append(out, keywords[i].Candidate())
	}
	return out
}

// priorityKeywords picks the best traffic-for-difficulty keywords.
func priorityKeywords(keywords []models.KeywordMetrics) []string {
	scored := make([]models.KeywordMetrics, len(keywords))
	copy(scored, keywords)
	sort.SliceStable(scored, func(i, j int) bool {
		ri := roi(scored[i])
		rj := roi(scored[j])
		if ri != rj {
			return ri > rj
		}
		return scored[i].Keyword < scored[j].Keyword
	})
	n := priorityKeywordCount
	if len(scored) < n {
		n = len(scored)
	}
	out := make([]string, 0, n)
	for _, kw := range scored[:n] {
		out = append(out, kw.Keyword)
	}
	return out
}

func roi(kw models.KeywordMetrics) float64 {
	d := kw.DifficultyScore
	if d < 1 {
		d = 1
	}
	return float64(kw.EstimatedDailyTraffic) / float64(d)
}

// trafficBreakdown maps the top keywords to their expected daily traffic.
func trafficBreakdown(keywords []models.KeywordMetrics) map[string]int {
	out := make(map[string]int)
	for i, kw := range keywords {
		if i >= priorityKeywordCount {
			break
		}
		out[kw.Keyword] = kw.EstimatedDailyTraffic
	}
	return out
}

func difficultyLabel(keywords []models.KeywordMetrics) string {
	if len(keywords) == 0 {
		return "보통"
	}
	sum := 0
	for _, kw := range keywords {
		sum += kw.DifficultyScore
	}
	avg := float64(sum) / float64(len(keywords))
	switch {
	case avg < 30:
		return "쉬움"
	case avg < 60:
		return "보통"
	default:
		return "어려움"
	}
}

func achievementRate(cumulative, gap int) float64 {
	if gap <= 0 {
		return 1
	}
	return float64(cumulative) / float64(gap)
}

// dataSources lists which source tags appear across all keywords, sorted.
func dataSources(byLevel map[int][]models.KeywordMetrics) []string {
	seen := make(map[string]struct{})
	for _, keywords := range byLevel {
		for _, kw := range keywords {
			seen[kw.Confidence] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
