package keyword

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"placerank/internal/metrics"
	"placerank/internal/naver"
)

// LocalSource counts competing local listings for a keyword.
type LocalSource interface {
	Count(ctx context.Context, keyword string) (int, error)
}

// Competition tier labels as the ad API reports them.
const (
	CompetitionHigh   = "높음"
	CompetitionMedium = "중간"
	CompetitionLow    = "낮음"
)

// adTierScores maps the qualitative ad competition index to a base score.
var adTierScores = map[string]int{
	CompetitionHigh:   80,
	CompetitionMedium: 50,
	CompetitionLow:    20,
}

// Weights for combining the two competition signals. Ad data reflects
// advertiser demand directly, so it outweighs the listing count.
const (
	adWeight    = 0.6
	localWeight = 0.4
)

// CompetitionResult is the outcome of scoring one keyword.
type CompetitionResult struct {
	Score      int    // 0..100
	Tier       string // 높음/중간/낮음
	LocalCount int    // competing listings, 0 when unavailable
	AvgCPC     int
}

// CompetitionAnalyzer scores keyword competitiveness from ad-tier data and
// local listing counts, with a word-count heuristic when neither responds.
type CompetitionAnalyzer struct {
	local LocalSource
	log   *slog.Logger
}

func NewCompetitionAnalyzer(local LocalSource, log *slog.Logger) *CompetitionAnalyzer {
	if log == nil {
		log = slog.Default()
	}
	return &CompetitionAnalyzer{local: local, log: log}
}

// Analyze scores a keyword. live is the SearchAd row for the keyword when
// the volume estimator got one, nil otherwise.
func (a *CompetitionAnalyzer) Analyze(ctx context.Context, keyword string, live *naver.KeywordStats) CompetitionResult {
	adScore, adOK := adScoreFrom(live)
	localCount, localOK := a.localCount(ctx, keyword)

	var score int
	switch {
	case adOK && localOK:
		score = int(adWeight*float64(adScore) + localWeight*float64(localScore(localCount)))
	case adOK:
		score = adScore
	case localOK:
		score = localScore(localCount)
	default:
		metrics.RecordFallback("competition", "length")
		score = lengthScore(keyword)
	}
	score = clampScore(score)

	res := CompetitionResult{Score: score, LocalCount: localCount, Tier: scoreTier(score)}
	if live != nil {
		if _, ok := adTierScores[live.CompetitionIdx]; ok {
			res.Tier = live.CompetitionIdx
		}
		res.AvgCPC = int(live.AvgCPC)
	}
	return res
}

// Difficulty combines competition, keyword level and search volume into a
// ranking difficulty score: 60% competition, 30% level, 10% volume.
func Difficulty(competitionScore, level, monthlySearches int) int {
	levelScore := 100 - level*20
	volumeScore := math.Min(100, float64(monthlySearches)/10000*100)
	d := float64(competitionScore)*0.6 + float64(levelScore)*0.3 + volumeScore*0.1
	return clampScore(int(d))
}

// adScoreFrom maps the ad tier to a base score, nudged up by CPC: every
// 100 KRW of average CPC adds a point, capped at +10.
func adScoreFrom(live *naver.KeywordStats) (int, bool) {
	if live == nil {
		return 0, false
	}
	base, ok := adTierScores[live.CompetitionIdx]
	if !ok {
		return 0, false
	}
	nudge := int(live.AvgCPC / 100)
	if nudge > 10 {
		nudge = 10
	}
	return base + nudge, true
}

func (a *CompetitionAnalyzer) localCount(ctx context.Context, keyword string) (int, bool) {
	if a.local == nil {
		return 0, false
	}
	n, err := a.local.Count(ctx, keyword)
	if err != nil {
		if err != naver.ErrNotConfigured {
			a.log.Warn("local search lookup failed", "keyword", keyword, "error", err)
		}
		return 0, false
	}
	return n, true
}

// localScore rescales a listing count into [0,100] on a rough log scale.
func localScore(count int) int {
	switch {
	case count < 100:
		return 10
	case count < 1000:
		return 30
	case count < 10000:
		return 50
	case count < 100000:
		return 70
	default:
		return 90
	}
}

// lengthScore assumes fewer words means broader intent and heavier
// competition.
func lengthScore(keyword string) int {
	switch len(strings.Fields(keyword)) {
	case 1:
		return 85
	case 2:
		return 65
	case 3:
		return 45
	case 4:
		return 30
	default:
		return 20
	}
}

func scoreTier(score int) string {
	switch {
	case score >= 70:
		return CompetitionHigh
	case score >= 40:
		return CompetitionMedium
	default:
		return CompetitionLow
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
