package models

// Keyword difficulty levels. Level 5 is the most specific (longtail, easiest
// to rank for); level 1 is the broadest head term.
const (
	LevelTop         = 1
	LevelCompetitive = 2
	LevelMedium      = 3
	LevelNiche       = 4
	LevelLongtail    = 5
)

// Data sources for a keyword metric.
const (
	SourceAPI       = "api"
	SourceEstimated = "estimated"
)

// LevelName returns the human-readable Korean name for a keyword level.
func LevelName(level int) string {
	switch level {
	case LevelLongtail:
		return "롱테일 (가장 쉬움)"
	case LevelNiche:
		return "니치"
	case LevelMedium:
		return "중간"
	case LevelCompetitive:
		return "경쟁"
	case LevelTop:
		return "최상위 (가장 어려움)"
	}
	return "알 수 없음"
}

// ValidLevel reports whether level is within the 1..5 range.
func ValidLevel(level int) bool {
	return level >= LevelTop && level <= LevelLongtail
}

// KeywordCandidate is a keyword produced by the generator, before metrics
// are attached.
type KeywordCandidate struct {
	Keyword string `json:"keyword"`
	Level   int    `json:"level"`
	Reason  string `json:"reason,omitempty"`
}

// VolumeEstimate is the result of the search-volume estimation chain.
type VolumeEstimate struct {
	Total  int    `json:"total"`
	PC     int    `json:"pc"`
	Mobile int    `json:"mobile"`
	Source string `json:"source"` // SourceAPI or SourceEstimated
}

// KeywordMetrics holds every derived metric for a single keyword. Created
// once per candidate and never mutated afterwards.
type KeywordMetrics struct {
	Keyword                  string  `json:"keyword"`
	Level                    int     `json:"level"`
	LevelName                string  `json:"level_name"`
	EstimatedMonthlySearches int     `json:"estimated_monthly_searches"`
	MonthlyPCSearches        int     `json:"monthly_pc_searches"`
	MonthlyMobileSearches    int     `json:"monthly_mobile_searches"`
	CompetitionScore         int     `json:"competition_score"`
	CompetitionLevel         string  `json:"competition_level"`
	LocalResultCount         int     `json:"local_result_count"`
	AvgCPC                   int     `json:"avg_cpc"`
	DifficultyScore          int     `json:"difficulty_score"`
	RecommendedRankTarget    string  `json:"recommended_rank_target"`
	EstimatedTimeline        string  `json:"estimated_timeline"`
	EstimatedDailyTraffic    int     `json:"estimated_daily_traffic"`
	ConversionRate           float64 `json:"conversion_rate"`
	Confidence               string  `json:"confidence"` // SourceAPI or SourceEstimated
	Reason                   string  `json:"reason,omitempty"`
}

// Candidate returns the candidate view of the metrics.
func (m *KeywordMetrics) Candidate() KeywordCandidate {
	return KeywordCandidate{Keyword: m.Keyword, Level: m.Level, Reason: m.Reason}
}

// FromLiveData reports whether the search-volume figure came from a live
// external source rather than an internal estimate.
func (m *KeywordMetrics) FromLiveData() bool {
	return m.Confidence == SourceAPI
}
