package models

// StrategyPhase is one step of the rollout roadmap. Phases are emitted in
// order, covering keyword levels 5 down to 2 (easiest first).
type StrategyPhase struct {
	Phase                   int                `json:"phase"`
	Name                    string             `json:"name"`
	Duration                string             `json:"duration"`
	TargetLevel             int                `json:"target_level"`
	TargetLevelName         string             `json:"target_level_name"`
	TargetKeywords          []KeywordCandidate `json:"target_keywords"`
	TargetKeywordsCount     int                `json:"target_keywords_count"`
	Strategies              []string           `json:"strategies"`
	Goals                   []string           `json:"goals"`
	ExpectedDailyVisitors   int                `json:"expected_daily_visitors"`
	PriorityKeywords        []string           `json:"priority_keywords"`
	KeywordTrafficBreakdown map[string]int     `json:"keyword_traffic_breakdown"`
	DifficultyLevel         string             `json:"difficulty_level"`
	CumulativeVisitors      int                `json:"cumulative_visitors"`
}

// AnalysisSummary reports the visitor gap and how far the roadmap closes it.
// Purely informational: the planner never enforces that the target be
// reachable.
type AnalysisSummary struct {
	CurrentDailyVisitors int      `json:"current_daily_visitors"`
	TargetDailyVisitors  int      `json:"target_daily_visitors"`
	Gap                  int      `json:"gap"`
	TotalExpectedTraffic int      `json:"total_expected_traffic"`
	AchievementRate      float64  `json:"achievement_rate"`
	TotalPhases          int      `json:"total_phases"`
	RecommendedTimeline  string   `json:"recommended_timeline"`
	DataSources          []string `json:"data_sources"`
}

// AnalysisResult is the full response payload for one analysis request.
// Built fresh per request and never persisted.
type AnalysisResult struct {
	AnalysisID      string                      `json:"analysis_id"`
	BusinessInfo    BusinessInfo                `json:"business_info"`
	TotalKeywords   int                         `json:"total_keywords"`
	KeywordsByLevel map[string][]KeywordMetrics `json:"keywords_by_level"`
	StrategyRoadmap []StrategyPhase             `json:"strategy_roadmap"`
	Summary         AnalysisSummary             `json:"summary"`
}
