package strategy

import (
	"reflect"
	"testing"

	"placerank/internal/category"
	"placerank/internal/models"
)

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	store, err := category.Load("")
	if err != nil {
		t.Fatalf("category.Load() error = %v", err)
	}
	return NewPlanner(store)
}

func metric(keyword string, level, traffic, difficulty int) models.KeywordMetrics {
	return models.KeywordMetrics{
		Keyword:               keyword,
		Level:                 level,
		EstimatedDailyTraffic: traffic,
		DifficultyScore:       difficulty,
		Confidence:            models.SourceEstimated,
	}
}

func sampleMetrics() map[int][]models.KeywordMetrics {
	return map[int][]models.KeywordMetrics{
		5: {
			metric("강남 브런치 조용한 카페", 5, 20, 15),
			metric("강남 테라스 브런치 카페", 5, 10, 20),
		},
		4: {metric("강남 브런치 카페 주차", 4, 15, 35)},
		3: {metric("강남 브런치 카페", 3, 30, 50)},
		2: {metric("서울 카페", 2, 40, 75)},
		1: {metric("카페", 1, 100, 95)},
	}
}

func TestPlanAlwaysFourPhases(t *testing.T) {
	p := testPlanner(t)

	phases, summary := p.Plan("카페", sampleMetrics(), 50, 200)
	if len(phases) != 4 {
		t.Fatalf("got %d phases, want 4", len(phases))
	}

	wantLevels := []int{5, 4, 3, 2}
	wantNames := []string{"롱테일 킬러", "니치 공략", "중위권 진입", "상위권 도전"}
	for i, phase := range phases {
		if phase.Phase != i+1 {
			t.Errorf("phase[%d].Phase = %d", i, phase.Phase)
		}
		if phase.TargetLevel != wantLevels[i] {
			t.Errorf("phase[%d].TargetLevel = %d, want %d", i, phase.TargetLevel, wantLevels[i])
		}
		if phase.Name != wantNames[i] {
			t.Errorf("phase[%d].Name = %q, want %q", i, phase.Name, wantNames[i])
		}
		if len(phase.Strategies) == 0 || len(phase.Goals) == 0 {
			t.Errorf("phase[%d] missing strategies or goals", i)
		}
	}

	// Level 1 keywords are informational only, never an active phase.
	for _, phase := range phases {
		if phase.TargetLevel == 1 {
			t.Error("level 1 must not be scheduled")
		}
	}

	if summary.Gap != 150 {
		t.Errorf("Gap = %d, want 150", summary.Gap)
	}
	if summary.TotalPhases != 4 {
		t.Errorf("TotalPhases = %d", summary.TotalPhases)
	}
}

func TestPlanEmptyLevelsStillFourPhases(t *testing.T) {
	p := testPlanner(t)

	byLevel := map[int][]models.KeywordMetrics{
		5: {metric("강남 브런치 조용한 카페", 5, 20, 15)},
	}
	phases, _ := p.Plan("카페", byLevel, 0, 100)
	if len(phases) != 4 {
		t.Fatalf("got %d phases, want 4", len(phases))
	}
	for _, phase := range phases[1:] {
		if phase.TargetKeywordsCount != 0 {
			t.Errorf("phase %d should be empty", phase.Phase)
		}
		if phase.ExpectedDailyVisitors != 0 {
			t.Errorf("phase %d ExpectedDailyVisitors = %d", phase.Phase, phase.ExpectedDailyVisitors)
		}
	}
}

func TestPlanCumulativeVisitors(t *testing.T) {
	p := testPlanner(t)
	phases, summary := p.Plan("카페", sampleMetrics(), 50, 200)

	// 30 + 15 + 30 + 40 across the four active levels.
	wantCumulative := []int{30, 45, 75, 115}
	for i, phase := range phases {
		if phase.CumulativeVisitors != wantCumulative[i] {
			t.Errorf("phase[%d].CumulativeVisitors = %d, want %d", i, phase.CumulativeVisitors, wantCumulative[i])
		}
	}
	if summary.TotalExpectedTraffic != 115 {
		t.Errorf("TotalExpectedTraffic = %d, want 115", summary.TotalExpectedTraffic)
	}
	// 115 / 150
	if summary.AchievementRate < 0.76 || summary.AchievementRate > 0.77 {
		t.Errorf("AchievementRate = %v", summary.AchievementRate)
	}
}

func TestPlanDeterministic(t *testing.T) {
	p := testPlanner(t)
	firstPhases, firstSummary := p.Plan("카페", sampleMetrics(), 50, 200)
	secondPhases, secondSummary := p.Plan("카페", sampleMetrics(), 50, 200)

	if !reflect.DeepEqual(firstPhases, secondPhases) {
		t.Error("phases differ across identical calls")
	}
	if !reflect.DeepEqual(firstSummary, secondSummary) {
		t.Error("summaries differ across identical calls")
	}
}

func TestPlanPriorityKeywordsByROI(t *testing.T) {
	p := testPlanner(t)

	byLevel := map[int][]models.KeywordMetrics{
		5: {
			metric("low roi", 5, 10, 90),
			metric("high roi", 5, 30, 10),
			metric("mid roi", 5, 20, 30),
		},
	}
	phases, _ := p.Plan("카페", byLevel, 0, 100)
	want := []string{"high roi", "mid roi", "low roi"}
	if !reflect.DeepEqual(phases[0].PriorityKeywords, want) {
		t.Errorf("PriorityKeywords = %v, want %v", phases[0].PriorityKeywords, want)
	}
}

func TestPlanTargetAlreadyMet(t *testing.T) {
	p := testPlanner(t)
	phases, summary := p.Plan("카페", sampleMetrics(), 300, 200)
	if len(phases) != 4 {
		t.Fatalf("got %d phases, want 4", len(phases))
	}
	if summary.Gap != 0 {
		t.Errorf("Gap = %d, want 0", summary.Gap)
	}
	if summary.AchievementRate != 1 {
		t.Errorf("AchievementRate = %v, want 1", summary.AchievementRate)
	}
}

func TestRankTarget(t *testing.T) {
	tests := []struct {
		level        int
		wantTarget   string
		wantTimeline string
		wantCTR      float64
	}{
		{5, "Top 1-3", "1-2주", 0.25},
		{4, "Top 5", "1개월", 0.15},
		{3, "Top 10", "2-3개월", 0.10},
		{2, "Top 20", "6개월", 0.05},
		{1, "노출 목표", "장기", 0.02},
		{0, "Top 10", "2-3개월", 0.10}, // unknown defaults to medium
	}
	for _, tt := range tests {
		target, timeline, ctr := RankTarget(tt.level)
		if target != tt.wantTarget || timeline != tt.wantTimeline || ctr != tt.wantCTR {
			t.Errorf("RankTarget(%d) = %q %q %v", tt.level, target, timeline, ctr)
		}
	}
}
