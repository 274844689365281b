package keyword

import (
	"context"
	"errors"
	"testing"

	"placerank/internal/cache"
	"placerank/internal/category"
	"placerank/internal/models"
	"placerank/internal/naver"
)

type fakeStats struct {
	rows []naver.KeywordStats
	err  error
	call int
}

func (f *fakeStats) KeywordStats(ctx context.Context, keywords []string) ([]naver.KeywordStats, error) {
	f.call++
	return f.rows, f.err
}

type fakePopulation struct {
	pop    int
	source string
}

func (f *fakePopulation) Resolve(ctx context.Context, region string) (int, string) {
	return f.pop, f.source
}

func testStore(t *testing.T) *category.Store {
	t.Helper()
	s, err := category.Load("")
	if err != nil {
		t.Fatalf("category.Load() error = %v", err)
	}
	return s
}

func TestEstimateAPITier(t *testing.T) {
	stats := &fakeStats{rows: []naver.KeywordStats{
		{Keyword: "강남카페", MonthlyPC: 1000, MonthlyMobile: 4000, CompetitionIdx: "높음", AvgCPC: 300},
	}}
	e := NewVolumeEstimator(stats, &fakePopulation{pop: 500000}, testStore(t), nil, nil)

	est, live := e.Estimate(context.Background(), "강남 카페", models.LevelMedium, "카페", "서울 강남구")
	if est.Source != models.SourceAPI {
		t.Errorf("Source = %q, want api", est.Source)
	}
	if est.Total != 5000 || est.PC != 1000 || est.Mobile != 4000 {
		t.Errorf("estimate = %+v", est)
	}
	if live == nil || live.CompetitionIdx != "높음" {
		t.Errorf("live row not returned: %+v", live)
	}
}

func TestEstimatePopulationTier(t *testing.T) {
	// API down: the population model must answer.
	stats := &fakeStats{err: errors.New("timeout")}
	e := NewVolumeEstimator(stats, &fakePopulation{pop: 500000, source: "population_db"}, testStore(t), nil, nil)

	// 카페: usage 0.8 × search 0.4 × level-5 multiplier 0.02 → 3200
	est, live := e.Estimate(context.Background(), "강남 브런치 맛있는 카페", models.LevelLongtail, "카페", "서울 강남구")
	if live != nil {
		t.Fatal("expected no live row on API failure")
	}
	if est.Source != models.SourceEstimated {
		t.Errorf("Source = %q, want estimated", est.Source)
	}
	if est.Total != 3200 {
		t.Errorf("Total = %d, want 3200", est.Total)
	}
	if est.PC != 960 || est.Mobile != 2240 {
		t.Errorf("split = pc %d / mobile %d, want 960 / 2240", est.PC, est.Mobile)
	}
}

func TestEstimateLevelMultipliers(t *testing.T) {
	e := NewVolumeEstimator(&fakeStats{}, &fakePopulation{pop: 500000}, testStore(t), nil, nil)

	prev := -1
	// Volume must grow monotonically from longtail to head terms.
	for _, level := range []int{models.LevelLongtail, models.LevelNiche, models.LevelMedium, models.LevelCompetitive, models.LevelTop} {
		est, _ := e.Estimate(context.Background(), "강남 카페", level, "카페", "서울 강남구")
		if est.Total <= prev {
			t.Errorf("level %d volume %d not greater than previous %d", level, est.Total, prev)
		}
		prev = est.Total
	}
}

func TestEstimateLengthTier(t *testing.T) {
	// No API, no location: only the keyword length remains.
	e := NewVolumeEstimator(nil, &fakePopulation{}, testStore(t), nil, nil)

	tests := []struct {
		keyword string
		want    int
	}{
		{"카페", 30000},
		{"강남 카페", 12000},
		{"강남 브런치 카페", 5000},
		{"강남 조용한 브런치 카페", 1500},
		{"강남역 근처 조용한 브런치 전문 카페", 400},
	}
	for _, tt := range tests {
		est, _ := e.Estimate(context.Background(), tt.keyword, models.LevelMedium, "카페", "")
		if est.Total != tt.want {
			t.Errorf("Estimate(%q) = %d, want %d", tt.keyword, est.Total, tt.want)
		}
		if est.Source != models.SourceEstimated {
			t.Errorf("Estimate(%q) source = %q", tt.keyword, est.Source)
		}
	}
}

func TestEstimateNeverNegative(t *testing.T) {
	e := NewVolumeEstimator(&fakeStats{err: errors.New("down")}, &fakePopulation{pop: 0}, testStore(t), nil, nil)
	est, _ := e.Estimate(context.Background(), "강남 카페", models.LevelTop, "카페", "서울 강남구")
	if est.Total < 0 || est.PC < 0 || est.Mobile < 0 {
		t.Errorf("negative estimate: %+v", est)
	}
}

func TestEstimateUsesCache(t *testing.T) {
	stats := &fakeStats{rows: []naver.KeywordStats{
		{Keyword: "강남카페", MonthlyPC: 100, MonthlyMobile: 900, CompetitionIdx: "중간"},
	}}
	c := cache.New("", 0)
	e := NewVolumeEstimator(stats, &fakePopulation{pop: 500000}, testStore(t), c, nil)

	e.Estimate(context.Background(), "강남 카페", models.LevelMedium, "카페", "서울 강남구")
	e.Estimate(context.Background(), "강남 카페", models.LevelMedium, "카페", "서울 강남구")
	if stats.call != 1 {
		t.Errorf("API called %d times, want 1 (second hit cached)", stats.call)
	}
}
