package category

import (
	"testing"
)

func mustLoad(t *testing.T) *Store {
	t.Helper()
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoadEmbeddedTemplates(t *testing.T) {
	s := mustLoad(t)

	names := s.Names()
	if len(names) == 0 {
		t.Fatal("no templates loaded")
	}
	for _, want := range []string{"카페", "음식점", "미용실", "병원", "학원", "헬스장"} {
		if _, ok := s.Get(want); !ok {
			t.Errorf("template %q missing", want)
		}
	}
	for _, name := range names {
		if name == genericName {
			t.Error("generic template must not be listed as a business type")
		}
	}
}

func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"카페", "카페"},
		{"커피숍", "카페"},
		{"레스토랑", "음식점"},
		{"  식당 ", "음식점"},
		{"헤어샵", "미용실"},
		{"타투샵", "타투샵"}, // unknown passes through
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRatesFallBackToGeneric(t *testing.T) {
	s := mustLoad(t)

	usage, search := s.Rates("카페")
	if usage != 0.8 || search != 0.4 {
		t.Errorf("Rates(카페) = %v, %v, want 0.8, 0.4", usage, search)
	}

	usage, search = s.Rates("타투샵")
	gu, gs := s.generic.UsageRate, s.generic.SearchRate
	if usage != gu || search != gs {
		t.Errorf("Rates(unknown) = %v, %v, want generic %v, %v", usage, search, gu, gs)
	}
}

func TestStrategiesForFallsBackToGeneric(t *testing.T) {
	s := mustLoad(t)

	// 미용실 ships no strategies of its own.
	lines := s.StrategiesFor("미용실", "level_5")
	if len(lines) == 0 {
		t.Fatal("expected generic strategies for 미용실 level_5")
	}
	generic := s.generic.Strategies["level_5"]
	if lines[0] != generic[0] {
		t.Errorf("StrategiesFor(미용실) = %q, want generic %q", lines[0], generic[0])
	}

	if got := s.GoalsFor("타투샵", "level_4"); len(got) == 0 {
		t.Error("expected generic goals for unknown business type")
	}
}

func TestConversionRate(t *testing.T) {
	s := mustLoad(t)
	if got := s.ConversionRate("카페"); got != 0.1 {
		t.Errorf("ConversionRate(카페) = %v, want 0.1", got)
	}
	if got := s.ConversionRate("타투샵"); got != s.generic.ConversionRate {
		t.Errorf("ConversionRate(unknown) = %v, want generic", got)
	}
}
