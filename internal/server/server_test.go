package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"placerank/internal/cache"
	"placerank/internal/category"
	"placerank/internal/config"
	"placerank/internal/engine"
	"placerank/internal/keyword"
	"placerank/internal/models"
	"placerank/internal/population"
	"placerank/internal/strategy"
)

// testServer wires the full route table with no external clients, so every
// pipeline tier resolves through deterministic estimation.
func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := category.Load("")
	if err != nil {
		t.Fatalf("category.Load() error = %v", err)
	}
	cfg := &config.Config{
		ServerAddr:         ":0",
		RateLimitPerMinute: 1000,
	}

	gen := keyword.NewGenerator(nil, store, nil)
	vol := keyword.NewVolumeEstimator(nil, population.NewResolver("", nil), store, nil, nil)
	comp := keyword.NewCompetitionAnalyzer(nil, nil)
	eng := engine.New(gen, vol, comp, strategy.NewPlanner(store), store, nil)

	srv := New(cfg, cache.New("", 0))
	srv.RegisterRoutes(eng, store, nil)
	return srv
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v2/analyze", models.AnalysisRequest{
		BusinessType:         "카페",
		Location:             "서울 강남구",
		Specialty:            []string{"브런치 전문"},
		CurrentDailyVisitors: 50,
		TargetDailyVisitors:  200,
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d: %s", status, env.Error)
	}
	if env.Status != "ok" {
		t.Fatalf("envelope status = %q", env.Status)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.StrategyRoadmap) != 4 {
		t.Errorf("got %d phases, want 4", len(result.StrategyRoadmap))
	}
	wantLevels := []int{5, 4, 3, 2}
	for i, phase := range result.StrategyRoadmap {
		if phase.TargetLevel != wantLevels[i] {
			t.Errorf("phase[%d].TargetLevel = %d, want %d", i, phase.TargetLevel, wantLevels[i])
		}
	}
	if result.Summary.Gap != 150 {
		t.Errorf("summary.Gap = %d, want 150", result.Summary.Gap)
	}
	for _, keywords := range result.KeywordsByLevel {
		for _, kw := range keywords {
			if kw.EstimatedDailyTraffic < 0 {
				t.Errorf("negative traffic for %q", kw.Keyword)
			}
		}
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body models.AnalysisRequest
	}{
		{"missing business type", models.AnalysisRequest{Location: "서울 강남구", Specialty: []string{"브런치"}, TargetDailyVisitors: 100}},
		{"missing location", models.AnalysisRequest{BusinessType: "카페", Specialty: []string{"브런치"}, TargetDailyVisitors: 100}},
		{"missing specialty", models.AnalysisRequest{BusinessType: "카페", Location: "서울 강남구", TargetDailyVisitors: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, srv, http.MethodPost, "/api/v2/analyze", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if env.Status != "error" || env.Error == "" {
				t.Errorf("envelope = %+v", env)
			}
		})
	}
}

func TestBusinessTypesEndpoint(t *testing.T) {
	srv := testServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/api/business-types", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var data struct {
		BusinessTypes []string `json:"business_types"`
		Total         int      `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Total == 0 || len(data.BusinessTypes) != data.Total {
		t.Errorf("business types = %+v", data)
	}
}

func TestGuidesEndpoints(t *testing.T) {
	srv := testServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/api/guides", nil)
	if status != http.StatusOK || env.Status != "ok" {
		t.Fatalf("guides list: status %d, %q", status, env.Status)
	}

	status, env = doJSON(t, srv, http.MethodGet, "/api/guides/reviews", nil)
	if status != http.StatusOK {
		t.Fatalf("guide section: status %d", status)
	}
	var guide struct {
		Section string `json:"section"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &guide); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if guide.Section != "reviews" || guide.Title == "" {
		t.Errorf("guide = %+v", guide)
	}

	status, _ = doJSON(t, srv, http.MethodGet, "/api/guides/nonexistent", nil)
	if status != http.StatusNotFound {
		t.Errorf("unknown section: status %d, want 404", status)
	}
}

func TestConfigStatusEndpoint(t *testing.T) {
	srv := testServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/api/config/status", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var data map[string]bool
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Nothing configured in the test server.
	for key, configured := range data {
		if configured {
			t.Errorf("%s reported configured in bare test server", key)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/health", nil)
	if status != http.StatusOK || env.Status != "ok" {
		t.Fatalf("health: status %d, %q", status, env.Status)
	}
}
