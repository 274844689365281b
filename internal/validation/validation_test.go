package validation

import (
	"reflect"
	"testing"

	"placerank/internal/models"
)

func TestValidateAnalysisRequest(t *testing.T) {
	valid := func() models.AnalysisRequest {
		return models.AnalysisRequest{
			BusinessType:         "카페",
			Location:             "서울 강남구",
			Specialty:            []string{"브런치 전문"},
			CurrentDailyVisitors: 50,
			TargetDailyVisitors:  200,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.AnalysisRequest)
		wantMsg string
	}{
		{"valid request", func(r *models.AnalysisRequest) {}, ""},
		{"missing business type", func(r *models.AnalysisRequest) { r.BusinessType = "  " }, "business_type is required"},
		{"missing location", func(r *models.AnalysisRequest) { r.Location = "" }, "location is required"},
		{"missing specialty", func(r *models.AnalysisRequest) { r.Specialty = nil }, "at least one specialty is required"},
		{"blank specialty entries", func(r *models.AnalysisRequest) { r.Specialty = []string{" ", ","} }, "at least one specialty is required"},
		{"negative current", func(r *models.AnalysisRequest) { r.CurrentDailyVisitors = -1 }, "current_daily_visitors must not be negative"},
		{"target below current", func(r *models.AnalysisRequest) { r.TargetDailyVisitors = 10 }, "target_daily_visitors must be at least current_daily_visitors"},
		{"absurd target", func(r *models.AnalysisRequest) { r.TargetDailyVisitors = 2000000 }, "target_daily_visitors is unrealistically large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			if got := ValidateAnalysisRequest(&req); got != tt.wantMsg {
				t.Errorf("ValidateAnalysisRequest() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidateAnalysisRequestNormalizes(t *testing.T) {
	req := models.AnalysisRequest{
		BusinessType:        "  카페 ",
		Location:            " 서울  강남구 ",
		Specialty:           []string{"브런치 전문, 디저트", " 테라스 "},
		TargetDailyVisitors: 100,
	}
	if msg := ValidateAnalysisRequest(&req); msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	if req.BusinessType != "카페" {
		t.Errorf("BusinessType = %q", req.BusinessType)
	}
	if req.Location != "서울 강남구" {
		t.Errorf("Location = %q", req.Location)
	}
	want := []string{"브런치 전문", "디저트", "테라스"}
	if !reflect.DeepEqual(req.Specialty, want) {
		t.Errorf("Specialty = %v, want %v", req.Specialty, want)
	}
}

func TestValidGuideSection(t *testing.T) {
	tests := []struct {
		section string
		want    bool
	}{
		{"business_name", true},
		{"seo", true},
		{"", false},
		{"SEO", false},
		{"../etc/passwd", false},
		{"reviews;drop", false},
	}
	for _, tt := range tests {
		if got := ValidGuideSection(tt.section); got != tt.want {
			t.Errorf("ValidGuideSection(%q) = %v, want %v", tt.section, got, tt.want)
		}
	}
}
