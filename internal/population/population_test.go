package population

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveFromTable(t *testing.T) {
	r := NewResolver("", nil)

	tests := []struct {
		name       string
		region     string
		wantPop    int
		wantSource string
	}{
		{"gangnam", "서울 강남구", 560000, SourceTable},
		{"extra whitespace", "서울  강남구", 560000, SourceTable},
		{"sejong single token", "세종", 380000, SourceTable},
		{"unknown defaults", "서울 미지동", DefaultPopulation, SourceEstimated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, source := r.Resolve(context.Background(), tt.region)
			if pop != tt.wantPop {
				t.Errorf("Resolve(%q) = %d, want %d", tt.region, pop, tt.wantPop)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestResolveFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("serviceKey") != "test-key" {
			t.Errorf("serviceKey = %q", r.URL.Query().Get("serviceKey"))
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE</resultMsg></header>
  <body><items>
    <item><admNm>서울특별시 신비구</admNm><totPpltn>123456</totPpltn></item>
  </items></body>
</response>`))
	}))
	defer srv.Close()

	r := NewResolver("test-key", nil).WithBaseURL(srv.URL)
	pop, source := r.Resolve(context.Background(), "서울 신비구")
	if pop != 123456 {
		t.Errorf("Resolve() = %d, want 123456", pop)
	}
	if source != SourceAPI {
		t.Errorf("source = %q, want %q", source, SourceAPI)
	}
}

func TestResolveAPIFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver("test-key", nil).WithBaseURL(srv.URL)
	pop, source := r.Resolve(context.Background(), "서울 신비구")
	if pop != DefaultPopulation {
		t.Errorf("Resolve() = %d, want default %d", pop, DefaultPopulation)
	}
	if source != SourceEstimated {
		t.Errorf("source = %q, want %q", source, SourceEstimated)
	}
}
