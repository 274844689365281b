// Package population resolves resident population for Korean regions.
// Lookups run through three tiers: a built-in district table, the MOIS
// resident registration API, then a fixed mid-size-city default.
package population

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placerank/internal/metrics"
)

const (
	moisBaseURL = "https://apis.data.go.kr/1741000/RegistrationPopulationByRegion"
	moisPath    = "/getRegistrationPopulationByRegion"
	moisTimeout = 3 * time.Second

	// DefaultPopulation is the tier-3 fallback for unknown regions.
	DefaultPopulation = 300000
)

// Data source labels reported alongside each resolved population.
const (
	SourceTable     = "population_db"
	SourceAPI       = "population_api"
	SourceEstimated = "population_estimated"
)

// Resolver answers population queries. Zero-credential resolvers still work
// off the static table and the default.
type Resolver struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewResolver(apiKey string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		apiKey:  apiKey,
		baseURL: moisBaseURL,
		client:  &http.Client{Timeout: moisTimeout},
		log:     log,
	}
}

// WithBaseURL overrides the MOIS endpoint, used by tests.
func (r *Resolver) WithBaseURL(u string) *Resolver {
	r.baseURL = u
	return r
}

// Resolve returns the population for a region like "서울 강남구" together
// with the source label of the tier that answered.
func (r *Resolver) Resolve(ctx context.Context, region string) (int, string) {
	region = strings.Join(strings.Fields(region), " ")

	if pop, ok := districtPopulation[region]; ok {
		return pop, SourceTable
	}

	if r.apiKey != "" {
		if pop, err := r.fetch(ctx, region); err == nil {
			return pop, SourceAPI
		} else {
			r.log.Warn("population api lookup failed", "region", region, "error", err)
		}
	}

	r.log.Info("population unknown, using default", "region", region, "default", DefaultPopulation)
	return DefaultPopulation, SourceEstimated
}

type moisResponse struct {
	ResultCode string `xml:"header>resultCode"`
	ResultMsg  string `xml:"header>resultMsg"`
	Items      []struct {
		AdmNm    string `xml:"admNm"`
		TotPpltn string `xml:"totPpltn"`
	} `xml:"body>items>item"`
}

// fetch queries the MOIS XML API and scans the item list for a row whose
// administrative name contains both the city and district parts of region.
func (r *Resolver) fetch(ctx context.Context, region string) (int, error) {
	parts := strings.Fields(region)
	if len(parts) != 2 {
		return 0, fmt.Errorf("population: region %q not city+district", region)
	}
	city, district := parts[0], parts[1]

	q := url.Values{}
	q.Set("serviceKey", r.apiKey)
	q.Set("pageNo", "1")
	q.Set("numOfRows", "1000")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.baseURL+moisPath+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("population: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		metrics.RecordExternal("mois_population", "error")
		return 0, fmt.Errorf("population: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordExternal("mois_population", "error")
		return 0, fmt.Errorf("population: mois status %d", resp.StatusCode)
	}
	metrics.RecordExternal("mois_population", "ok")

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return 0, fmt.Errorf("population: read body: %w", err)
	}

	var parsed moisResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("population: parse xml: %w", err)
	}
	if parsed.ResultCode != "" && parsed.ResultCode != "00" {
		return 0, fmt.Errorf("population: mois result %s: %s", parsed.ResultCode, parsed.ResultMsg)
	}

	for _, item := range parsed.Items {
		// API names read "서울특별시 강남구"; strip suffixes to match input.
		name := strings.NewReplacer("특별시", "", "광역시", "", "특별자치시", "", "특별자치도", "").Replace(item.AdmNm)
		if strings.Contains(name, city) && strings.Contains(name, district) {
			pop, err := strconv.Atoi(strings.TrimSpace(item.TotPpltn))
			if err != nil {
				return 0, fmt.Errorf("population: parse count %q: %w", item.TotPpltn, err)
			}
			return pop, nil
		}
	}
	return 0, fmt.Errorf("population: region %q not in mois response", region)
}
