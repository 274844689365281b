// Package naver contains clients for the Naver SearchAd and Local Search
// open APIs. Both clients degrade gracefully: callers are expected to treat
// errors as a signal to fall back to estimated data.
package naver

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placerank/internal/metrics"
)

const (
	searchAdBaseURL = "https://api.naver.com"
	keywordToolPath = "/keywordstool"
	maxHintKeywords = 5
	searchAdTimeout = 30 * time.Second
)

var (
	// ErrNotConfigured is returned when a client is missing credentials.
	ErrNotConfigured = errors.New("naver: client not configured")
	// ErrBadStatus is returned on a non-200 response from an API.
	ErrBadStatus = errors.New("naver: unexpected response status")
)

// SearchAdConfig holds SearchAd API credentials.
type SearchAdConfig struct {
	CustomerID string
	APIKey     string
	SecretKey  string
	BaseURL    string // optional override, used by tests
}

// KeywordStats is one row of the keywordstool response, normalized.
type KeywordStats struct {
	Keyword        string
	MonthlyPC      int
	MonthlyMobile  int
	CompetitionIdx string // "높음", "중간", "낮음"
	AvgCPC         float64
}

// MonthlyTotal returns combined PC and mobile search counts.
func (s KeywordStats) MonthlyTotal() int {
	return s.MonthlyPC + s.MonthlyMobile
}

// SearchAdClient queries the Naver SearchAd keywordstool endpoint using
// HMAC-SHA256 signed requests.
type SearchAdClient struct {
	cfg    SearchAdConfig
	client *http.Client
	now    func() time.Time
}

// NewSearchAdClient builds a client. Credentials may be empty, in which case
// every call returns ErrNotConfigured.
func NewSearchAdClient(cfg SearchAdConfig) *SearchAdClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = searchAdBaseURL
	}
	return &SearchAdClient{
		cfg:    cfg,
		client: &http.Client{Timeout: searchAdTimeout},
		now:    time.Now,
	}
}

// Configured reports whether credentials are present.
func (c *SearchAdClient) Configured() bool {
	return c.cfg.APIKey != "" && c.cfg.SecretKey != "" && c.cfg.CustomerID != ""
}

// KeywordStats fetches monthly search counts, competition index and CPC for
// up to five hint keywords in a single call. Results are keyed by the
// keyword as Naver reports it (spaces removed).
func (c *SearchAdClient) KeywordStats(ctx context.Context, keywords []string) ([]KeywordStats, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(keywords) == 0 {
		return nil, nil
	}
	if len(keywords) > maxHintKeywords {
		keywords = keywords[:maxHintKeywords]
	}

	q := url.Values{}
	q.Set("hintKeywords", strings.Join(keywords, ","))
	q.Set("showDetail", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+keywordToolPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("naver searchad: build request: %w", err)
	}
	c.sign(req, http.MethodGet, keywordToolPath)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordExternal("naver_search_ad", "error")
		return nil, fmt.Errorf("naver searchad: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordExternal("naver_search_ad", "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: searchad %d: %s", ErrBadStatus, resp.StatusCode, body)
	}
	metrics.RecordExternal("naver_search_ad", "ok")

	var payload struct {
		KeywordList []struct {
			RelKeyword         string      `json:"relKeyword"`
			MonthlyPcQcCnt     searchCount `json:"monthlyPcQcCnt"`
			MonthlyMobileQcCnt searchCount `json:"monthlyMobileQcCnt"`
			CompIdx            string      `json:"compIdx"`
			PlAvgDepth         float64     `json:"plAvgDepth"`
		} `json:"keywordList"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("naver searchad: decode: %w", err)
	}

	stats := make([]KeywordStats, 0, len(payload.KeywordList))
	for _, row := range payload.KeywordList {
		stats = append(stats, KeywordStats{
			Keyword:        row.RelKeyword,
			MonthlyPC:      int(row.MonthlyPcQcCnt),
			MonthlyMobile:  int(row.MonthlyMobileQcCnt),
			CompetitionIdx: row.CompIdx,
			AvgCPC:         row.PlAvgDepth,
		})
	}
	return stats, nil
}

// sign adds the SearchAd authentication headers. The signature covers
// "{timestamp}.{method}.{path}" with HMAC-SHA256 over the secret key.
func (c *SearchAdClient) sign(req *http.Request, method, path string) {
	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	mac := hmac.New(sha256.New, []byte(c.cfg.SecretKey))
	mac.Write([]byte(ts + "." + method + "." + path))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-API-KEY", c.cfg.APIKey)
	req.Header.Set("X-Customer", c.cfg.CustomerID)
	req.Header.Set("X-Signature", sig)
	req.Header.Set("Content-Type", "application/json")
}

// searchCount tolerates the keywordstool quirk of reporting small counts as
// the string "< 10" instead of a number.
type searchCount int

func (n *searchCount) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*n = searchCount(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("naver searchad: count %q: %w", data, err)
	}
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "<"))
	num, err := strconv.Atoi(s)
	if err != nil {
		*n = 0
		return nil
	}
	*n = searchCount(num)
	return nil
}
