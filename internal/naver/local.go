package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"placerank/internal/metrics"
)

const (
	localBaseURL = "https://openapi.naver.com"
	localPath    = "/v1/search/local.json"
	localTimeout = 10 * time.Second
)

// LocalConfig holds Naver open API credentials for the local search endpoint.
type LocalConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string // optional override, used by tests
}

// LocalClient counts how many places Naver lists for a keyword. The total is
// a rough proxy for local competition.
type LocalClient struct {
	cfg    LocalConfig
	client *http.Client
}

func NewLocalClient(cfg LocalConfig) *LocalClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = localBaseURL
	}
	return &LocalClient{
		cfg:    cfg,
		client: &http.Client{Timeout: localTimeout},
	}
}

// Configured reports whether credentials are present.
func (c *LocalClient) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// Count returns the total number of local listings matching the keyword.
func (c *LocalClient) Count(ctx context.Context, keyword string) (int, error) {
	if !c.Configured() {
		return 0, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("display", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+localPath+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("naver local: build request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.cfg.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.cfg.ClientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordExternal("naver_local", "error")
		return 0, fmt.Errorf("naver local: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordExternal("naver_local", "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: local %d: %s", ErrBadStatus, resp.StatusCode, body)
	}
	metrics.RecordExternal("naver_local", "ok")

	var payload struct {
		Total int `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("naver local: decode: %w", err)
	}
	return payload.Total, nil
}
