// Package jobs holds background loops run alongside the HTTP server.
package jobs

import (
	"context"
	"log"
	"net/http"
	"time"

	"placerank/internal/metrics"
)

// probeTargets maps dependency names to endpoints that answer unauthenticated
// requests. Any HTTP response counts as reachable; only transport failures
// mark a dependency down.
var probeTargets = map[string]string{
	"naver_search_ad": "https://api.naver.com",
	"naver_local":     "https://openapi.naver.com",
	"mois_population": "https://apis.data.go.kr",
}

// DependencyProbe periodically checks reachability of the external APIs and
// publishes the result as a gauge.
type DependencyProbe struct {
	interval time.Duration
	targets  map[string]string
	client   *http.Client
}

// NewDependencyProbe creates a probe with the default target set.
func NewDependencyProbe(interval time.Duration) *DependencyProbe {
	return &DependencyProbe{
		interval: interval,
		targets:  probeTargets,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Start begins the probe loop. Blocks until the context is cancelled.
func (p *DependencyProbe) Start(ctx context.Context) {
	log.Printf("Dependency probe started (interval: %v)", p.interval)

	// Run immediately on start
	p.probeAll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dependency probe stopped")
			return
		case <-ticker.C:
			p.probeAll(ctx)
		}
	}
}

func (p *DependencyProbe) probeAll(ctx context.Context) {
	for name, url := range p.targets {
		select {
		case <-ctx.Done():
			return
		default:
		}
		metrics.SetDependencyUp(name, p.probe(ctx, url))
	}
}

// probe issues a HEAD request; reachability is all it measures.
func (p *DependencyProbe) probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
