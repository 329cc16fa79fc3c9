package stealth

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

const robotsCacheTTL = 30 * time.Minute

type robotsEntry struct {
	data    *robotstxt.RobotsData
	fetched time.Time
}

// RobotsChecker fetches and caches robots.txt per origin. When disabled it
// allows everything, which is the default for the price tracker since the
// item API is not covered by crawl rules anyway.
type RobotsChecker struct {
	mu      sync.RWMutex
	cache   map[string]robotsEntry
	client  *http.Client
	ttl     time.Duration
	enabled bool
}

// NewRobotsChecker creates a checker backed by the given client.
func NewRobotsChecker(client *http.Client, enabled bool) *RobotsChecker {
	return &RobotsChecker{
		cache:   make(map[string]robotsEntry),
		client:  client,
		ttl:     robotsCacheTTL,
		enabled: enabled,
	}
}

// IsAllowed reports whether rawURL may be fetched as userAgent.
func (r *RobotsChecker) IsAllowed(userAgent, rawURL string) (bool, error) {
	if !r.enabled {
		return true, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false, err
	}

	data, err := r.origin(u.Scheme + "://" + u.Host)
	if err != nil {
		// Unreachable robots.txt does not block the request.
		return true, nil
	}

	return data.FindGroup(userAgent).Test(u.Path), nil
}

// CrawlDelay returns the crawl delay robots.txt declares for the user agent,
// or zero when none is set.
func (r *RobotsChecker) CrawlDelay(userAgent, origin string) time.Duration {
	if !r.enabled {
		return 0
	}
	data, err := r.origin(origin)
	if err != nil {
		return 0
	}
	return data.FindGroup(userAgent).CrawlDelay
}

func (r *RobotsChecker) origin(origin string) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	entry, ok := r.cache[origin]
	r.mu.RUnlock()
	if ok && time.Since(entry.fetched) < r.ttl {
		return entry.data, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.cache[origin]; ok && time.Since(entry.fetched) < r.ttl {
		return entry.data, nil
	}

	resp, err := r.client.Get(origin + "/robots.txt")
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.cache[origin] = robotsEntry{data: data, fetched: time.Now()}
	return data, nil
}
