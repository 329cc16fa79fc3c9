package stealth

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
)

// ProxyProvider abstracts a proxy backend.
type ProxyProvider interface {
	Transport() http.RoundTripper
	Name() string
}

// ProxyRotator cycles through multiple proxy providers.
type ProxyRotator struct {
	providers []ProxyProvider
	mu        sync.Mutex
	idx       int
}

// NewProxyRotator creates a rotator from a list of providers.
// Returns nil if no providers are given.
func NewProxyRotator(providers []ProxyProvider) *ProxyRotator {
	if len(providers) == 0 {
		return nil
	}
	return &ProxyRotator{providers: providers}
}

// Next returns the next proxy provider in round-robin order.
func (p *ProxyRotator) Next() ProxyProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	provider := p.providers[p.idx%len(p.providers)]
	p.idx++
	return provider
}

// DirectProvider routes traffic directly (no proxy).
type DirectProvider struct {
	transport http.RoundTripper
}

func (d *DirectProvider) Transport() http.RoundTripper { return d.transport }
func (d *DirectProvider) Name() string                 { return "direct" }

// URLProvider wraps a generic HTTP/SOCKS5 proxy URL.
type URLProvider struct {
	RawURL    string
	Label     string
	transport http.RoundTripper
	once      sync.Once
	parseErr  error
}

func (h *URLProvider) Name() string { return h.Label }

func (h *URLProvider) Transport() http.RoundTripper {
	h.once.Do(func() {
		proxyURL, err := url.Parse(h.RawURL)
		if err != nil {
			h.parseErr = err
			h.transport = http.DefaultTransport
			return
		}
		h.transport = &http.Transport{
			Proxy:             http.ProxyURL(proxyURL),
			DisableKeepAlives: true,
		}
	})
	return h.transport
}

// Err returns any error from parsing the proxy URL.
// Must be called after Transport() to ensure initialization.
func (h *URLProvider) Err() error {
	h.once.Do(func() {}) // ensure init ran
	return h.parseErr
}

// LoadProxyFile reads proxy URLs from a file, one per line.
// Blank lines and lines starting with # are skipped.
func LoadProxyFile(path string) ([]ProxyProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open proxy file: %w", err)
	}
	defer f.Close()

	var providers []ProxyProvider
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		providers = append(providers, &URLProvider{
			RawURL: line,
			Label:  fmt.Sprintf("proxy-%d", n),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read proxy file: %w", err)
	}
	return providers, nil
}
