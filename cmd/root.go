package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/minhvu-dev/shopee-track/config"
	"github.com/minhvu-dev/shopee-track/internal/httputil"
	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/shopee"
	"github.com/minhvu-dev/shopee-track/internal/stealth"
	"github.com/minhvu-dev/shopee-track/internal/tracker"
	mcpserver "github.com/minhvu-dev/shopee-track/mcp"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "shopee-track",
	Short: "Shopee price tracker CLI & MCP server",
	Long:  "Tracks Shopee product prices, resolves variation labels to models, and records daily prices and discounts into a spreadsheet.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("marketplace", "shopee", "Target marketplace")
	rootCmd.PersistentFlags().String("delay-profile", "normal", "Delay profile: cautious, normal, aggressive")
	rootCmd.PersistentFlags().Bool("respect-robots", false, "Respect robots.txt rules")
	rootCmd.PersistentFlags().Bool("headless", false, "Fall back to a headless browser when the item API fails")
	rootCmd.PersistentFlags().Int("retries", 0, "HTTP retries per API request")
	rootCmd.PersistentFlags().String("proxy-file", "", "Path to proxy list file")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("marketplace"); v != "" {
		cfg.Marketplace = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("delay-profile"); v != "" {
		cfg.DelayProfile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); v {
		cfg.RespectRobots = true
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("headless"); v {
		cfg.Headless = true
	}
	if v, _ := rootCmd.PersistentFlags().GetInt("retries"); v > 0 {
		cfg.HTTPRetries = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("proxy-file"); v != "" {
		cfg.ProxyFile = v
	}
}

// sharedLimiter is the one rate limiter all price sources share, so the
// request rate stays bounded no matter how many workers run.
var sharedLimiter *rate.Limiter

func limiter() *rate.Limiter {
	if sharedLimiter == nil {
		sharedLimiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	}
	return sharedLimiter
}

// buildHTTPClient creates a stealth-wrapped HTTP client from config.
// Each call returns a fresh client so pool units stay isolated.
func buildHTTPClient() *http.Client {
	baseTransport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	var proxyRotator *stealth.ProxyRotator
	if cfg.ProxyFile != "" {
		providers, err := stealth.LoadProxyFile(cfg.ProxyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, proxies disabled\n", err)
		} else {
			proxyRotator = stealth.NewProxyRotator(providers)
		}
	}

	robots := stealth.NewRobotsChecker(&http.Client{}, cfg.RespectRobots)

	transport := &stealth.Transport{
		Base:        baseTransport,
		Robots:      robots,
		Fingerprint: stealth.NewFingerprintPool(),
		Proxy:       proxyRotator,
		Delay:       stealth.NewHumanDelay(stealth.DelayProfile(cfg.DelayProfile)),
		RateLimiter: limiter(),
	}

	return httputil.NewHTTPClient(transport)
}

// newPriceSource builds one price source with its own HTTP client.
// Used as the per-unit factory for batch pools.
func newPriceSource() marketplace.PriceSource {
	return shopee.NewScraper(buildHTTPClient(), limiter(), shopee.Options{
		APIBase:    cfg.APIBaseURL,
		MaxRetries: cfg.HTTPRetries,
		Headless:   cfg.Headless,
	})
}

// initMarketplaces registers all available price sources.
func initMarketplaces() {
	marketplace.Register("shopee", newPriceSource())
}

// initMCPDeps hands the MCP tools their job store and pool factory.
func initMCPDeps() {
	mcpserver.SetDeps(mcpserver.Deps{
		Store:       tracker.NewStore(),
		NewPool:     func(workers int) *tracker.Pool { return tracker.NewPool(workers, newPriceSource) },
		Workers:     cfg.Workers,
		Marketplace: cfg.Marketplace,
	})
}
