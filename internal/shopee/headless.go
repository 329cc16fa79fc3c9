package shopee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/net/html"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// HeadlessFetcher renders the product page with rod and pulls the item
// record out of the embedded page state. It is the slow fallback for
// listings where the plain API call gets blocked.
type HeadlessFetcher struct {
	launcherURL string // optional remote launcher URL
}

func NewHeadlessFetcher() *HeadlessFetcher {
	return &HeadlessFetcher{}
}

func (h *HeadlessFetcher) Name() string { return "headless" }

func (h *HeadlessFetcher) Fetch(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error) {
	pageURL := fmt.Sprintf("https://shopee.vn/product/%s/%s", shopID, itemID)

	page, cleanup, err := h.openPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	timedPage := page.Timeout(15 * time.Second)
	if err := timedPage.WaitStable(time.Second); err == nil {
		_ = timedPage.WaitDOMStable(2*time.Second, 0.1)
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("get page HTML: %w", err)
	}

	rec, err := extractRecordFromHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("headless extraction failed: %w", err)
	}
	return rec, nil
}

func (h *HeadlessFetcher) openPage(ctx context.Context, pageURL string) (*rod.Page, func(), error) {
	var l *launcher.Launcher
	if h.launcherURL != "" {
		l = launcher.MustNewManaged(h.launcherURL)
	} else {
		l = launcher.New().Headless(true).Logger(io.Discard)
	}
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		browser.Close()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
	})
	if err != nil {
		browser.Close()
		return nil, nil, fmt.Errorf("set viewport: %w", err)
	}

	cleanup := func() {
		page.Close()
		browser.Close()
		l.Cleanup()
	}

	return page, cleanup, nil
}

// extractRecordFromHTML walks the rendered DOM for a script tag carrying the
// item state and rebuilds a product record from its tier_variations and
// models arrays.
func extractRecordFromHTML(htmlContent string) (*models.ProductRecord, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var state string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if state != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" && n.FirstChild != nil {
			text := n.FirstChild.Data
			if strings.Contains(text, `"tier_variations"`) && strings.Contains(text, `"models"`) {
				state = text
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if state == "" {
		return nil, fmt.Errorf("no embedded item state found")
	}
	return recordFromScript(state)
}

func recordFromScript(content string) (*models.ProductRecord, error) {
	tiersRaw, err := sliceJSONArray(content, `"tier_variations":`)
	if err != nil {
		return nil, err
	}
	modelsRaw, err := sliceJSONArray(content, `"models":`)
	if err != nil {
		return nil, err
	}

	rec := &models.ProductRecord{}
	if err := json.Unmarshal([]byte(tiersRaw), &rec.TierVariations); err != nil {
		return nil, fmt.Errorf("parse tier_variations: %w", err)
	}
	if err := json.Unmarshal([]byte(modelsRaw), &rec.Models); err != nil {
		return nil, fmt.Errorf("parse models: %w", err)
	}
	return rec, nil
}

// sliceJSONArray returns the first balanced JSON array following key.
func sliceJSONArray(content, key string) (string, error) {
	at := strings.Index(content, key)
	if at == -1 {
		return "", fmt.Errorf("key %s not found in page state", key)
	}
	start := strings.Index(content[at:], "[")
	if start == -1 {
		return "", fmt.Errorf("no array after %s", key)
	}
	start += at

	depth := 0
	inString := false
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '"':
			if i > 0 && content[i-1] != '\\' {
				inString = !inString
			}
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return content[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("unterminated array after %s", key)
}
