package shopee

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// domainMarker identifies marketplace hosts. Subdomains like
// mall.shopee.vn carry the marker too, so a substring check suffices.
const domainMarker = "shopee.vn"

// Product pages end their slug with "i.<shopid>.<itemid>".
var idPattern = regexp.MustCompile(`i\.(\d+)\.(\d+)`)

// ExtractIDs parses a product page URL into its (shop id, item id) pair.
// The primary strategy matches the id suffix of the last slug segment; when
// the slug carries no ids, the shopid/itemid query parameters are used.
// Pure function of the URL string.
func ExtractIDs(rawURL string) (shopID, itemID string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !strings.Contains(u.Host, domainMarker) {
		return "", "", fmt.Errorf("%w: host %q", ErrInvalidURL, u.Host)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "-")
	if last := parts[len(parts)-1]; last != "" {
		if m := idPattern.FindStringSubmatch(last); m != nil {
			return m[1], m[2], nil
		}
	}

	q := u.Query()
	shopID, itemID = q.Get("shopid"), q.Get("itemid")
	if isDigits(shopID) && isDigits(itemID) {
		return shopID, itemID, nil
	}

	return "", "", fmt.Errorf("%w: %s", ErrIDNotFound, rawURL)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
