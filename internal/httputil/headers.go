package httputil

import "net/http"

// ShopeeAPIHeaders returns the headers the Shopee item API expects from a
// browser session.
func ShopeeAPIHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9,vi;q=0.8")
	h.Set("Accept-Encoding", "gzip, deflate, br")
	h.Set("Connection", "keep-alive")
	h.Set("Referer", "https://shopee.vn/")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("X-API-Source", "pc")
	return h
}
