package operator

import (
	"net/url"
	"strings"
)

// HostBlocked reports whether raw is an http(s) URL on one of the given
// hosts (exact or subdomain match). Used both to flag vendor redirect
// URLs in search results and to reject them pre-write.
func HostBlocked(raw string, blocked []string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, b := range blocked {
		b = strings.ToLower(strings.TrimSpace(b))
		if b == "" {
			continue
		}
		// Blocklist entries may carry a path prefix (e.g. www.google.com/url)
		var bPath string
		if idx := strings.IndexByte(b, '/'); idx >= 0 {
			bPath = b[idx:]
			b = b[:idx]
		}
		if host != b && !strings.HasSuffix(host, "."+b) {
			continue
		}
		if bPath == "" || strings.HasPrefix(u.Path, bPath) {
			return true
		}
	}
	return false
}

// IsHTTPURL reports whether raw parses as an absolute http(s) URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
