package wrapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rowboat-dev/rowboat/pkg/operator"
)

// ErrContentRejected indicates sanitization refused the content
// outright; nothing is written and the row's chain halts.
var ErrContentRejected = errors.New("content rejected")

// sentinel strings models emit instead of admitting they have nothing
var nullishSentinels = map[string]bool{
	"null": true, "undefined": true, "none": true, "n/a": true,
	"{}": true, "[]": true,
}

// Sanitize applies the pre-write cleaning pipeline: strip quote pairs,
// reject blocked-host URLs, normalize URLs, trim, reject null-ish
// sentinels and all-null JSON objects, truncate. Sanitize is
// idempotent: applying it to its own output changes nothing.
func Sanitize(content string, blockedHosts []string, maxLen int) (string, error) {
	s := strings.TrimSpace(content)
	s = stripQuotePairs(s)
	s = strings.TrimSpace(s)

	if operator.IsHTTPURL(s) {
		if operator.HostBlocked(s, blockedHosts) {
			return "", fmt.Errorf("%w: redirect-host url", ErrContentRejected)
		}
		s = normalizeURL(s)
	}

	if s == "" {
		return "", fmt.Errorf("%w: empty after sanitization", ErrContentRejected)
	}
	if nullishSentinels[strings.ToLower(s)] {
		return "", fmt.Errorf("%w: null-ish sentinel %q", ErrContentRejected, s)
	}
	if isAllNullJSONObject(s) {
		return "", fmt.Errorf("%w: json object with only null values", ErrContentRejected)
	}

	if maxLen > 0 {
		s = truncateRunes(s, maxLen)
	}
	return s, nil
}

// truncateRunes shortens s to at most max runes. Truncation counts
// characters, not bytes, so a multi-byte rune is never split.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// stripQuotePairs removes matching surrounding quote pairs repeatedly,
// so `""value""` and `'"value"'` both reduce to `value`.
func stripQuotePairs(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first != last {
			return s
		}
		if first != '"' && first != '\'' && first != '`' {
			return s
		}
		s = s[1 : len(s)-1]
	}
	return s
}

// normalizeURL re-serializes a URL through net/url, dropping fragments
// and normalizing escaping. Unparseable input is returned as-is; the
// validator deals with it.
func normalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// isAllNullJSONObject reports whether s is a non-empty JSON object
// whose values are all null.
func isAllNullJSONObject(s string) bool {
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil || len(obj) == 0 {
		return false
	}
	for _, v := range obj {
		if v != nil {
			return false
		}
	}
	return true
}
