package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a user-supplied link. A missing scheme is
// assumed to be https, http is upgraded to https, the host is
// lowercased and a bare trailing slash is dropped. An empty input
// normalizes to the empty string.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("URL is missing a host")
	}
	u.Host = strings.ToLower(u.Host)
	u.Host = strings.TrimSuffix(u.Host, ":443")

	if u.Path == "/" && u.RawQuery == "" && u.Fragment == "" {
		u.Path = ""
	}

	return u.String(), nil
}
