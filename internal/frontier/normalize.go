package frontier

import (
	"fmt"
	"net/url"
	"strings"
)

// trackingParams are query parameters that never change page content and
// would otherwise split the visited set.
var trackingParams = map[string]struct{}{
	"gclid":       {},
	"fbclid":      {},
	"msclkid":     {},
	"mc_cid":      {},
	"mc_eid":      {},
	"ref":         {},
	"utm_source":  {},
	"utm_medium":  {},
	"utm_campaign": {},
	"utm_term":    {},
	"utm_content": {},
}

// Normalize standardizes a URL for visited-set membership: lowercase
// scheme/host, fragment stripped, tracking parameters dropped, default ports
// removed, empty path mapped to "/".
func Normalize(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if u.Scheme == "http" {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	} else {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	if u.Path == "" {
		u.Path = "/"
	}

	q := u.Query()
	for param := range q {
		if _, tracking := trackingParams[strings.ToLower(param)]; tracking {
			q.Del(param)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// SameDomain reports whether two hosts belong to the same site, ignoring a
// leading www.
func SameDomain(a, b string) bool {
	return stripWWW(a) != "" && stripWWW(a) == stripWWW(b)
}

func stripWWW(host string) string {
	host = strings.ToLower(host)
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}
