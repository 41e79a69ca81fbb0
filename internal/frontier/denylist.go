package frontier

import (
	"net/url"
	"regexp"
	"strings"
)

// Static assets carry no extractable prose.
var assetExtensions = []string{
	".css", ".js", ".json", ".xml", ".png", ".jpg", ".jpeg", ".gif", ".svg",
	".webp", ".ico", ".pdf", ".zip", ".gz", ".doc", ".docx", ".xls", ".xlsx",
	".ppt", ".pptx", ".mp3", ".mp4", ".mov", ".avi", ".webm", ".woff",
	".woff2", ".ttf", ".eot",
}

// denySegments are path pieces marking auth, commerce, feed, API, and CMS
// admin endpoints.
var denySegments = []string{
	"/wp-admin", "/wp-login", "/wp-json", "/xmlrpc.php", "/admin", "/login",
	"/signin", "/sign-in", "/signup", "/sign-up", "/register", "/logout",
	"/cart", "/checkout", "/account", "/my-account", "/search", "/feed",
	"/rss", "/sitemap", "/api/", "/cdn-cgi/", "/wp-content/uploads",
	"/tag/", "/author/",
}

var (
	paginationPathRE  = regexp.MustCompile(`/page/\d+`)
	paginationQueryRE = regexp.MustCompile(`(?:^|&)(?:page|paged|p)=\d+`)
)

// Denied reports whether a normalized URL matches a non-content shape that
// should never enter the frontier.
func Denied(u *url.URL) bool {
	path := strings.ToLower(u.Path)
	for _, ext := range assetExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	for _, seg := range denySegments {
		if strings.Contains(path, seg) {
			return true
		}
	}
	if paginationPathRE.MatchString(path) {
		return true
	}
	if paginationQueryRE.MatchString(strings.ToLower(u.RawQuery)) {
		return true
	}
	return false
}
