package patterns

import (
	"regexp"
	"strings"
)

var emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// placeholderDomains are template/sample domains that show up in unfinished
// themes and must never be reported as real contacts.
var placeholderDomains = map[string]struct{}{
	"example.com":         {},
	"example.org":         {},
	"email.com":           {},
	"domain.com":          {},
	"yourdomain.com":      {},
	"yoursite.com":        {},
	"company.com":         {},
	"sentry.io":           {},
	"wixpress.com":        {},
	"sentry.wixpress.com": {},
	"mysite.com":          {},
	"test.com":            {},
}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico"}

// ExtractEmails returns the deduplicated, lower-cased email addresses found
// in text, rejecting placeholder domains and image-filename false positives
// (asset names like hero@2x.png match the naive address shape).
func ExtractEmails(text string) []string {
	matches := emailRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		addr := strings.ToLower(m)
		if _, dup := seen[addr]; dup {
			continue
		}
		if isImageName(addr) || isPlaceholder(addr) {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}

func isImageName(addr string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(addr, ext) {
			return true
		}
	}
	return false
}

func isPlaceholder(addr string) bool {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return true
	}
	domain := addr[at+1:]
	if _, bad := placeholderDomains[domain]; bad {
		return true
	}
	// Subdomains of placeholder domains are equally fake.
	for bad := range placeholderDomains {
		if strings.HasSuffix(domain, "."+bad) {
			return true
		}
	}
	return false
}
