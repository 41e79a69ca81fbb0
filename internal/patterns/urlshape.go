package patterns

import (
	"regexp"
	"strings"
)

var contactPathRE = regexp.MustCompile(`(?i)^/(?:contact(?:-us)?|get-in-touch|reach-us)/?$`)

// IsContactPath reports whether a URL path looks like a contact page.
func IsContactPath(path string) bool {
	return contactPathRE.MatchString(path)
}

// priorityPathWords mark paths worth crawling before everything else: pages
// where contacts, staffing, and history facts concentrate.
var priorityPathWords = []string{
	"about", "contact", "team", "staff", "people", "leadership",
	"management", "our-story", "history", "who-we-are", "news", "blog",
	"press",
}

// PathPriority scores a URL path for frontier ordering. Lower is fetched
// first; paths with no priority word score 1.
func PathPriority(path string) int {
	lower := strings.ToLower(path)
	for _, w := range priorityPathWords {
		if strings.Contains(lower, w) {
			return 0
		}
	}
	return 1
}
