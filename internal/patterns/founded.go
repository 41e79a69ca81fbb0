package patterns

import (
	"regexp"
	"strconv"
)

// earliestFoundedYear bounds explicit year matches; anything older is assumed
// to be a false positive (addresses, product numbers).
const earliestFoundedYear = 1800

// foundedYearREs are tried in fixed priority order; the first match wins.
// The boolean marks patterns whose captured number is a tenure in years
// rather than a literal year.
var foundedYearREs = []struct {
	re     *regexp.Regexp
	tenure bool
}{
	{regexp.MustCompile(`(?i)\b(?:founded|established|est\.?|since)\s*(?:in\s+)?(\d{4})\b`), false},
	{regexp.MustCompile(`(?i)\b(\d{1,3})\+?\s*years?\s+(?:in\s+business|of\s+experience|serving)\b`), true},
	{regexp.MustCompile(`(?i)\bcelebrating\s+(?:our\s+)?(\d{1,3})(?:th|st|nd|rd)?\s+(?:year|anniversary)\b`), true},
	{regexp.MustCompile(`(?i)\bfamily[\s\-]owned\s+(?:and\s+operated\s+)?since\s+(\d{4})\b`), false},
}

// FindFoundedYear returns the founding year resolved from text, the phrase
// that produced it, and whether anything matched. currentYear bounds explicit
// years and anchors tenure-derived ones.
func FindFoundedYear(text string, currentYear int) (int, string, bool) {
	for _, p := range foundedYearREs {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			year := n
			if p.tenure {
				if n <= 0 || n > currentYear-earliestFoundedYear {
					continue
				}
				year = currentYear - n
			}
			if year < earliestFoundedYear || year > currentYear {
				continue
			}
			return year, m[0], true
		}
	}
	return 0, "", false
}
