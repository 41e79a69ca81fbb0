package patterns

import (
	"regexp"
	"strconv"
)

// Headcount candidates outside this range are noise (phone fragments, years,
// marketing hyperbole).
const (
	minHeadcount = 2
	maxHeadcount = 10000
)

// rangeHeadcountRE contributes the upper bound of an "N-M employees" range.
var rangeHeadcountRE = regexp.MustCompile(`(?i)\b\d{1,5}\s*(?:-|–|—|to)\s*(\d{1,5})\s+employees\b`)

var headcountREs = []*regexp.Regexp{
	// The leading class keeps range upper bounds ("20-30 employees") out of
	// the plain pattern; the range matcher owns those.
	regexp.MustCompile(`(?i)(?:^|[^\d\-–—])(\d{1,5})\+?\s+employees\b`),
	regexp.MustCompile(`(?i)\bteam\s+of\s+(\d{1,5})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,5})\s*-\s*person\s+team\b`),
	regexp.MustCompile(`(?i)\bemploys\s+(?:over\s+|more\s+than\s+)?(\d{1,5})\b`),
	regexp.MustCompile(`(?i)\bover\s+(\d{1,5})\s+employees\b`),
}

// HeadcountCandidate is one numeric headcount mention with the text that
// produced it.
type HeadcountCandidate struct {
	Count  int
	Source string
}

// FindHeadcounts extracts every headcount candidate from text. Each phrasing
// pattern contributes independently; the same sentence can yield several
// candidates.
func FindHeadcounts(text string) []HeadcountCandidate {
	var out []HeadcountCandidate
	for _, re := range headcountREs {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if c, ok := parseHeadcount(m[1]); ok {
				out = append(out, HeadcountCandidate{Count: c, Source: m[0]})
			}
		}
	}
	for _, m := range rangeHeadcountRE.FindAllStringSubmatch(text, -1) {
		if c, ok := parseHeadcount(m[1]); ok {
			out = append(out, HeadcountCandidate{Count: c, Source: m[0]})
		}
	}
	return out
}

// SelectHeadcount picks the final estimate: the most frequent count wins,
// ties break toward the larger number. The returned source is the first
// candidate string carrying the winning count.
func SelectHeadcount(candidates []HeadcountCandidate) (int, string, bool) {
	if len(candidates) == 0 {
		return 0, "", false
	}
	freq := make(map[int]int, len(candidates))
	for _, c := range candidates {
		freq[c.Count]++
	}
	best, bestFreq := 0, 0
	for count, n := range freq {
		if n > bestFreq || (n == bestFreq && count > best) {
			best, bestFreq = count, n
		}
	}
	for _, c := range candidates {
		if c.Count == best {
			return best, c.Source, true
		}
	}
	return best, "", true
}

func parseHeadcount(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < minHeadcount || n > maxHeadcount {
		return 0, false
	}
	return n, true
}
