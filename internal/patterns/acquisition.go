package patterns

import (
	"regexp"
	"strings"
)

// Acquisition signal type labels.
const (
	SignalAcquiredBy      = "acquired_by"
	SignalSoldTo          = "sold_to"
	SignalMerger          = "merger"
	SignalOwnershipChange = "ownership_change"
	SignalParentCompany   = "parent_company"
	SignalRebranded       = "rebranded"
)

var acquisitionREs = []struct {
	signalType string
	re         *regexp.Regexp
}{
	{SignalAcquiredBy, regexp.MustCompile(`(?i)\bacquired\s+by\s+[A-Za-z][A-Za-z0-9&' \-]{1,60}`)},
	{SignalSoldTo, regexp.MustCompile(`(?i)\bsold\s+to\s+[A-Za-z][A-Za-z0-9&' \-]{1,60}`)},
	{SignalMerger, regexp.MustCompile(`(?i)\bmerg(?:er|ed)\s+with\s+[A-Za-z][A-Za-z0-9&' \-]{1,60}`)},
	{SignalOwnershipChange, regexp.MustCompile(`(?i)\b(?:under\s+)?new\s+(?:ownership|management)\b`)},
	{SignalParentCompany, regexp.MustCompile(`(?i)\b(?:parent\s+company|a?\s*subsidiary\s+of)\s*[A-Za-z0-9&' \-]{0,60}`)},
	{SignalRebranded, regexp.MustCompile(`(?i)\b(?:formerly\s+known\s+as|rebranded\s+(?:as|to))\s+[A-Za-z][A-Za-z0-9&' \-]{1,60}`)},
}

var fourDigitYearRE = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// AcquisitionMatch is one ownership-change mention found in text.
type AcquisitionMatch struct {
	Text       string
	SignalType string
	Year       string
}

// FindAcquisitionSignals matches each phrasing independently. For every hit
// the surrounding ±50-character window is scanned for a four-digit year to
// attach as the mentioned date.
func FindAcquisitionSignals(text string) []AcquisitionMatch {
	var out []AcquisitionMatch
	for _, p := range acquisitionREs {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			match := strings.TrimSpace(text[loc[0]:loc[1]])
			out = append(out, AcquisitionMatch{
				Text:       match,
				SignalType: p.signalType,
				Year:       yearNear(text, loc[0], loc[1]),
			})
		}
	}
	return out
}

func yearNear(text string, start, end int) string {
	lo := start - 50
	if lo < 0 {
		lo = 0
	}
	hi := end + 50
	if hi > len(text) {
		hi = len(text)
	}
	return fourDigitYearRE.FindString(text[lo:hi])
}
