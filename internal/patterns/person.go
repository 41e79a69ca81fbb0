package patterns

import (
	"regexp"
	"strings"
	"unicode"
)

// roleKeywords are the titles a name must sit next to before we treat the
// pair as a team member.
const roleKeywords = `CEO|CFO|COO|CTO|President|Vice President|VP|Owner|Co-Owner|Founder|Co-Founder|Partner|Principal|Director|Manager|General Manager|Office Manager|Operations Manager|Project Manager|Supervisor|Foreman|Estimator|Technician|Coordinator`

var (
	// "Jane Doe, Office Manager" / "Jane Doe - Owner" / "Jane Doe is our CEO"
	nameThenTitleRE = regexp.MustCompile(
		`\b([A-Z][A-Za-z'’\-]+(?:\s+[A-Z][A-Za-z'’\-\.]+){1,3})\s*(?:[,\-–—:|]\s*|\s+is\s+(?:our|the)\s+|\s+)(` + roleKeywords + `)\b`)
	// "Owner Jane Doe" / "CEO: Jane Doe"
	titleThenNameRE = regexp.MustCompile(
		`\b(` + roleKeywords + `)\s*[:,\-–—]?\s+([A-Z][A-Za-z'’\-]+(?:\s+[A-Z][A-Za-z'’\-\.]+){1,3})\b`)
)

// PersonMatch is one raw name/title candidate found in text. Callers still
// need to dedupe and cap.
type PersonMatch struct {
	Name  string
	Title string
}

// FindTeamMembers returns validated name/title pairs found in text. A pair is
// kept only when the name passes the person-name heuristic.
func FindTeamMembers(text string) []PersonMatch {
	var out []PersonMatch
	for _, m := range nameThenTitleRE.FindAllStringSubmatch(text, -1) {
		if name, ok := trimToPersonName(m[1]); ok {
			out = append(out, PersonMatch{Name: name, Title: m[2]})
		}
	}
	for _, m := range titleThenNameRE.FindAllStringSubmatch(text, -1) {
		if name, ok := trimToPersonName(m[2]); ok {
			out = append(out, PersonMatch{Name: name, Title: m[1]})
		}
	}
	return out
}

// trimToPersonName validates a candidate, stripping leading capitalized
// filler ("Meet Robert O'Brien") until the remainder passes or runs out of
// tokens.
func trimToPersonName(candidate string) (string, bool) {
	tokens := strings.Fields(strings.TrimSpace(candidate))
	for len(tokens) >= 2 {
		name := strings.Join(tokens, " ")
		if IsLikelyPersonName(name) {
			return name, true
		}
		tokens = tokens[1:]
	}
	return "", false
}

// IsLikelyPersonName applies the three-part heuristic: the first token must
// be a known first name, no token may be a noise word, and every token must
// be properly capitalized (allowing O'Brien, McDonald, and similar).
func IsLikelyPersonName(candidate string) bool {
	tokens := strings.Fields(candidate)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	first := strings.ToLower(strings.Trim(tokens[0], ".'’"))
	if _, ok := commonFirstNames[first]; !ok {
		return false
	}
	for _, tok := range tokens {
		clean := strings.ToLower(strings.Trim(tok, ".,'’"))
		if _, noisy := nameNoiseWords[clean]; noisy {
			return false
		}
		if !properlyCapitalized(strings.TrimRight(tok, ".,")) {
			return false
		}
	}
	return true
}

// capParticles are surname prefixes that legitimately introduce a second
// capital letter mid-token.
var capParticles = []string{"Mc", "Mac", "De", "Di", "Du", "La", "Le", "Van", "Von", "St"}

func properlyCapitalized(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for i := 1; i < len(runes); i++ {
		c := runes[i]
		switch {
		case unicode.IsLower(c):
		case c == '\'' || c == '’' || c == '-':
		case unicode.IsUpper(c):
			prev := runes[i-1]
			if prev == '\'' || prev == '’' || prev == '-' {
				continue
			}
			if !hasParticlePrefix(string(runes[:i])) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func hasParticlePrefix(prefix string) bool {
	for _, p := range capParticles {
		if prefix == p {
			return true
		}
	}
	return false
}
