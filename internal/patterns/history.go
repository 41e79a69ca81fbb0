package patterns

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// historyKeywords flag sentences worth keeping as company-history prose.
var historyKeywords = []string{
	"history", "story", "founded", "established", "began", "started",
	"heritage", "tradition", "legacy",
}

var sentenceSplitRE = regexp.MustCompile(`[.!?]\s+`)

// maxSnippetLen truncates kept sentences.
const maxSnippetLen = 300

// truncateSnippet cuts at maxSnippetLen without splitting a multi-byte rune,
// backing up to the nearest rune boundary.
func truncateSnippet(s string) string {
	if len(s) <= maxSnippetLen {
		return s
	}
	cut := maxSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// FindHistorySentences splits text into sentences and keeps the ones that
// mention a history keyword, truncated to 300 characters.
func FindHistorySentences(text string) []string {
	var out []string
	for _, sentence := range sentenceSplitRE.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, kw := range historyKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, truncateSnippet(sentence))
				break
			}
		}
	}
	return out
}

var newHireREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[^.!?]*\bjoined\s+(?:our|the)\s+team\b[^.!?]*`),
	regexp.MustCompile(`(?i)[^.!?]*\bwelcome\s+[^.!?]{0,60}\bto\s+the\s+team\b[^.!?]*`),
	regexp.MustCompile(`(?i)[^.!?]*\bnew\s+hire\b[^.!?]*`),
	regexp.MustCompile(`(?i)[^.!?]*\bnewest\s+(?:member|addition)\b[^.!?]*`),
}

// FindNewHireMentions returns sentence fragments announcing hires, truncated
// like history snippets.
func FindNewHireMentions(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, re := range newHireREs {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if m == "" {
				continue
			}
			m = truncateSnippet(m)
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
