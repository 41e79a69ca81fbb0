package patterns

import (
	"regexp"
	"strings"
)

var phoneRE = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

var nonDigitRE = regexp.MustCompile(`\D`)

// knownTestNumbers are numbers commonly used as fillers in page templates.
var knownTestNumbers = map[string]struct{}{
	"5551234567": {},
	"5555551234": {},
	"1234567890": {},
	"0123456789": {},
	"8005551234": {},
}

const (
	digitsAscending  = "01234567890123456789"
	digitsDescending = "98765432109876543210"
)

// ExtractPhones returns deduplicated US phone numbers found in text,
// normalized to bare 10-digit strings with the country code stripped.
// Fake-looking numbers are dropped.
func ExtractPhones(text string) []string {
	matches := phoneRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		digits := NormalizePhone(m)
		if digits == "" {
			continue
		}
		if _, dup := seen[digits]; dup {
			continue
		}
		if IsFakePhone(digits) {
			continue
		}
		seen[digits] = struct{}{}
		out = append(out, digits)
	}
	return out
}

// NormalizePhone strips formatting and a leading US country code, returning
// exactly 10 digits or "" when the input cannot be a US number.
func NormalizePhone(raw string) string {
	digits := nonDigitRE.ReplaceAllString(raw, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return ""
	}
	return digits
}

// IsFakePhone reports whether a normalized 10-digit number matches a
// repeating-digit, sequential, known-test, or invalid area-code shape.
func IsFakePhone(digits string) bool {
	if len(digits) != 10 {
		return true
	}
	if _, known := knownTestNumbers[digits]; known {
		return true
	}
	if allSameDigit(digits) {
		return true
	}
	if strings.Contains(digitsAscending, digits) || strings.Contains(digitsDescending, digits) {
		return true
	}
	// NANP: neither the area code nor the exchange may start with 0 or 1.
	if digits[0] == '0' || digits[0] == '1' {
		return true
	}
	if digits[3] == '0' || digits[3] == '1' {
		return true
	}
	return false
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
