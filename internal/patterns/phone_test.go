package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPhones(t *testing.T) {
	t.Parallel()

	text := `Call us at (212) 867-5309 or +1 555.123.4567.
	Fax: 212-867-5309. Toll free 888 234 5678.`

	phones := ExtractPhones(text)
	require.Equal(t, []string{"2128675309", "8882345678"}, phones)
	for _, p := range phones {
		require.Len(t, p, 10)
		require.False(t, IsFakePhone(p))
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted", "(212) 867-5309", "2128675309"},
		{"country code", "+1 212-867-5309", "2128675309"},
		{"dots", "212.867.5309", "2128675309"},
		{"too short", "867-5309", ""},
		{"too long", "12 212 867 5309 9", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizePhone(tc.raw))
		})
	}
}

func TestIsFakePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		digits string
		fake   bool
	}{
		{"all same", "5555555555", true},
		{"ascending", "2345678901", true},
		{"descending", "9876543210", true},
		{"known test", "5551234567", true},
		{"area code starts 0", "0128675309", true},
		{"area code starts 1", "1238675309", true},
		{"exchange starts 1", "2121675309", true},
		{"plausible", "2128675309", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.fake, IsFakePhone(tc.digits))
		})
	}
}
