package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFoundedYear(t *testing.T) {
	t.Parallel()

	const currentYear = 2026

	tests := []struct {
		name     string
		text     string
		wantYear int
		wantOK   bool
	}{
		{"founded in", "Founded in 1998, we serve the metro area.", 1998, true},
		{"established", "Established 2005. Family run.", 2005, true},
		{"est dot", "Est. 1987 — quality first.", 1987, true},
		{"since", "Serving the valley since 1979.", 1979, true},
		{"years in business", "Over 25 years in business.", 2001, true},
		{"years of experience", "We bring 40 years of experience.", 1986, true},
		{"celebrating anniversary", "Celebrating our 30th anniversary this spring!", 1996, true},
		{"family owned since", "Family-owned since 1962.", 1962, true},
		{"explicit beats tenure", "Founded in 1990. 10 years of experience.", 1990, true},
		{"year too old", "Established 1502 in the old country.", 0, false},
		{"year in future", "Founded in 2099.", 0, false},
		{"nothing", "We fix pipes.", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			year, source, ok := FindFoundedYear(tc.text, currentYear)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantYear, year)
			if ok {
				require.NotEmpty(t, source)
				require.GreaterOrEqual(t, year, earliestFoundedYear)
				require.LessOrEqual(t, year, currentYear)
			}
		})
	}
}
