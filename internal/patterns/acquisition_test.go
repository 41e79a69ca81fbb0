package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAcquisitionSignals(t *testing.T) {
	t.Parallel()

	text := `In 2019 we were acquired by Apex Holdings. The shop operates
	under new management. Formerly known as Smith Bros Plumbing.`

	signals := FindAcquisitionSignals(text)
	byType := map[string]AcquisitionMatch{}
	for _, s := range signals {
		byType[s.SignalType] = s
	}

	acq, ok := byType[SignalAcquiredBy]
	require.True(t, ok)
	require.Contains(t, acq.Text, "Apex Holdings")
	require.Equal(t, "2019", acq.Year)

	mgmt, ok := byType[SignalOwnershipChange]
	require.True(t, ok)
	require.Empty(t, mgmt.Year)

	reb, ok := byType[SignalRebranded]
	require.True(t, ok)
	require.Contains(t, reb.Text, "Smith Bros")
}

func TestFindAcquisitionSignalsNone(t *testing.T) {
	t.Parallel()

	require.Empty(t, FindAcquisitionSignals("We fix leaky faucets and water heaters."))
}

func TestYearNearWindow(t *testing.T) {
	t.Parallel()

	// Year beyond the 50-char window is not attached. Dots stop the
	// company-name capture from stretching toward the year.
	pad := make([]byte, 60)
	for i := range pad {
		pad[i] = '.'
	}
	text := "sold to Acme Corp " + string(pad) + " 2015"
	signals := FindAcquisitionSignals(text)
	require.Len(t, signals, 1)
	require.Empty(t, signals[0].Year)
}
