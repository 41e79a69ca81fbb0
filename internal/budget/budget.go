// Package budget computes how many businesses can be scraped in parallel
// from a declared memory/CPU allocation. Browser rendering dominates the
// per-scrape cost, so fast mode (plain HTTP only) and render mode use
// separate formulas.
package budget

// Allocation describes the resources granted to one job run. CPU follows the
// container convention where 1024 units is roughly one core.
type Allocation struct {
	MemoryMiB int
	CPUUnits  int
	// FastMode forbids browser rendering, making each scrape far cheaper.
	FastMode bool
	// Override, when positive, wins over the computed value.
	Override int
}

const (
	// baselineOverheadMiB is the runtime's fixed footprint before any
	// scrape starts.
	baselineOverheadMiB = 500

	fastMemPerScrapeMiB   = 50
	fastScrapesPerCore    = 30
	fastMaxParallel       = 50
	renderMemPerScrapeMiB = 300
	renderScrapesPerCore  = 4
	renderMinParallel     = 3
)

// Parallelism returns the number of businesses that may be scraped at once.
func Parallelism(a Allocation) int {
	if a.Override > 0 {
		return a.Override
	}
	usable := a.MemoryMiB - baselineOverheadMiB
	if usable < 0 {
		usable = 0
	}
	cores := float64(a.CPUUnits) / 1024

	if a.FastMode {
		n := minInt(usable/fastMemPerScrapeMiB, int(cores*fastScrapesPerCore))
		return minInt(n, fastMaxParallel)
	}

	n := minInt(usable/renderMemPerScrapeMiB, int(cores*renderScrapesPerCore))
	if n < renderMinParallel {
		return renderMinParallel
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
