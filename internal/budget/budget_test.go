package budget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelism(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Allocation
		want int
	}{
		{
			name: "fast mode one core",
			a:    Allocation{MemoryMiB: 4096, CPUUnits: 1024, FastMode: true},
			want: 30, // min((4096-500)/50=71, 30, 50)
		},
		{
			name: "fast mode memory bound",
			a:    Allocation{MemoryMiB: 1000, CPUUnits: 4096, FastMode: true},
			want: 10, // min((1000-500)/50=10, 120, 50)
		},
		{
			name: "fast mode hard cap",
			a:    Allocation{MemoryMiB: 8192, CPUUnits: 4096, FastMode: true},
			want: 50,
		},
		{
			name: "render mode two cores",
			a:    Allocation{MemoryMiB: 8192, CPUUnits: 2048},
			want: 8, // min((8192-500)/300=25, 8)
		},
		{
			name: "render mode floor",
			a:    Allocation{MemoryMiB: 512, CPUUnits: 256},
			want: 3,
		},
		{
			name: "override wins",
			a:    Allocation{MemoryMiB: 512, CPUUnits: 256, Override: 12},
			want: 12,
		},
		{
			name: "tiny allocation fast mode",
			a:    Allocation{MemoryMiB: 256, CPUUnits: 1024, FastMode: true},
			want: 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Parallelism(tc.a))
		})
	}
}
