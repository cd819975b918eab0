// SPDX-License-Identifier: MIT

package validity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPartitionCoverage checks full coverage, no overlap and the block bound
// for a grid of shapes and worker counts.
func TestPartitionCoverage(t *testing.T) {
	t.Parallel()

	for ncol := 0; ncol <= 23; ncol++ {
		for workers := 1; workers <= 25; workers++ {
			blocks := partition(ncol, workers)
			require.LessOrEqual(t, len(blocks), workers, "ncol=%d workers=%d", ncol, workers)

			next := 0
			for _, b := range blocks {
				require.Equal(t, next, b.start, "ncol=%d workers=%d", ncol, workers)
				require.Positive(t, b.length, "ncol=%d workers=%d", ncol, workers)
				next = b.start + b.length
			}
			require.Equal(t, ncol, next, "ncol=%d workers=%d", ncol, workers)
		}
	}
}

// TestPartitionShape pins the block sizes so reported failures stay reproducible.
func TestPartitionShape(t *testing.T) {
	t.Parallel()

	require.Equal(t, []block{{0, 4}, {4, 4}, {8, 2}}, partition(10, 3))
	require.Equal(t, []block{{0, 1}, {1, 1}}, partition(2, 8))
	require.Equal(t, []block{{0, 5}}, partition(5, 1))
	require.Nil(t, partition(0, 4))
	require.Nil(t, partition(4, 0))
	require.Equal(t, partition(17, 4), partition(17, 4))

	// huge worker counts must not overflow the block size
	require.Equal(t, []block{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}, partition(5, math.MaxInt))
	require.Equal(t, []block{{0, math.MaxInt}}, partition(math.MaxInt, 1))
	half := math.MaxInt/2 + 1
	require.Equal(t, []block{{0, half}, {half, math.MaxInt - half}}, partition(math.MaxInt, 2))
}
