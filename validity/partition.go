// SPDX-License-Identifier: MIT

package validity

// block is a contiguous run of columns [start, start+length) owned by one worker.
type block struct {
	start, length int
}

// partition splits [0, ncol) into at most workers blocks of ceil(ncol/workers)
// columns; the last block may be shorter. Workers past the last non-empty
// block receive nothing, so len(result) <= workers and result[i] belongs to
// worker i.
//
// Deterministic: depends only on (ncol, workers).
// Complexity: O(min(workers, ncol)).
func partition(ncol, workers int) []block {
	if ncol <= 0 || workers <= 0 {
		return nil
	}
	per := 1 + (ncol-1)/workers // ceil without overflowing for workers near MaxInt
	blocks := make([]block, 0, min(workers, ncol))
	for start := 0; start < ncol; {
		length := min(per, ncol-start)
		blocks = append(blocks, block{start: start, length: length})
		start += length // never exceeds ncol, so it cannot wrap
	}

	return blocks
}
