// SPDX-License-Identifier: MIT

package matrix

import "math"

// naBits is the IEEE-754 pattern of R's NA_real_: a NaN whose low 32-bit word is 1954.
const (
	naBits    uint64 = 0x7FF00000000007A2
	naLowWord uint32 = 1954
)

// NA returns the missing-value marker for float64 cells.
// It is a NaN, so math.IsNaN(NA()) is true; use IsNA to tell it apart from
// an ordinary NaN produced by arithmetic.
func NA() float64 { return math.Float64frombits(naBits) }

// IsNA reports whether x carries the missing-value marker.
// Only the low word is compared, so a quieted NA (high mantissa bit set by
// hardware) is still recognised.
func IsNA(x float64) bool {
	if !math.IsNaN(x) {
		return false
	}

	return uint32(math.Float64bits(x)) == naLowWord
}
