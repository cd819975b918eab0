package validity_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bsseq/matrix"
	"github.com/katalvlaran/bsseq/validity"
)

// ExampleCheckMAndCov shows the host-facing entry point: "" means valid.
func ExampleCheckMAndCov() {
	m, _ := matrix.NewDenseRows([][]float64{
		{0, 3},
		{2, 1},
	})
	cov, _ := matrix.NewDenseRows([][]float64{
		{4, 3},
		{2, 5},
	})

	fmt.Printf("%q\n", validity.CheckMAndCov(m, cov, []int{2}))

	_ = cov.Set(1, 1, math.Inf(1))
	fmt.Println(validity.CheckMAndCov(m, cov, []int{2}))

	_ = m.Set(0, 0, matrix.NA())
	fmt.Println(validity.CheckMAndCov(m, cov, []int{2}))

	fmt.Println(validity.CheckMAndCov(m, cov, []int{0}))

	// Output:
	// ""
	// All values of 'Cov' must be finite.
	// 'M' must not contain NAs.
	// Number of threads should be a positive integer.
}
