package quadprop

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Identity returns an identity matrix of the provided size.
func Identity(n int) *mat64.Dense {
	vals := make([]float64, n*n)
	for j := 0; j < n*n; j++ {
		if j%(n+1) == 0 {
			vals[j] = 1
		}
	}
	return mat64.NewDense(n, n, vals)
}

// IsNil returns whether the provided matrix only has zero values.
func IsNil(m mat64.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// checkVecDim checks that the vector has the expected number of rows.
// Returns an error if not.
func checkVecDim(v *mat64.Vector, rows int, name string) error {
	if v == nil {
		return fmt.Errorf("dimensions must agree: %s is nil, need (%dx1)", name, rows)
	}
	if r, _ := v.Dims(); r != rows {
		return fmt.Errorf("dimensions must agree: %s(%dx1) need (%dx1)", name, r, rows)
	}
	return nil
}
