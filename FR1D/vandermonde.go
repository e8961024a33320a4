package FR1D

import (
	"github.com/notargets/frbasis/utils"
)

// Vandermonde1D tabulates the orthonormal modal basis at the points R,
// one column per mode. Consumers invert it against a nodal set to
// build interpolation and projection operators; the matrix itself is
// not retained here.
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

func GradVandermonde1D(R utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for i := 0; i < N+1; i++ {
		Vr.SetCol(i, GradJacobiP(R, 0, 0, i))
	}
	return
}
