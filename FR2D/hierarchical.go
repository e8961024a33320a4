package FR2D

import (
	"fmt"

	"github.com/notargets/frbasis/FR1D"
)

// Legendre2DHierarchical evaluates the tensor-product hierarchical
// modal basis for quad elements: Legendre(x,i)*Legendre(y,j) under
// the QuadModes ordering. No collapsed coordinates are involved.
func Legendre2DHierarchical(mode int, x, y float64, order int) float64 {
	nDOF := (order + 1) * (order + 1)
	if mode < 0 || mode >= nDOF {
		panic(fmt.Errorf("invalid mode %d evaluating hierarchical Legendre basis: order %d has %d modes", mode, order, nDOF))
	}
	m := QuadModes(order)[mode]
	return FR1D.Legendre(x, m.I) * FR1D.Legendre(y, m.J)
}
