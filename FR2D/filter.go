package FR2D

import (
	"fmt"
	"math"
)

// ExponentialFilter returns the modal damping weight
// sigma = exp(-eta^exponent), eta = (i+j)/nDOF, applied to the
// hierarchical quad modes for stabilization. It shares the QuadModes
// ordering with Legendre2DHierarchical so a filter coefficient always
// lands on the mode it was computed for.
func ExponentialFilter(mode, order int, exponent float64) float64 {
	nDOF := (order + 1) * (order + 1)
	if mode < 0 || mode >= nDOF {
		panic(fmt.Errorf("invalid mode %d evaluating exponential filter: order %d has %d modes", mode, order, nDOF))
	}
	m := QuadModes(order)[mode]
	eta := float64(m.I+m.J) / float64(nDOF)
	return math.Exp(-math.Pow(eta, exponent))
}
