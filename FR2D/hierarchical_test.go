package FR2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestHierarchicalLowModes(t *testing.T) {
	const tol = 1e-13
	// mode 0 is the constant mode
	for _, p := range [][2]float64{{-0.9, 0.4}, {0.1, -0.2}, {0.7, 0.7}} {
		assert.InDelta(t, 1., Legendre2DHierarchical(0, p[0], p[1], 3), tol)
	}
	// order 1: modes are (0,0),(1,0),(0,1),(1,1)
	x, y := 0.5, -0.25
	assert.InDelta(t, x, Legendre2DHierarchical(1, x, y, 1), tol)
	assert.InDelta(t, y, Legendre2DHierarchical(2, x, y, 1), tol)
	assert.InDelta(t, x*y, Legendre2DHierarchical(3, x, y, 1), tol)
}

func TestHierarchicalOrthogonality(t *testing.T) {
	const (
		NQ  = 10
		tol = 1e-11
	)
	x, w := make([]float64, NQ), make([]float64, NQ)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	const order = 3
	modes := QuadModes(order)
	nDOF := len(modes)
	for m := 0; m < nDOF; m++ {
		for n := 0; n < nDOF; n++ {
			var s float64
			for ix := 0; ix < NQ; ix++ {
				for iy := 0; iy < NQ; iy++ {
					s += w[ix] * w[iy] *
						Legendre2DHierarchical(m, x[ix], x[iy], order) *
						Legendre2DHierarchical(n, x[ix], x[iy], order)
				}
			}
			if m != n {
				assert.InDeltaf(t, 0., s, tol, "<phi_%d,phi_%d>", m, n)
			} else {
				fi, fj := float64(modes[m].I), float64(modes[m].J)
				want := 2. / (2*fi + 1) * 2. / (2*fj + 1)
				assert.InDeltaf(t, want, s, tol, "norm of phi_%d", m)
			}
		}
	}
}

func TestHierarchicalInvalidModePanics(t *testing.T) {
	assert.Panics(t, func() { Legendre2DHierarchical(4, 0, 0, 1) })
	assert.Panics(t, func() { Legendre2DHierarchical(-1, 0, 0, 1) })
}

func TestExponentialFilter(t *testing.T) {
	const tol = 1e-13
	// the constant mode is never damped
	for _, order := range []int{1, 3, 5} {
		assert.InDelta(t, 1., ExponentialFilter(0, order, 4), tol)
	}
	// order 1, mode 3 has i+j=2 of nDOF=4
	want := math.Exp(-math.Pow(0.5, 2))
	assert.InDelta(t, want, ExponentialFilter(3, 1, 2), tol)
	// damping is monotone in total degree
	modes := QuadModes(3)
	prevLayer, prevSigma := 0, 1.
	for mode, m := range modes {
		sigma := ExponentialFilter(mode, 3, 4)
		if m.I+m.J > prevLayer {
			assert.Lessf(t, sigma, prevSigma, "mode %d layer %d", mode, m.I+m.J)
			prevLayer, prevSigma = m.I+m.J, sigma
		}
	}
	assert.Panics(t, func() { ExponentialFilter(16, 3, 4) })
}
