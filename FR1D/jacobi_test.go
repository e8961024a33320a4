package FR1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/frbasis/utils"
)

// gaussLegendre returns n Gauss-Legendre points and weights on [-1,1].
func gaussLegendre(n int) (x, w []float64) {
	x, w = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	return
}

func TestJacobiOrthonormality(t *testing.T) {
	const (
		NQ  = 16
		tol = 1e-11
	)
	x, w := gaussLegendre(NQ)
	X := utils.NewVector(NQ, x)
	for _, ab := range [][2]float64{{0, 0}, {1, 0}, {3, 0}, {2, 1}} {
		alpha, beta := ab[0], ab[1]
		for m := 0; m <= 4; m++ {
			for n := 0; n <= 4; n++ {
				pm := JacobiP(X, alpha, beta, m)
				pn := JacobiP(X, alpha, beta, n)
				var s float64
				for q := 0; q < NQ; q++ {
					wgt := utils.POW(1-x[q], int(alpha)) * utils.POW(1+x[q], int(beta))
					s += w[q] * wgt * pm[q] * pn[q]
				}
				want := 0.
				if m == n {
					want = 1.
				}
				assert.InDeltaf(t, want, s, tol,
					"<P_%d,P_%d> with alpha=%g beta=%g = %g", m, n, alpha, beta, s)
			}
		}
	}
}

func TestGradJacobiPMatchesFiniteDifference(t *testing.T) {
	const (
		h   = 1e-5
		tol = 1e-7
	)
	for _, ab := range [][2]float64{{0, 0}, {1, 0}, {3, 0}} {
		alpha, beta := ab[0], ab[1]
		for n := 0; n <= 5; n++ {
			for _, r := range []float64{-0.7, -0.2, 0.4, 0.8} {
				fd := (JacobiPSingle(r+h, alpha, beta, n) - JacobiPSingle(r-h, alpha, beta, n)) / (2 * h)
				got := GradJacobiPSingle(r, alpha, beta, n)
				assert.InDeltaf(t, fd, got, tol,
					"dP_%d^(%g,%g)(%g): analytic %g vs FD %g", n, alpha, beta, r, got, fd)
			}
		}
	}
}

func TestVandermonde1DColumnsAreModes(t *testing.T) {
	const (
		N   = 4
		tol = 1e-13
	)
	r := []float64{-1, -0.5, 0, 0.5, 1}
	R := utils.NewVector(len(r), r)
	V := Vandermonde1D(N, R)
	nr, nc := V.Dims()
	assert.Equal(t, len(r), nr)
	assert.Equal(t, N+1, nc)
	for j := 0; j <= N; j++ {
		for i, ri := range r {
			assert.InDelta(t, JacobiPSingle(ri, 0, 0, j), V.At(i, j), tol)
		}
	}
	Vr := GradVandermonde1D(R, N)
	for j := 0; j <= N; j++ {
		for i, ri := range r {
			assert.InDelta(t, GradJacobiPSingle(ri, 0, 0, j), Vr.At(i, j), tol)
		}
	}
}
