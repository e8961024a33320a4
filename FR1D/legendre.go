package FR1D

import (
	"github.com/notargets/frbasis/utils"
)

// Legendre evaluates the Legendre polynomial P_n at r in [-1,1] with
// the standard three-term recurrence, carried iteratively in two
// rolling registers. Negative n returns 0; the VCJH correction
// functions rely on that sentinel to drop their degenerate order-1
// term at order 0.
func Legendre(r float64, n int) float64 {
	if n < 0 {
		return 0.
	}
	if n == 0 {
		return 1.
	}
	var (
		pm1 = 1. // P_0
		p   = r  // P_1
	)
	for m := 2; m <= n; m++ {
		pm1, p = p, (float64(2*m-1)*r*p-float64(m-1)*pm1)/float64(m)
	}
	return p
}

// DLegendre evaluates dP_n/dr. The interior identity
// n*(r*P_n - P_{n-1})/(r^2-1) is 0/0 at the endpoints, where the
// exact closed forms (-1)^(n-1)*n(n+1)/2 and n(n+1)/2 apply instead.
func DLegendre(r float64, n int) (dLeg float64) {
	if n <= 0 {
		return 0.
	}
	fn := float64(n)
	switch {
	case r == -1:
		dLeg = utils.POW(-1, n-1) * 0.5 * fn * (fn + 1.)
	case r == 1:
		dLeg = 0.5 * fn * (fn + 1.)
	default:
		dLeg = fn * (r*Legendre(r, n) - Legendre(r, n-1)) / (r*r - 1.)
	}
	return
}
