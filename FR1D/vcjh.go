package FR1D

import (
	"fmt"
	"math"

	"github.com/notargets/frbasis/utils"
)

// VCJHScheme selects a member of the VCJH correction-function family.
// The closed enum keeps invalid scheme values out of ComputeEta by
// construction.
type VCJHScheme uint8

const (
	DG VCJHScheme = iota
	SD
	HU
	CPlus
)

func (s VCJHScheme) String() string {
	switch s {
	case DG:
		return "DG"
	case SD:
		return "SD"
	case HU:
		return "HU"
	case CPlus:
		return "CPlus"
	}
	return fmt.Sprintf("VCJHScheme(%d)", uint8(s))
}

var SchemeNameMap = map[string]VCJHScheme{
	"dg":    DG,
	"sd":    SD,
	"hu":    HU,
	"cplus": CPlus,
	"c+":    CPlus,
}

// Tabulated 1D c constants for the C+ (optimized) scheme, from the
// Vincent/Castonguay/Jameson/Hu families; only orders 2..5 have
// published values.
var cPlus1D = map[int]float64{
	2: 0.206,
	3: 3.80e-3,
	4: 4.67e-5,
	5: 4.28e-7,
}

// ComputeEta maps (scheme, order) to the VCJH blending parameter eta.
// DG is the only scheme defined at order 0, and C+ exists only for
// orders 2 through 5.
func ComputeEta(scheme VCJHScheme, order int) (eta float64, err error) {
	if order == 0 && scheme != DG {
		err = fmt.Errorf("P=0 is only compatible with the DG scheme, have %v", scheme)
		return
	}
	switch scheme {
	case DG:
		eta = 0.
	case SD:
		eta = float64(order) / float64(order+1)
	case HU:
		eta = float64(order+1) / float64(order)
	case CPlus:
		c, ok := cPlus1D[order]
		if !ok {
			err = fmt.Errorf("C+ scheme not implemented for order %d", order)
			return
		}
		// a_P is the leading Legendre coefficient (2P)!/(2^P (P!)^2)
		aP := utils.Factorial(2*order) / (math.Pow(2, float64(order)) * utils.Factorial(order) * utils.Factorial(order))
		fac := utils.Factorial(order) * aP
		eta = c * float64(2*order+1) / 2. * fac * fac
	default:
		err = fmt.Errorf("invalid VCJH scheme %v", scheme)
	}
	return
}

// MustComputeEta panics on unsupported (scheme, order) combinations;
// an invalid pairing is a configuration defect, not a runtime
// condition to recover from.
func MustComputeEta(scheme VCJHScheme, order int) float64 {
	eta, err := ComputeEta(scheme, order)
	if err != nil {
		panic(err)
	}
	return eta
}

// VCJH1D evaluates the left (side 0) or right (side 1) correction
// function at xi: a blend of Legendre polynomials of degree order-1,
// order and order+1 controlled by eta. At eta=0 the two sides reduce
// to the right and left Radau polynomials, recovering DG exactly. At
// order 0 the Legendre degree -1 sentinel drops the eta term.
func VCJH1D(xi float64, side, order int, eta float64) (g float64) {
	corr := (eta*Legendre(xi, order-1) + Legendre(xi, order+1)) / (1. + eta)
	switch side {
	case 0:
		g = 0.5 * utils.POW(-1, order) * (Legendre(xi, order) - corr)
	case 1:
		g = 0.5 * (Legendre(xi, order) + corr)
	default:
		panic(fmt.Errorf("invalid correction function side %d, must be 0 (left) or 1 (right)", side))
	}
	return
}

// DVCJH1D evaluates the derivative of the correction function, built
// from DLegendre with the same blend. Order 0 drops the degenerate
// order-1 term explicitly.
func DVCJH1D(xi float64, side, order int, eta float64) (dg float64) {
	var dCorr float64
	if order == 0 {
		dCorr = DLegendre(xi, order+1) / (1. + eta)
	} else {
		dCorr = (eta*DLegendre(xi, order-1) + DLegendre(xi, order+1)) / (1. + eta)
	}
	switch side {
	case 0:
		dg = 0.5 * utils.POW(-1, order) * (DLegendre(xi, order) - dCorr)
	case 1:
		dg = 0.5 * (DLegendre(xi, order) + dCorr)
	default:
		panic(fmt.Errorf("invalid correction function side %d, must be 0 (left) or 1 (right)", side))
	}
	return
}
