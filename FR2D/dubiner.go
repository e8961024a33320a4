package FR2D

import (
	"fmt"
	"math"

	"github.com/notargets/frbasis/FR1D"
	"github.com/notargets/frbasis/utils"
)

// ModeIJ is one member of a 2D modal basis, identified by its 1D
// component degrees.
type ModeIJ struct {
	I, J int
}

// TriModes enumerates the simplex modal set for a given order: total
// degree layers k = i+j ascending, j running 0..k within a layer
// (i = k-j). The running position in this traversal is the mode index
// contract shared by the Dubiner basis, its partials, the hierarchical
// quad basis and the exponential filter; mass and stiffness assembly
// depend on it, so it lives in exactly one place.
func TriModes(order int) (modes []ModeIJ) {
	modes = make([]ModeIJ, 0, (order+1)*(order+2)/2)
	for k := 0; k <= order; k++ {
		for j := 0; j <= k; j++ {
			modes = append(modes, ModeIJ{I: k - j, J: j})
		}
	}
	return
}

// QuadModes enumerates the full (order+1)^2 tensor set under the same
// layer traversal, keeping pairs with both degrees <= order. Layers
// run to 2*order, the maximum of i+j on the tensor set.
func QuadModes(order int) (modes []ModeIJ) {
	modes = make([]ModeIJ, 0, (order+1)*(order+1))
	for k := 0; k <= 2*order; k++ {
		for j := 0; j <= k; j++ {
			i := k - j
			if i <= order && j <= order {
				modes = append(modes, ModeIJ{I: i, J: j})
			}
		}
	}
	return
}

// rsToAB is the collapsed coordinate (Duffy) transform from the
// reference triangle to the unit square: b = s and
// a = 2(1+r)/(1-s) - 1, with a pinned to -1 at the collapsed s = 1
// vertex where the ratio is 0/0.
func rsToAB(r, s float64) (a, b float64) {
	if s != 1 {
		a = 2*(1+r)/(1-s) - 1
	} else {
		a = -1
	}
	b = s
	return
}

// RStoAB applies the collapsed coordinate transform to a point set.
func RStoAB(R, S utils.Vector) (A, B utils.Vector) {
	var (
		Np     = R.Len()
		rd, sd = R.DataP, S.DataP
	)
	ad, bd := make([]float64, Np), make([]float64, Np)
	for n, sval := range sd {
		ad[n], bd[n] = rsToAB(rd[n], sval)
	}
	A, B = utils.NewVector(Np, ad), utils.NewVector(Np, bd)
	return
}

func checkTriMode(mode, order int, what string) {
	nDOF := (order + 1) * (order + 2) / 2
	if mode < 0 || mode >= nDOF {
		panic(fmt.Errorf("invalid mode %d evaluating %s: order %d has %d modes", mode, what, order, nDOF))
	}
}

// DubinerBasis2D evaluates one member of the orthonormal simplex
// modal basis at the reference triangle point (r,s):
// sqrt(2) * P_i(a) * P_j^(2i+1,0)(b) * (1-b)^i in collapsed
// coordinates, under the TriModes ordering.
func DubinerBasis2D(r, s float64, mode, order int) float64 {
	checkTriMode(mode, order, "Dubiner basis")
	var (
		m    = TriModes(order)[mode]
		a, b = rsToAB(r, s)
	)
	j0 := FR1D.JacobiPSingle(a, 0, 0, m.I)
	j1 := FR1D.JacobiPSingle(b, float64(2*m.I+1), 0, m.J)
	return math.Sqrt2 * j0 * j1 * utils.POW(1-b, m.I)
}

// DrDubinerBasis2D evaluates the partial of the Dubiner basis with
// respect to r. The a-degree 0 modes are constant along r, which also
// removes the (1-b)^(i-1) factor before it can blow up on the
// collapsed edge.
func DrDubinerBasis2D(r, s float64, mode, order int) float64 {
	checkTriMode(mode, order, "Dubiner basis r-derivative")
	var (
		m    = TriModes(order)[mode]
		a, b = rsToAB(r, s)
	)
	if m.I == 0 {
		return 0.
	}
	dj0 := FR1D.GradJacobiPSingle(a, 0, 0, m.I)
	j1 := FR1D.JacobiPSingle(b, float64(2*m.I+1), 0, m.J)
	return 2 * math.Sqrt2 * dj0 * j1 * utils.POW(1-b, m.I-1)
}

// DsDubinerBasis2D evaluates the partial with respect to s, chaining
// through the Duffy map: da/ds = (1+a)/(1-b) plus the direct b
// dependence of both the P_j factor and the (1-b)^i weight. The i=0
// branch drops the terms that vanish with the weight.
func DsDubinerBasis2D(r, s float64, mode, order int) float64 {
	checkTriMode(mode, order, "Dubiner basis s-derivative")
	var (
		m    = TriModes(order)[mode]
		a, b = rsToAB(r, s)
	)
	j0 := FR1D.JacobiPSingle(a, 0, 0, m.I)
	dj1 := FR1D.GradJacobiPSingle(b, float64(2*m.I+1), 0, m.J)
	if m.I == 0 {
		return math.Sqrt2 * j0 * dj1
	}
	dj0 := FR1D.GradJacobiPSingle(a, 0, 0, m.I)
	j1 := FR1D.JacobiPSingle(b, float64(2*m.I+1), 0, m.J)
	aTerm := dj0 * j1 * utils.POW(1-b, m.I-1) * (1 + a)
	bTerm := j0 * (dj1*utils.POW(1-b, m.I) - float64(m.I)*j1*utils.POW(1-b, m.I-1))
	return math.Sqrt2 * (aTerm + bTerm)
}

// Vandermonde2D tabulates the Dubiner basis at the points (R,S), one
// column per mode in TriModes order.
func Vandermonde2D(N int, R, S utils.Vector) (V2D utils.Matrix) {
	var (
		Np = (N + 1) * (N + 2) / 2
		Nr = R.Len()
	)
	V2D = utils.NewMatrix(Nr, Np)
	col := make([]float64, Nr)
	for mode := 0; mode < Np; mode++ {
		for n := 0; n < Nr; n++ {
			col[n] = DubinerBasis2D(R.AtVec(n), S.AtVec(n), mode, N)
		}
		V2D.SetCol(mode, col)
	}
	return
}

// GradVandermonde2D tabulates both partials of the Dubiner basis at
// the points (R,S) under the same mode ordering.
func GradVandermonde2D(N int, R, S utils.Vector) (V2Dr, V2Ds utils.Matrix) {
	var (
		Np = (N + 1) * (N + 2) / 2
		Nr = R.Len()
	)
	V2Dr, V2Ds = utils.NewMatrix(Nr, Np), utils.NewMatrix(Nr, Np)
	colR, colS := make([]float64, Nr), make([]float64, Nr)
	for mode := 0; mode < Np; mode++ {
		for n := 0; n < Nr; n++ {
			colR[n] = DrDubinerBasis2D(R.AtVec(n), S.AtVec(n), mode, N)
			colS[n] = DsDubinerBasis2D(R.AtVec(n), S.AtVec(n), mode, N)
		}
		V2Dr.SetCol(mode, colR)
		V2Ds.SetCol(mode, colS)
	}
	return
}
