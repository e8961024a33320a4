package FR1D

// Lagrange evaluates the nodal interpolation basis function attached
// to nodes[mode] at the point y, as the explicit product over the
// remaining nodes. The caller guarantees the nodes are distinct;
// repeated nodes divide by zero.
func Lagrange(nodes []float64, y float64, mode int) (lag float64) {
	lag = 1.
	for i, xi := range nodes {
		if i != mode {
			lag *= (y - xi) / (nodes[mode] - xi)
		}
	}
	return
}

// DLagrange evaluates the first derivative of the Lagrange basis
// function, differentiating the product form term by term.
func DLagrange(nodes []float64, y float64, mode int) (dLag float64) {
	for i := range nodes {
		if i == mode {
			continue
		}
		num, den := 1., 1.
		for j, xj := range nodes {
			if j != mode && j != i {
				num *= y - xj
			}
			if j != mode {
				den *= nodes[mode] - xj
			}
		}
		dLag += num / den
	}
	return
}

// DDLagrange evaluates the second derivative: the double sum over
// ordered pairs (i,j) of excluded nodes, each term a product over the
// remaining nodes divided by the full denominator product.
func DDLagrange(nodes []float64, y float64, mode int) (ddLag float64) {
	for i := range nodes {
		if i == mode {
			continue
		}
		for j := range nodes {
			if j == mode || j == i {
				continue
			}
			num, den := 1., 1.
			for k, xk := range nodes {
				if k == mode {
					continue
				}
				if k != i && k != j {
					num *= y - xk
				}
				den *= nodes[mode] - xk
			}
			ddLag += num / den
		}
	}
	return
}
