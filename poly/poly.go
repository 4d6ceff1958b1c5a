// Package poly implements dense univariate polynomials with coefficients
// stored in ascending order, along with the operations required by the
// interpolation fitters: evaluation, simultaneous derivative evaluation,
// scaling, summation and contraction by a root.
package poly

import (
	"golang.org/x/exp/constraints"
)

// Polynomial is a dense univariate polynomial.
// Coeffs[i] is the coefficient of x^i, so the constant term comes first.
type Polynomial[T constraints.Float] struct {
	Coeffs []T
}

// NewPolynomial creates a new Polynomial with coeffs[i] the coefficient of
// x^i. The input slice is copied.
func NewPolynomial[T constraints.Float](coeffs []T) Polynomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return Polynomial[T]{Coeffs: c}
}

// Degree returns the degree of the polynomial.
func (p Polynomial[T]) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns y = sum x^i * Coeffs[i].
func (p Polynomial[T]) Evaluate(x T) (y T) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return
}

// EvaluateWithDerivative returns y = P(x) and dy = P'(x), computed in a
// single Horner pass.
func (p Polynomial[T]) EvaluateWithDerivative(x T) (y, dy T) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		dy = dy*x + y
		y = y*x + p.Coeffs[i]
	}
	return
}

// MulScalar returns c * P.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	q := make([]T, len(p.Coeffs))
	for i := range p.Coeffs {
		q[i] = c * p.Coeffs[i]
	}
	return Polynomial[T]{Coeffs: q}
}

// Add returns P + Q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	r := make([]T, max(len(p.Coeffs), len(q.Coeffs)))
	for i := range p.Coeffs {
		r[i] = p.Coeffs[i]
	}
	for i := range q.Coeffs {
		r[i] += q.Coeffs[i]
	}
	return Polynomial[T]{Coeffs: r}
}

// Sum returns the sum of the input polynomials, the zero polynomial if none
// are given.
func Sum[T constraints.Float](ps ...Polynomial[T]) (s Polynomial[T]) {
	for _, p := range ps {
		s = s.Add(p)
	}
	return
}

// Contract returns the quotient of P divided by (x - root), discarding the
// remainder. The remainder is zero whenever root is a root of P, in which
// case P = (x - root) * P.Contract(root) exactly.
func (p Polynomial[T]) Contract(root T) Polynomial[T] {
	n := len(p.Coeffs)
	if n <= 1 {
		return Polynomial[T]{Coeffs: []T{}}
	}
	q := make([]T, n-1)
	q[n-2] = p.Coeffs[n-1]
	for k := n - 3; k >= 0; k-- {
		q[k] = p.Coeffs[k+1] + root*q[k+1]
	}
	return Polynomial[T]{Coeffs: q}
}

// Nodal returns the monic nodal polynomial prod_i (x - nodes[i]), of degree
// len(nodes). It is the Lagrange basis numerator shared by all the nodes.
func Nodal[T constraints.Float](nodes []T) Polynomial[T] {
	c := make([]T, len(nodes)+1)
	c[0] = 1
	for i, r := range nodes {
		for k := i + 1; k >= 1; k-- {
			c[k] = c[k-1] - r*c[k]
		}
		c[0] = -r * c[0]
	}
	return Polynomial[T]{Coeffs: c}
}
