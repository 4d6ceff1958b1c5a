package bignum

import (
	"math/big"
)

// Polynomial is a dense univariate polynomial over big.Float coefficients.
// Coeffs[i] is the coefficient of x^i, so the constant term comes first.
type Polynomial struct {
	Coeffs []*big.Float
}

// NewPolynomial creates a new Polynomial with coeffs[i] the coefficient of
// x^i. The coefficient values are copied.
func NewPolynomial(coeffs []*big.Float) Polynomial {
	c := make([]*big.Float, len(coeffs))
	for i := range coeffs {
		c[i] = new(big.Float).Set(coeffs[i])
	}
	return Polynomial{Coeffs: c}
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns y = sum x^i * Coeffs[i].
// The precision of x is used as the reference precision for y.
func (p Polynomial) Evaluate(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	y = new(big.Float).SetPrec(prec)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
	}
	return
}

// EvaluateWithDerivative returns y = P(x) and dy = P'(x), computed in a
// single Horner pass. The precision of x is used as the reference precision.
func (p Polynomial) EvaluateWithDerivative(x *big.Float) (y, dy *big.Float) {
	prec := x.Prec()
	y = new(big.Float).SetPrec(prec)
	dy = new(big.Float).SetPrec(prec)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		dy.Mul(dy, x)
		dy.Add(dy, y)
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
	}
	return
}

// MulScalar returns c * P.
func (p Polynomial) MulScalar(c *big.Float) Polynomial {
	q := make([]*big.Float, len(p.Coeffs))
	for i := range p.Coeffs {
		q[i] = new(big.Float).Mul(c, p.Coeffs[i])
	}
	return Polynomial{Coeffs: q}
}

// Add returns P + Q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	r := make([]*big.Float, n)
	for i := range r {
		r[i] = new(big.Float)
		switch {
		case i < len(p.Coeffs) && i < len(q.Coeffs):
			r[i].Add(p.Coeffs[i], q.Coeffs[i])
		case i < len(p.Coeffs):
			r[i].Set(p.Coeffs[i])
		default:
			r[i].Set(q.Coeffs[i])
		}
	}
	return Polynomial{Coeffs: r}
}

// Sum returns the sum of the input polynomials, the zero polynomial if none
// are given.
func Sum(ps ...Polynomial) (s Polynomial) {
	for _, p := range ps {
		s = s.Add(p)
	}
	return
}

// Contract returns the quotient of P divided by (x - root), discarding the
// remainder. The remainder is zero whenever root is a root of P.
func (p Polynomial) Contract(root *big.Float) Polynomial {
	n := len(p.Coeffs)
	if n <= 1 {
		return Polynomial{Coeffs: []*big.Float{}}
	}
	q := make([]*big.Float, n-1)
	q[n-2] = new(big.Float).Set(p.Coeffs[n-1])
	for k := n - 3; k >= 0; k-- {
		q[k] = new(big.Float).Mul(root, q[k+1])
		q[k].Add(q[k], p.Coeffs[k+1])
	}
	return Polynomial{Coeffs: q}
}

// Nodal returns the monic nodal polynomial prod_i (x - nodes[i]), of degree
// len(nodes).
func Nodal(nodes []*big.Float) Polynomial {
	prec := uint(53)
	if len(nodes) > 0 {
		prec = nodes[0].Prec()
	}
	c := make([]*big.Float, len(nodes)+1)
	for i := range c {
		c[i] = new(big.Float).SetPrec(prec)
	}
	c[0].SetInt64(1)
	tmp := new(big.Float).SetPrec(prec)
	for i, r := range nodes {
		for k := i + 1; k >= 1; k-- {
			tmp.Mul(r, c[k])
			c[k].Sub(c[k-1], tmp)
		}
		tmp.Mul(r, c[0])
		c[0].Neg(tmp)
	}
	return Polynomial{Coeffs: c}
}
