package bignum

import (
	"fmt"
	"math/big"
)

// Point is a sample (x, y) pair.
type Point struct {
	X, Y *big.Float
}

// checkPoints validates the shared preconditions of all the entry points:
// at least one sample, pairwise-distinct abscissas. big.Float values are not
// comparable map keys, so the scan is quadratic; sample sets are small.
func checkPoints(points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("empty sample set: interpolation requires at least one point")
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Cmp(points[j].X) == 0 {
				return fmt.Errorf("duplicate abscissa x=%v: sample x-values must be pairwise distinct", points[i].X)
			}
		}
	}
	return nil
}

// Neville builds the full Neville tableau of points evaluated at x, with the
// same shape and recurrence as the float variant: row 0 holds the ordinates,
// entry i of row k interpolates points[i..i+k] at x, and the final row's
// single entry is the interpolated value. The precision of x is used as the
// reference precision.
func Neville(points []Point, x *big.Float) (tableau [][]*big.Float, err error) {
	if err = checkPoints(points); err != nil {
		return nil, err
	}

	prec := x.Prec()
	n := len(points)
	tableau = make([][]*big.Float, n)

	row := make([]*big.Float, n)
	for i := range points {
		row[i] = new(big.Float).SetPrec(prec).Set(points[i].Y)
	}
	tableau[0] = row

	num := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)
	for k := 1; k < n; k++ {
		prev := tableau[k-1]
		row = make([]*big.Float, n-k)
		for i := range row {
			xj, xi := points[i].X, points[i+k].X

			// ((x-xj)*prev[i+1] + (xi-x)*prev[i]) / (xi-xj)
			e := new(big.Float).SetPrec(prec).Sub(x, xj)
			e.Mul(e, prev[i+1])
			num.Sub(xi, x)
			num.Mul(num, prev[i])
			e.Add(e, num)
			den.Sub(xi, xj)
			row[i] = e.Quo(e, den)
		}
		tableau[k] = row
	}

	return tableau, nil
}

// PolyInterp evaluates at x the unique polynomial of degree len(points)-1
// passing through all the points, without recovering its coefficients.
func PolyInterp(points []Point, x *big.Float) (y *big.Float, err error) {
	tableau, err := Neville(points, x)
	if err != nil {
		return nil, err
	}
	return tableau[len(tableau)-1][0], nil
}

// Diff is one cell of the difference tableau built by NevilleDiffs, holding
// the two corrections relative to the previous row. See the float variant
// for the path-reconstruction rules.
type Diff struct {
	C, D *big.Float
}

// NevilleDiffs builds the difference tableau of points evaluated at x: row 0
// holds (y, y) per sample and each later cell stores the corrections to the
// previous row's two parent cells instead of the absolute interpolant value.
// The precision of x is used as the reference precision.
func NevilleDiffs(points []Point, x *big.Float) (tableau [][]Diff, err error) {
	if err = checkPoints(points); err != nil {
		return nil, err
	}

	prec := x.Prec()
	n := len(points)
	tableau = make([][]Diff, n)

	row := make([]Diff, n)
	for i := range points {
		row[i] = Diff{
			C: new(big.Float).SetPrec(prec).Set(points[i].Y),
			D: new(big.Float).SetPrec(prec).Set(points[i].Y),
		}
	}
	tableau[0] = row

	t := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)
	for k := 1; k < n; k++ {
		prev := tableau[k-1]
		row = make([]Diff, n-k)
		for i := range row {
			xj, xi := points[i].X, points[i+k].X

			// t = (prev[i+1].C - prev[i].D) / (xj - xi)
			t.Sub(prev[i+1].C, prev[i].D)
			den.Sub(xj, xi)
			t.Quo(t, den)

			c := new(big.Float).SetPrec(prec).Sub(xj, x)
			c.Mul(c, t)
			d := new(big.Float).SetPrec(prec).Sub(xi, x)
			d.Mul(d, t)
			row[i] = Diff{C: c, D: d}
		}
		tableau[k] = row
	}

	return tableau, nil
}

// IterativePolyFit recovers the coefficients, constant term first, of the
// unique polynomial of degree len(points)-1 through the points, by repeated
// deflation as in the float variant. Every abscissa past the first must be
// nonzero. The precision of the first abscissa is used as the reference
// precision.
func IterativePolyFit(points []Point) (Polynomial, error) {
	if err := checkPoints(points); err != nil {
		return Polynomial{}, err
	}

	n := len(points)
	prec := points[0].X.Prec()
	for i := 1; i < n; i++ {
		if points[i].X.Sign() == 0 {
			return Polynomial{}, fmt.Errorf("cannot deflate: sample %d has abscissa zero, only the first sample may", i)
		}
	}

	remaining := make([]Point, n)
	for i, pt := range points {
		remaining[i] = Point{X: pt.X, Y: new(big.Float).SetPrec(prec).Set(pt.Y)}
	}

	zero := new(big.Float).SetPrec(prec)
	coeffs := make([]*big.Float, n)
	for k := 0; k < n; k++ {
		c, err := PolyInterp(remaining[k:], zero)
		if err != nil {
			return Polynomial{}, err
		}
		coeffs[k] = c
		for i := k + 1; i < n; i++ {
			y := remaining[i].Y
			y.Sub(y, c)
			y.Quo(y, remaining[i].X)
		}
	}

	return Polynomial{Coeffs: coeffs}, nil
}

// LagrangePolyFit recovers the same coefficients as IterativePolyFit through
// the barycentric Lagrange form: the monic nodal polynomial L is contracted
// by each abscissa and the quotients are summed, each scaled by y_i/L'(x_i).
func LagrangePolyFit(points []Point) (Polynomial, error) {
	if err := checkPoints(points); err != nil {
		return Polynomial{}, err
	}

	nodes := make([]*big.Float, len(points))
	for i := range points {
		nodes[i] = points[i].X
	}
	L := Nodal(nodes)

	f := new(big.Float)
	terms := make([]Polynomial, len(points))
	for i, pt := range points {
		_, phi := L.EvaluateWithDerivative(pt.X)
		f.SetPrec(pt.X.Prec()).Quo(pt.Y, phi)
		terms[i] = L.Contract(pt.X).MulScalar(f)
	}

	return Sum(terms...), nil
}
