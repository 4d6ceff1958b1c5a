package interp

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/interpolation/poly"
)

// IterativePolyFit recovers the coefficients, constant term first, of the
// unique polynomial of degree len(points)-1 passing through the points.
//
// It peels off one coefficient per round: the interpolant of the remaining
// samples evaluated at zero is the next coefficient c, the head sample is
// consumed, and every remaining sample (x, y) is deflated to (x, (y-c)/x),
// the analogue of synthetic division on point values. Every abscissa past the
// first must therefore be nonzero. Cost is O(n^3); the failure modes under
// rounding differ from those of LagrangePolyFit.
func IterativePolyFit[T constraints.Float](points []Point[T]) (poly.Polynomial[T], error) {
	if err := checkPoints(points); err != nil {
		return poly.Polynomial[T]{}, err
	}

	n := len(points)
	xs, ys := abscissas(points), ordinates(points)
	for i := 1; i < n; i++ {
		if xs[i] == 0 {
			return poly.Polynomial[T]{}, fmt.Errorf("cannot deflate: sample %d has abscissa zero, only the first sample may", i)
		}
	}

	coeffs := make([]T, n)
	for k := 0; k < n; k++ {
		c := nevilleValue(xs[k:], ys[k:], 0)
		coeffs[k] = c
		for i := k + 1; i < n; i++ {
			ys[i] = (ys[i] - c) / xs[i]
		}
	}

	return poly.Polynomial[T]{Coeffs: coeffs}, nil
}

// LagrangePolyFit recovers the same coefficients as IterativePolyFit through
// the barycentric Lagrange form, in O(n^2): the monic nodal polynomial L is
// contracted by each abscissa in turn and the quotients are summed, each
// scaled by y_i / L'(x_i). L'(x_i) is the barycentric weight denominator and
// is nonzero exactly when the abscissas are pairwise distinct, which is
// validated up front.
func LagrangePolyFit[T constraints.Float](points []Point[T]) (poly.Polynomial[T], error) {
	if err := checkPoints(points); err != nil {
		return poly.Polynomial[T]{}, err
	}

	L := poly.Nodal(abscissas(points))
	terms := make([]poly.Polynomial[T], len(points))
	for i, pt := range points {
		_, phi := L.EvaluateWithDerivative(pt.X)
		terms[i] = L.Contract(pt.X).MulScalar(pt.Y / phi)
	}

	return poly.Sum(terms...), nil
}
