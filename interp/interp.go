// Package interp implements polynomial interpolation and fitting over finite
// sets of sample points with pairwise-distinct abscissas: Neville's algorithm
// and a variant of it that tracks per-level corrections, and two strategies
// recovering the explicit coefficients of the interpolating polynomial,
// iterative deflation and the barycentric Lagrange form.
//
// All functions are pure and safe to call concurrently on independent inputs.
package interp

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/interpolation/utils"
)

// Point is a sample (x, y) pair.
type Point[T constraints.Float] struct {
	X, Y T
}

// abscissas extracts the x-coordinates of points, in order.
func abscissas[T constraints.Float](points []Point[T]) (xs []T) {
	xs = make([]T, len(points))
	for i := range points {
		xs[i] = points[i].X
	}
	return
}

// checkPoints validates the shared preconditions of all the entry points:
// at least one sample, pairwise-distinct abscissas. The Neville recurrence
// divides by differences of abscissas, so a repeated value must be rejected
// up front rather than let a division produce an Inf or a NaN.
func checkPoints[T constraints.Float](points []Point[T]) error {
	if len(points) == 0 {
		return fmt.Errorf("empty sample set: interpolation requires at least one point")
	}
	if x, ok := utils.FirstDuplicate(abscissas(points)); ok {
		return fmt.Errorf("duplicate abscissa x=%v: sample x-values must be pairwise distinct", x)
	}
	return nil
}

// Neville builds the full Neville tableau of points evaluated at x.
//
// Row 0 holds the raw ordinates in input order. Entry i of row k is the value
// at x of the degree-k polynomial through points[i..i+k], obtained from the
// two overlapping degree-(k-1) interpolants of the previous row:
//
//	tableau[k][i] = ((x-xj)*tableau[k-1][i+1] + (xi-x)*tableau[k-1][i]) / (xi-xj)
//
// with xj = points[i].X and xi = points[i+k].X. The final row has a single
// entry, the value at x of the interpolant through all the points.
func Neville[T constraints.Float](points []Point[T], x T) (tableau [][]T, err error) {
	if err = checkPoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	tableau = make([][]T, n)

	row := make([]T, n)
	for i := range points {
		row[i] = points[i].Y
	}
	tableau[0] = row

	for k := 1; k < n; k++ {
		prev := tableau[k-1]
		row = make([]T, n-k)
		for i := range row {
			xj, xi := points[i].X, points[i+k].X
			row[i] = ((x-xj)*prev[i+1] + (xi-x)*prev[i]) / (xi - xj)
		}
		tableau[k] = row
	}

	return tableau, nil
}

// PolyInterp evaluates at x the unique polynomial of degree len(points)-1
// passing through all the points, without recovering its coefficients.
func PolyInterp[T constraints.Float](points []Point[T], x T) (y T, err error) {
	if err = checkPoints(points); err != nil {
		return 0, err
	}
	return nevilleValue(abscissas(points), ordinates(points), x), nil
}

// ordinates extracts the y-coordinates of points, in order.
func ordinates[T constraints.Float](points []Point[T]) (ys []T) {
	ys = make([]T, len(points))
	for i := range points {
		ys[i] = points[i].Y
	}
	return
}

// nevilleValue runs the Neville recurrence over two alternating row buffers,
// keeping only the final interpolant value. Each row depends only on the
// previous one, so the two buffers are swapped and overwritten in turn.
func nevilleValue[T constraints.Float](xs, ys []T, x T) T {
	n := len(ys)
	cur := make([]T, n)
	next := make([]T, n)
	copy(cur, ys)
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			xj, xi := xs[i], xs[i+k]
			next[i] = ((x-xj)*cur[i+1] + (xi-x)*cur[i]) / (xi - xj)
		}
		cur, next = next, cur
	}
	return cur[0]
}
