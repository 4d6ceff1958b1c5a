package interp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ChebyshevNodes returns n Chebyshev nodes of the interval [a, b], in
// increasing order. Sampling a function at these nodes instead of
// equidistant ones keeps the interpolation problem well conditioned as n
// grows (it suppresses the Runge phenomenon), which makes them the natural
// companions of the fitters of this package.
func ChebyshevNodes[T constraints.Float](n int, a, b T) (nodes []T) {
	nodes = make([]T, n)

	x := 0.5 * (float64(a) + float64(b))
	y := 0.5 * (float64(b) - float64(a))

	for k := 1; k < n+1; k++ {
		u := math.Cos((float64(k) - 0.5) * math.Pi / float64(n))
		nodes[n-k] = T(x + y*u)
	}

	return
}
