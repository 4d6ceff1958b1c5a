package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/interpolation/poly"
)

func TestFitParabola(t *testing.T) {
	for name, fit := range fitters() {
		t.Run(name, func(t *testing.T) {
			p, err := fit(parabola)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff([]float64{1, 0, 1}, p.Coeffs, cmpopts.EquateApprox(0, 1e-12)))
		})
	}
}

func TestFitSinglePoint(t *testing.T) {
	for name, fit := range fitters() {
		t.Run(name, func(t *testing.T) {
			p, err := fit([]Point[float64]{{X: 3, Y: -4}})
			require.NoError(t, err)
			require.Empty(t, cmp.Diff([]float64{-4}, p.Coeffs, cmpopts.EquateApprox(0, 1e-12)))
		})
	}
}

func TestFitRecoversCoefficients(t *testing.T) {
	prng := testPRNG(t, "FitRecoversCoefficients")

	coeffs := make([]float64, 7)
	for i := range coeffs {
		coeffs[i] = prng.Float64(-1, 1)
	}
	want := poly.NewPolynomial(coeffs)

	points := make([]Point[float64], len(coeffs))
	for i, x := range ChebyshevNodes[float64](len(coeffs), -1, 1) {
		points[i] = Point[float64]{X: x, Y: want.Evaluate(x)}
	}

	for name, fit := range fitters() {
		t.Run(name, func(t *testing.T) {
			p, err := fit(points)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(coeffs, p.Coeffs, cmpopts.EquateApprox(1e-9, 1e-11)))
		})
	}
}

func TestFittersAgree(t *testing.T) {
	prng := testPRNG(t, "FittersAgree")
	points := randomPoints(t, prng, 8)

	a, err := IterativePolyFit(points)
	require.NoError(t, err)
	b, err := LagrangePolyFit(points)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a.Coeffs, b.Coeffs, cmpopts.EquateApprox(1e-8, 1e-10)))

	// both fits and the direct interpolant agree away from the samples
	for i := 0; i < 16; i++ {
		x := prng.Float64(-1, 1)
		y, err := PolyInterp(points, x)
		require.NoError(t, err)
		require.InDelta(t, y, a.Evaluate(x), 1e-9)
		require.InDelta(t, y, b.Evaluate(x), 1e-9)
	}
}

func TestDeflationZeroAbscissa(t *testing.T) {
	// a zero abscissa past the first sample ends up as a divisor
	_, err := IterativePolyFit([]Point[float64]{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 5}})
	require.ErrorContains(t, err, "abscissa zero")

	// as the first sample it is consumed before any division (see the
	// parabola fixture, whose first abscissa is zero)
	_, err = IterativePolyFit(parabola)
	require.NoError(t, err)
}

func fitters() map[string]func([]Point[float64]) (poly.Polynomial[float64], error) {
	return map[string]func([]Point[float64]) (poly.Polynomial[float64], error){
		"Iterative": IterativePolyFit[float64],
		"Lagrange":  LagrangePolyFit[float64],
	}
}
