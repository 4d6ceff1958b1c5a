package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	p := NewPolynomial([]float64{1, 0, 1}) // 1 + x^2

	require.Equal(t, 2, p.Degree())
	require.Equal(t, 10.0, p.Evaluate(3))
	require.Equal(t, 1.0, p.Evaluate(0))

	y, dy := p.EvaluateWithDerivative(3)
	require.Equal(t, 10.0, y)
	require.Equal(t, 6.0, dy)
}

func TestArithmetic(t *testing.T) {
	p := NewPolynomial([]float64{1, 2})
	q := NewPolynomial([]float64{3, 0, 4})

	require.Equal(t, []float64{4, 2, 4}, p.Add(q).Coeffs)
	require.Equal(t, []float64{4, 2, 4}, q.Add(p).Coeffs)
	require.Equal(t, []float64{2, 4}, p.MulScalar(2).Coeffs)
	require.Equal(t, []float64{7, 2, 8}, Sum(p, q, q).Coeffs)
	require.Empty(t, Sum[float64]().Coeffs)
}

func TestNodalAndContract(t *testing.T) {
	nodes := []float64{1, 2, 3}
	L := Nodal(nodes)

	// (x-1)(x-2)(x-3) = -6 + 11x - 6x^2 + x^3
	require.Equal(t, []float64{-6, 11, -6, 1}, L.Coeffs)
	for _, r := range nodes {
		require.InDelta(t, 0, L.Evaluate(r), 1e-12)
	}

	// dividing out (x-1) leaves (x-2)(x-3)
	require.Equal(t, []float64{6, -5, 1}, L.Contract(1).Coeffs)

	// contracting a constant leaves the zero polynomial
	require.Empty(t, NewPolynomial([]float64{5}).Contract(2).Coeffs)
}

func TestNewPolynomialCopies(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	p := NewPolynomial(coeffs)
	coeffs[0] = 7
	require.Equal(t, 1.0, p.Coeffs[0])
}
