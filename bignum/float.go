// Package bignum mirrors the interp entry points at arbitrary precision over
// *big.Float values, for callers whose conditioning exceeds what float64
// arithmetic can absorb.
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float from x with prec bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Log returns ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
