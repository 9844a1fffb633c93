package zeta

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// PartialZeta returns the partial sum Σ_{n=1..terms} n^(−s) with prec bits
// of precision. For s > 1 the sum converges to ζ(s); it serves as the
// high-precision anchor the density statistics are compared against.
func PartialZeta(s *big.Float, terms int, prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec)
	negS := new(big.Float).SetPrec(prec).Neg(s)

	n := new(big.Float).SetPrec(prec)
	for k := 1; k <= terms; k++ {
		n.SetInt64(int64(k))
		sum.Add(sum, bigfloat.Pow(n, negS))
	}
	return sum
}

// PartialZetaLog returns log of the partial zeta sum, used when comparing
// decay rates across s values.
func PartialZetaLog(s *big.Float, terms int, prec uint) *big.Float {
	return bigfloat.Log(PartialZeta(s, terms, prec))
}
