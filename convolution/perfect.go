package convolution

import (
	"math/big"

	"github.com/miosync-masa/bct/binary"
	"github.com/miosync-masa/bct/factorization"
)

// IsBCTPerfect reports whether every non-trivial factorization n = a × b
// with 1 < a ≤ b < n satisfies H(a, b) = 1, i.e. whether all factor pairs
// of n are binary orthogonal.
//
// Integers with no non-trivial factor pair (1 and the primes) are treated
// as vacuously BCT-perfect. The claims over odd composites are unaffected
// by this convention since their sweeps filter composites first.
func IsBCTPerfect(n *big.Int) (bool, error) {
	pairs, err := factorization.FactorPairs(n, false)
	if err != nil {
		return false, err
	}
	for _, p := range pairs {
		ok, err := IsOrthogonal(p.A, p.B)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// FactorAnalysis records the invariants of one factor pair of an integer.
type FactorAnalysis struct {
	N, A, B    *big.Int
	BitsA      string // MSB-first display form of A
	BitsB      string // MSB-first display form of B
	Vector     Vector
	Invariants Invariants
	Orthogonal bool
}

// AnalyzeFactorizations computes the convolution invariants of every factor
// pair of n, including the trivial pair (1, n).
func AnalyzeFactorizations(n *big.Int) ([]FactorAnalysis, error) {
	pairs, err := factorization.FactorPairs(n, true)
	if err != nil {
		return nil, err
	}

	analyses := make([]FactorAnalysis, 0, len(pairs))
	for _, p := range pairs {
		v, err := Convolve(p.A, p.B)
		if err != nil {
			return nil, err
		}
		inv, err := Compute(p.A, p.B)
		if err != nil {
			return nil, err
		}
		bitsA, err := binary.FormatBits(p.A)
		if err != nil {
			return nil, err
		}
		bitsB, err := binary.FormatBits(p.B)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, FactorAnalysis{
			N:          n,
			A:          p.A,
			B:          p.B,
			BitsA:      bitsA,
			BitsB:      bitsB,
			Vector:     v,
			Invariants: inv,
			Orthogonal: inv.H == 1,
		})
	}
	return analyses, nil
}
