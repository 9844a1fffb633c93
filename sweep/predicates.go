package sweep

import (
	"fmt"
	"math/big"

	"github.com/miosync-masa/bct/binary"
	"github.com/miosync-masa/bct/convolution"
	"github.com/miosync-masa/bct/factorization"
	"github.com/miosync-masa/bct/utils"
)

// AbundanceThreshold is the paper's bound on σ(n)/n over BCT-perfect odd
// composites (Theorem 11b / Conjecture 1).
const AbundanceThreshold = 1.71

// HeightUpperBound checks 1 ≤ H(a, b) ≤ min(pop(a), pop(b)) over every
// non-trivial factor pair of n. Primes and 1 carry no pair and are skipped.
func HeightUpperBound(n uint64) (Result, error) {
	pairs, err := factorization.FactorPairs(new(big.Int).SetUint64(n), false)
	if err != nil {
		return Result{}, err
	}
	if len(pairs) == 0 {
		return Result{Skip: true}, nil
	}
	for _, p := range pairs {
		h, err := convolution.Height(p.A, p.B)
		if err != nil {
			return Result{}, err
		}
		popA, err := binary.Popcount(p.A)
		if err != nil {
			return Result{}, err
		}
		popB, err := binary.Popcount(p.B)
		if err != nil {
			return Result{}, err
		}
		if h < 1 || h > utils.Min(popA, popB) {
			return Result{
				Detail: fmt.Sprintf("H(%v,%v)=%d outside [1,%d]", p.A, p.B, h, utils.Min(popA, popB)),
			}, nil
		}
	}
	return Result{OK: true}, nil
}

// EqualityCondition checks that H(n, n) = pop(n) holds exactly when the
// 1-bit pattern of n is centrally symmetric within its minimal width.
func EqualityCondition(n uint64) (Result, error) {
	if n == 0 {
		return Result{Skip: true}, nil
	}
	m := new(big.Int).SetUint64(n)
	h, err := convolution.SelfHeight(m)
	if err != nil {
		return Result{}, err
	}
	pop, err := binary.Popcount(m)
	if err != nil {
		return Result{}, err
	}
	sym, err := binary.IsCentrallySymmetric(m)
	if err != nil {
		return Result{}, err
	}
	if (h == pop) != sym {
		return Result{
			Detail: fmt.Sprintf("n=%d: H(n,n)=%d pop=%d symmetric=%t", n, h, pop, sym),
		}, nil
	}
	return Result{OK: true}, nil
}

// MersenneClosedForm checks the Mersenne self-convolution closed forms
// H(M_k, M_k) = k and C(M_k, M_k) = (k−1)² for k ≥ 2.
func MersenneClosedForm(n uint64) (Result, error) {
	m := new(big.Int).SetUint64(n)
	mersenne, k := binary.IsMersenne(m)
	if !mersenne || k < 2 {
		return Result{Skip: true}, nil
	}
	inv, err := convolution.Compute(m, m)
	if err != nil {
		return Result{}, err
	}
	if inv.H != k || inv.C != (k-1)*(k-1) {
		return Result{
			Detail: fmt.Sprintf("M_%d: H=%d C=%d, want H=%d C=%d", k, inv.H, inv.C, k, (k-1)*(k-1)),
		}, nil
	}
	return Result{OK: true}, nil
}

// FermatResonance checks H(F_k, F_k) = 2, constant across the Fermat family.
func FermatResonance(n uint64) (Result, error) {
	m := new(big.Int).SetUint64(n)
	fermat, k := binary.IsFermat(m)
	if !fermat {
		return Result{Skip: true}, nil
	}
	h, err := convolution.SelfHeight(m)
	if err != nil {
		return Result{}, err
	}
	if h != 2 {
		return Result{Detail: fmt.Sprintf("F_%d: H=%d, want 2", k, h)}, nil
	}
	return Result{OK: true}, nil
}

// SequentialNormalization checks that a single LSB→MSB sweep reduces the
// convolution of every factor pair of n, i.e. L(a, b) ≤ 1.
func SequentialNormalization(n uint64) (Result, error) {
	pairs, err := factorization.FactorPairs(new(big.Int).SetUint64(n), false)
	if err != nil {
		return Result{}, err
	}
	if len(pairs) == 0 {
		return Result{Skip: true}, nil
	}
	for _, p := range pairs {
		l, err := convolution.ChainLength(p.A, p.B)
		if err != nil {
			return Result{}, err
		}
		if l > 1 {
			return Result{Detail: fmt.Sprintf("L(%v,%v)=%d", p.A, p.B, l)}, nil
		}
	}
	return Result{OK: true}, nil
}

// ParallelChainFamily checks the family m = (2^k+1)/3 for odd k ≥ 3:
// H(3, m) = 2 while L_par(3, m) = k−1. Sweep this check over a range of k,
// not of n.
func ParallelChainFamily(k uint64) (Result, error) {
	if k < 3 || k&1 == 0 {
		return Result{Skip: true}, nil
	}
	m := FamilyM(k)
	three := big.NewInt(3)
	h, err := convolution.Height(three, m)
	if err != nil {
		return Result{}, err
	}
	lpar, err := convolution.ChainLengthParallel(three, m)
	if err != nil {
		return Result{}, err
	}
	if h != 2 || lpar != int(k-1) {
		return Result{
			Detail:  fmt.Sprintf("k=%d m=%v: H=%d L_par=%d, want H=2 L_par=%d", k, m, h, lpar, k-1),
			Sample:  float64(lpar),
			Sampled: true,
		}, nil
	}
	return Result{OK: true, Sample: float64(lpar), Sampled: true}, nil
}

// FamilyM returns m = (2^k + 1) / 3, an integer for every odd k.
func FamilyM(k uint64) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(k))
	m.Add(m, big.NewInt(1))
	return m.Quo(m, big.NewInt(3))
}

// EvenPerfectOrthogonality checks that even perfect numbers
// P = 2^(p−1)·(2^p−1) are BCT-perfect, that the Euclid factor pair itself is
// orthogonal, and that σ(P)/P is exactly 2.
func EvenPerfectOrthogonality(n uint64) (Result, error) {
	if n < 2 || n&1 == 1 {
		return Result{Skip: true}, nil
	}
	m := new(big.Int).SetUint64(n)
	perfect, err := factorization.IsPerfect(m)
	if err != nil {
		return Result{}, err
	}
	if !perfect {
		return Result{Skip: true}, nil
	}

	// Euclid form: P = 2^(p-1)·M_p with M_p = 2^p − 1 prime.
	p := (binary.BitLength(m) + 1) / 2
	evenPart := new(big.Int).Lsh(big.NewInt(1), uint(p-1))
	oddPart := new(big.Int).Quo(m, evenPart)
	if mersenne, _ := binary.IsMersenne(oddPart); !mersenne || !factorization.IsPrime(oddPart) {
		return Result{Detail: fmt.Sprintf("P=%d not of Euclid form", n)}, nil
	}

	orth, err := convolution.IsOrthogonal(evenPart, oddPart)
	if err != nil {
		return Result{}, err
	}
	bctPerfect, err := convolution.IsBCTPerfect(m)
	if err != nil {
		return Result{}, err
	}
	ratio, err := factorization.AbundanceRatio(m)
	if err != nil {
		return Result{}, err
	}
	if !orth || !bctPerfect || ratio.Cmp(big.NewRat(2, 1)) != 0 {
		return Result{
			Detail: fmt.Sprintf("P=%d: orthogonal=%t bctPerfect=%t σ/n=%v", n, orth, bctPerfect, ratio),
		}, nil
	}
	return Result{OK: true}, nil
}

// OddAbundanceBound checks that BCT-perfect odd composites keep
// σ(n)/n < AbundanceThreshold, recording the ratio as a sample so the
// report exposes the extremal example.
func OddAbundanceBound(n uint64) (Result, error) {
	if n < 9 || n&1 == 0 {
		return Result{Skip: true}, nil
	}
	m := new(big.Int).SetUint64(n)
	if factorization.IsPrime(m) {
		return Result{Skip: true}, nil
	}
	bctPerfect, err := convolution.IsBCTPerfect(m)
	if err != nil {
		return Result{}, err
	}
	if !bctPerfect {
		return Result{Skip: true}, nil
	}
	ratio, err := factorization.AbundanceRatio(m)
	if err != nil {
		return Result{}, err
	}
	f, _ := ratio.Float64()
	return Result{
		OK:      f < AbundanceThreshold,
		Detail:  fmt.Sprintf("n=%d σ/n=%v", n, ratio),
		Sample:  f,
		Sampled: true,
	}, nil
}
