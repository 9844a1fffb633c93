package factorization

import (
	"math/big"
)

// Pair is a factorization n = A × B with A ≤ B.
type Pair struct {
	A, B *big.Int
}

// FactorPairs returns every factorization n = a × b with a ≤ b, found by
// trial division up to ⌈√n⌉. With includeTrivial the pair (1, n) is
// included; otherwise only non-trivial pairs 1 < a ≤ b < n are returned.
func FactorPairs(n *big.Int, includeTrivial bool) ([]Pair, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositive
	}

	var pairs []Pair

	a := big.NewInt(1)
	if !includeTrivial {
		a.SetUint64(2)
	}

	q, r := new(big.Int), new(big.Int)
	aa := new(big.Int)
	for ; aa.Mul(a, a).Cmp(n) <= 0; a.Add(a, one) {
		q.QuoRem(n, a, r)
		if r.Sign() != 0 {
			continue
		}
		if !includeTrivial && q.Cmp(n) == 0 {
			continue
		}
		pairs = append(pairs, Pair{A: new(big.Int).Set(a), B: new(big.Int).Set(q)})
	}

	return pairs, nil
}

// Divisors returns all positive divisors of n in ascending order.
func Divisors(n *big.Int) ([]*big.Int, error) {
	pairs, err := FactorPairs(n, true)
	if err != nil {
		return nil, err
	}
	divisors := make([]*big.Int, 0, 2*len(pairs))
	for _, p := range pairs {
		divisors = append(divisors, p.A)
		if p.A.Cmp(p.B) != 0 {
			divisors = append(divisors, p.B)
		}
	}
	sortBigInts(divisors)
	return divisors, nil
}

// Sigma returns σ(n), the sum of all positive divisors of n.
func Sigma(n *big.Int) (*big.Int, error) {
	divisors, err := Divisors(n)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	for _, d := range divisors {
		sum.Add(sum, d)
	}
	return sum, nil
}

// AbundanceRatio returns σ(n)/n as an exact rational. Perfect numbers have
// ratio exactly 2.
func AbundanceRatio(n *big.Int) (*big.Rat, error) {
	s, err := Sigma(n)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetFrac(s, n), nil
}

// IsPerfect reports whether σ(n) = 2n.
func IsPerfect(n *big.Int) (bool, error) {
	s, err := Sigma(n)
	if err != nil {
		return false, err
	}
	return s.Cmp(new(big.Int).Lsh(n, 1)) == 0, nil
}
