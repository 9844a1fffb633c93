// Package factorization provides the integer factorization and divisor-sum
// arithmetic behind BCT-perfectness and abundance analysis: primality
// testing, prime factor extraction, factor-pair enumeration, σ(n) and the
// abundance ratio σ(n)/n.
package factorization

import (
	"errors"
	"math/big"
)

// ErrNonPositive is returned when an input integer is not positive.
var ErrNonPositive = errors.New("factorization: input must be positive")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// KnownFermatPrimes lists the five known Fermat primes F_0 … F_4.
var KnownFermatPrimes = []uint64{3, 5, 17, 257, 65537}

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers
// below 2^64.
func IsPrime(n *big.Int) bool {
	return n.ProbablyPrime(0)
}

// GetFactors returns the distinct prime factors of n in ascending order.
// Small factors are removed by trial division and the remaining cofactor is
// split recursively with Pollard's rho.
func GetFactors(n *big.Int) (factors []*big.Int) {
	if n.CmpAbs(one) <= 0 {
		return
	}

	m := new(big.Int).Set(n)
	seen := map[string]bool{}

	add := func(p *big.Int) {
		s := p.String()
		if !seen[s] {
			seen[s] = true
			factors = append(factors, new(big.Int).Set(p))
		}
	}

	for _, s := range smallPrimes {
		p := new(big.Int).SetUint64(s)
		if new(big.Int).Mod(m, p).Sign() == 0 {
			add(p)
			for new(big.Int).Mod(m, p).Sign() == 0 {
				m.Quo(m, p)
			}
		}
	}

	var split func(c *big.Int)
	split = func(c *big.Int) {
		if c.Cmp(one) == 0 {
			return
		}
		if IsPrime(c) {
			add(c)
			return
		}
		d := GetFactorPollardRho(c)
		split(d)
		split(new(big.Int).Quo(c, d))
	}
	split(m)

	sortBigInts(factors)
	return
}

// GetFactorPollardRho returns a non-trivial factor of the composite n using
// Pollard's rho with Brent's cycle detection.
func GetFactorPollardRho(n *big.Int) *big.Int {
	if new(big.Int).And(n, one).Sign() == 0 {
		return new(big.Int).Set(two)
	}

	for c := int64(1); ; c++ {
		offset := big.NewInt(c)

		x := new(big.Int).Set(two)
		y := new(big.Int).Set(two)
		d := new(big.Int).SetUint64(1)

		tmp := new(big.Int)

		// x_{i+1} = x_i^2 + c mod n
		step := func(v *big.Int) {
			v.Mul(v, v)
			v.Add(v, offset)
			v.Mod(v, n)
		}

		for d.Cmp(one) == 0 {
			step(x)
			step(y)
			step(y)
			tmp.Sub(x, y)
			tmp.Abs(tmp)
			if tmp.Sign() == 0 {
				break
			}
			d.GCD(nil, nil, tmp, n)
		}

		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return d
		}
		// Cycle collapsed without a factor, retry with the next offset.
	}
}

func sortBigInts(s []*big.Int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Cmp(s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Primes below 128, used to strip small factors before rho.
var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
}
