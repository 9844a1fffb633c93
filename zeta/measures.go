package zeta

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/miosync-masa/bct/binary"
	"github.com/miosync-masa/bct/convolution"
	"github.com/miosync-masa/bct/factorization"
	"github.com/miosync-masa/bct/utils"
)

// ErrNoFactorization is returned by per-composite measures when n has no
// non-trivial factor pair.
var ErrNoFactorization = errors.New("zeta: integer has no non-trivial factorization")

func densityRatio(n uint64) float64 {
	if n == 0 {
		return 0
	}
	return float64(bits.OnesCount64(n)) / float64(bits.Len64(n))
}

// smallestPair returns the factor pair (a, n/a) with the smallest a > 1.
func smallestPair(n *big.Int) (*big.Int, *big.Int, error) {
	pairs, err := factorization.FactorPairs(n, false)
	if err != nil {
		return nil, nil, err
	}
	if len(pairs) == 0 {
		return nil, nil, ErrNoFactorization
	}
	return pairs[0].A, pairs[0].B, nil
}

// VanishingRate returns the fraction of zero coefficients in the convolution
// of the smallest non-trivial factor pair of n, conjectured to correspond to
// ζ(s) approaching 0.
func VanishingRate(n *big.Int) (float64, error) {
	a, b, err := smallestPair(n)
	if err != nil {
		return 0, err
	}
	v, err := convolution.Convolve(a, b)
	if err != nil {
		return 0, err
	}
	return float64(v.Zeros()) / float64(len(v)), nil
}

// InterferenceBalance returns (H − 1) / min(pop(a), pop(b)) over the
// smallest non-trivial factor pair of n: 0 at perfect orthogonality, 1 at
// maximum resonance.
func InterferenceBalance(n *big.Int) (float64, error) {
	a, b, err := smallestPair(n)
	if err != nil {
		return 0, err
	}
	h, err := convolution.Height(a, b)
	if err != nil {
		return 0, err
	}
	popA, err := binary.Popcount(a)
	if err != nil {
		return 0, err
	}
	popB, err := binary.Popcount(b)
	if err != nil {
		return 0, err
	}
	return float64(h-1) / float64(utils.Min(popA, popB)), nil
}

// EffectiveSigma maps the popcount/bit-length density of n to its Re(s)
// analog: 0.5 on the "critical line", drifting away with the density's
// deviation from one half.
func EffectiveSigma(n uint64) float64 {
	if n < 2 {
		return 0.5
	}
	deviation := densityRatio(n) - 0.5
	if deviation < 0 {
		deviation = -deviation
	}
	return 0.5 + deviation
}
