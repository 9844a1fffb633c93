package convolution

import (
	"math/big"
)

// Round bound for parallel carry resolution. The longest chains observed in
// the verified ranges are below 70; a thousand rounds means a logic error.
const maxParallelRounds = 1000

// Height returns H(a, b), the maximum coefficient of the pre-carry
// convolution. H(a, b) = 1 means a and b are binary orthogonal.
func Height(a, b *big.Int) (int, error) {
	v, err := Convolve(a, b)
	if err != nil {
		return 0, err
	}
	return int(v.Max()), nil
}

// SelfHeight returns H(n, n), the height of the self-convolution of n.
func SelfHeight(n *big.Int) (int, error) {
	return Height(n, n)
}

// CarryCount returns C(a, b) = Σ max(0, c_k − 1), the total carry mass that
// must be propagated to reduce the convolution to a valid binary number.
func CarryCount(a, b *big.Int) (int, error) {
	v, err := Convolve(a, b)
	if err != nil {
		return 0, err
	}
	return int(v.Excess()), nil
}

// ChainLength returns L(a, b), the number of sequential LSB→MSB sweeps
// needed to reduce the convolution to a valid binary representation. A sweep
// finalizes every position once, left to right, pushing overflow into the
// next position. A convolution that is already reduced needs zero sweeps.
//
// The count is obtained by simulating sweeps until none is required; a
// single sweep always suffices in the sequential model because the running
// carry absorbs every overflow it meets.
func ChainLength(a, b *big.Int) (int, error) {
	v, err := Convolve(a, b)
	if err != nil {
		return 0, err
	}
	return chainLength(v), nil
}

func chainLength(v Vector) int {
	conv := append([]uint64(nil), v...)
	sweeps := 0
	for !Vector(conv).IsReduced() {
		sweeps++
		conv = sequentialSweep(conv)
	}
	return sweeps
}

// sequentialSweep performs one full LSB→MSB carry-propagation pass, leaving
// a 0/1 digit at every position it visits and appending the final carry-out.
func sequentialSweep(conv []uint64) []uint64 {
	out := make([]uint64, 0, len(conv)+2)
	var carry uint64
	for _, c := range conv {
		total := c + carry
		out = append(out, total&1)
		carry = total >> 1
	}
	for carry > 0 {
		out = append(out, carry&1)
		carry >>= 1
	}
	return out
}

// ChainLengthParallel returns L_par(a, b), the number of rounds needed when
// every position resolves simultaneously per round:
//
//	c'_k = (c_k mod 2) + ⌊c_{k−1} / 2⌋
//
// This is the length of the longest carry-dependency chain. It is
// independent of the height: the family m = (2^k+1)/3 for odd k keeps
// H(3, m) = 2 while L_par(3, m) = k−1 grows without bound.
func ChainLengthParallel(a, b *big.Int) (int, error) {
	v, err := Convolve(a, b)
	if err != nil {
		return 0, err
	}
	return chainLengthParallel(v)
}

func chainLengthParallel(v Vector) (int, error) {
	conv := append([]uint64(nil), v...)
	rounds := 0
	for !Vector(conv).IsReduced() {
		rounds++
		conv = parallelRound(conv)
		if rounds > maxParallelRounds {
			return 0, ErrDiverged
		}
	}
	return rounds, nil
}

// parallelRound applies one simultaneous carry-resolution step to every
// position, spilling the carry out of the top position into fresh digits.
func parallelRound(conv []uint64) []uint64 {
	out := make([]uint64, len(conv), len(conv)+2)
	for k := range conv {
		out[k] = conv[k] & 1
		if k > 0 {
			out[k] += conv[k-1] >> 1
		}
	}
	for carry := conv[len(conv)-1] >> 1; carry > 0; carry >>= 1 {
		out = append(out, carry&1)
	}
	return out
}

// IsOrthogonal reports whether a ⊥ b, i.e. H(a, b) = 1: the bit patterns of
// a and b multiply without any convolution overlap.
func IsOrthogonal(a, b *big.Int) (bool, error) {
	h, err := Height(a, b)
	if err != nil {
		return false, err
	}
	return h == 1, nil
}

// Invariants bundles the scalar invariants of one convolution.
type Invariants struct {
	H    int // height: max coefficient
	C    int // carry count: total excess above 1
	L    int // sequential chain length
	LPar int // parallel chain length
}

// Compute derives all four invariants of (a, b) from a single convolution.
func Compute(a, b *big.Int) (Invariants, error) {
	v, err := Convolve(a, b)
	if err != nil {
		return Invariants{}, err
	}
	lp, err := chainLengthParallel(v)
	if err != nil {
		return Invariants{}, err
	}
	return Invariants{
		H:    int(v.Max()),
		C:    int(v.Excess()),
		L:    chainLength(v),
		LPar: lp,
	}, nil
}
