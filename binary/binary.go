// Package binary implements the bit-sequence utilities underlying the BCT
// invariants: LSB-first digit decomposition, Hamming weight, bit-position
// sets, central symmetry and recognition of the Mersenne and Fermat families.
//
// Every function in this package is total over the non-negative integers and
// returns ErrNegative outside that domain. The canonical representation used
// by all invariant computations is the LSB-first Seq; MSB-first strings exist
// only for display and are never fed back into arithmetic.
package binary

import (
	"errors"
	"math/big"
	"math/bits"
	"strings"
)

// ErrNegative is returned when an input integer is negative.
var ErrNegative = errors.New("binary: input must be non-negative")

// ErrWidth is returned when a requested bit-width is smaller than the
// natural width of the operand.
var ErrWidth = errors.New("binary: width smaller than natural bit-length")

// Seq is the binary digit sequence of a non-negative integer, least
// significant bit first: n = Σ s[i]·2^i with s[i] ∈ {0, 1}.
// A Seq is recomputed from its source integer, never mutated in place.
type Seq []uint8

// Decompose returns the LSB-first digit sequence of n at its natural width.
// The natural width of 0 is one digit, so Decompose(0) = Seq{0}; this keeps
// Recompose a round-trip and Popcount(0) = 0 consistent.
func Decompose(n *big.Int) (Seq, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	return DecomposeWidth(n, BitLength(n))
}

// DecomposeWidth returns the LSB-first digit sequence of n zero-padded to
// width digits. It returns ErrWidth if width is smaller than the natural
// bit-length of n.
func DecomposeWidth(n *big.Int, width int) (Seq, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if width < BitLength(n) {
		return nil, ErrWidth
	}
	s := make(Seq, width)
	for i := 0; i < n.BitLen(); i++ {
		s[i] = uint8(n.Bit(i))
	}
	return s, nil
}

// Recompose reconstructs the integer Σ s[i]·2^i represented by s.
func (s Seq) Recompose() *big.Int {
	n := new(big.Int)
	for i, b := range s {
		if b != 0 {
			n.SetBit(n, i, 1)
		}
	}
	return n
}

// String renders s MSB-first for display. The empty sequence renders as "0".
func (s Seq) String() string {
	if len(s) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// FormatBits returns the MSB-first binary string of n with no leading zeros
// ("0" for n = 0). Display only: no invariant computation consumes it.
func FormatBits(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", ErrNegative
	}
	return n.Text(2), nil
}

// BitLength returns the number of digits in the natural representation of n,
// which is 1 for n = 0.
func BitLength(n *big.Int) int {
	if n.BitLen() == 0 {
		return 1
	}
	return n.BitLen()
}

// Popcount returns the Hamming weight of n, i.e. Σ Decompose(n).
func Popcount(n *big.Int) (int, error) {
	if n.Sign() < 0 {
		return 0, ErrNegative
	}
	var c int
	for _, w := range n.Bits() {
		c += bits.OnesCount(uint(w))
	}
	return c, nil
}

// BitPositions returns the set of positions i with bit i of n equal to 1.
func BitPositions(n *big.Int) (map[int]struct{}, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	positions := make(map[int]struct{})
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			positions[i] = struct{}{}
		}
	}
	return positions, nil
}

// IsPowerOfTwo reports whether n = 2^k for some k ≥ 0.
func IsPowerOfTwo(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	m := new(big.Int).Sub(n, oneInt)
	return m.And(m, n).Sign() == 0
}

// IsCentrallySymmetric reports whether the 1-bit positions of n are
// symmetric under reflection about their center, i.e. p ↦ lo+hi−p maps the
// set of positions onto itself, where lo and hi are the lowest and highest
// set positions. Integers with at most one set bit are symmetric by
// convention. This is the equality condition for H(n, n) = Popcount(n).
func IsCentrallySymmetric(n *big.Int) (bool, error) {
	if n.Sign() < 0 {
		return false, ErrNegative
	}
	if n.Sign() == 0 {
		return true, nil
	}
	// Stripping trailing zeros pins the lowest set bit at position 0, so
	// the reflection becomes i ↦ w−1−i over the minimal width w.
	m := new(big.Int).Rsh(n, trailingZeros(n))
	w := m.BitLen()
	for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
		if m.Bit(i) != m.Bit(j) {
			return false, nil
		}
	}
	return true, nil
}

func trailingZeros(n *big.Int) uint {
	var i uint
	for n.Bit(int(i)) == 0 {
		i++
	}
	return i
}

// IsMersenne reports whether n = 2^k − 1 for some k ≥ 1, returning k when it
// does and -1 otherwise. Mersenne numbers are exactly the all-ones patterns.
func IsMersenne(n *big.Int) (bool, int) {
	if n.Sign() <= 0 {
		return false, -1
	}
	m := new(big.Int).Add(n, oneInt)
	if !IsPowerOfTwo(m) {
		return false, -1
	}
	return true, m.BitLen() - 1
}

// IsFermat reports whether n = 2^(2^k) + 1 for some k ≥ 0, returning k when
// it does and -1 otherwise. F_0 = 3, F_1 = 5, F_2 = 17, ...
func IsFermat(n *big.Int) (bool, int) {
	if n.Cmp(oneInt) <= 0 {
		return false, -1
	}
	m := new(big.Int).Sub(n, oneInt)
	if !IsPowerOfTwo(m) {
		return false, -1
	}
	// m = 2^e; n is Fermat iff e is itself a power of two (e ≥ 1).
	e := m.BitLen() - 1
	if e == 0 || e&(e-1) != 0 {
		return false, -1
	}
	return true, bits.Len(uint(e)) - 1
}

var oneInt = big.NewInt(1)
