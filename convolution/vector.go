// Package convolution implements the pre-carry binary convolution of two
// integers and the scalar invariants derived from it: the height H, the
// carry count C and the sequential and parallel chain lengths L. It also
// provides the BCT-perfectness predicate built on those invariants.
package convolution

import (
	"errors"
	"math/big"

	"github.com/miosync-masa/bct/binary"
	"github.com/miosync-masa/bct/utils"
)

// ErrNonPositive is returned when an operand of a convolution is not a
// positive integer.
var ErrNonPositive = errors.New("convolution: operands must be positive")

// ErrDiverged is returned when parallel carry resolution exceeds the round
// bound, which indicates a bug rather than a valid input.
var ErrDiverged = errors.New("convolution: carry resolution exceeded round bound")

// Vector holds the coefficients of a pre-carry convolution: position k is
// Σ_{i+j=k} a_i·b_j over the binary digits of the two operands. Coefficients
// are raw counts, not reduced modulo 2.
type Vector []uint64

// Convolve returns the pre-carry convolution of the binary digit sequences
// of a and b, taken at their natural widths. The result has length
// len(a)+len(b)−1 and is the single object every invariant reduces.
func Convolve(a, b *big.Int) (Vector, error) {
	if a.Sign() <= 0 || b.Sign() <= 0 {
		return nil, ErrNonPositive
	}
	sa, err := binary.Decompose(a)
	if err != nil {
		return nil, err
	}
	sb, err := binary.Decompose(b)
	if err != nil {
		return nil, err
	}
	v := make(Vector, len(sa)+len(sb)-1)
	for i, ai := range sa {
		if ai == 0 {
			continue
		}
		for j, bj := range sb {
			if bj != 0 {
				v[i+j]++
			}
		}
	}
	return v, nil
}

// Max returns the largest coefficient of v.
func (v Vector) Max() uint64 {
	return utils.MaxSlice(v)
}

// Excess returns Σ max(0, c_k − 1), the total mass above the binary digit
// ceiling of 1.
func (v Vector) Excess() (excess uint64) {
	for _, c := range v {
		if c > 1 {
			excess += c - 1
		}
	}
	return
}

// IsReduced reports whether every coefficient of v is already a valid
// binary digit.
func (v Vector) IsReduced() bool {
	for _, c := range v {
		if c > 1 {
			return false
		}
	}
	return true
}

// Zeros returns the number of zero coefficients in v.
func (v Vector) Zeros() (zeros int) {
	for _, c := range v {
		if c == 0 {
			zeros++
		}
	}
	return
}

// Recompose evaluates Σ c_k·2^k, the integer value the convolution reduces
// to after carry propagation. For v = Convolve(a, b) this is the product ab.
func (v Vector) Recompose() *big.Int {
	n := new(big.Int)
	tmp := new(big.Int)
	for k, c := range v {
		if c != 0 {
			tmp.SetUint64(c)
			tmp.Lsh(tmp, uint(k))
			n.Add(n, tmp)
		}
	}
	return n
}
