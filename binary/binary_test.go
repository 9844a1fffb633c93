package binary

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/miosync-masa/bct/utils/sampling"
)

func TestDecompose(t *testing.T) {
	type vector struct {
		n    int64
		want Seq
	}
	for _, tc := range []vector{
		{0, Seq{0}},
		{1, Seq{1}},
		{2, Seq{0, 1}},
		{13, Seq{1, 0, 1, 1}},
		{255, Seq{1, 1, 1, 1, 1, 1, 1, 1}},
		{256, Seq{0, 0, 0, 0, 0, 0, 0, 0, 1}},
	} {
		got, err := Decompose(big.NewInt(tc.n))
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Decompose(%d) mismatch (-want +got):\n%s", tc.n, diff)
		}
	}

	_, err := Decompose(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegative)
}

func TestDecomposeWidth(t *testing.T) {
	got, err := DecomposeWidth(big.NewInt(5), 6)
	require.NoError(t, err)
	require.Equal(t, Seq{1, 0, 1, 0, 0, 0}, got)

	got, err = DecomposeWidth(big.NewInt(0), 3)
	require.NoError(t, err)
	require.Equal(t, Seq{0, 0, 0}, got)

	_, err = DecomposeWidth(big.NewInt(5), 2)
	require.ErrorIs(t, err, ErrWidth)

	_, err = DecomposeWidth(big.NewInt(-5), 8)
	require.ErrorIs(t, err, ErrNegative)
}

func TestRecomposeRoundTrip(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte{'b', 'i', 'n'})
	require.NoError(t, err)

	bound := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 100; i++ {
		n := sampling.RandInt(prng, bound)
		s, err := Decompose(n)
		require.NoError(t, err)
		require.Zero(t, n.Cmp(s.Recompose()), "round trip failed for %v", n)
	}

	require.Zero(t, big.NewInt(0).Cmp(Seq{0}.Recompose()))
}

func TestSeqString(t *testing.T) {
	s, err := Decompose(big.NewInt(13))
	require.NoError(t, err)
	require.Equal(t, "1101", s.String())
	require.Equal(t, "0", Seq{}.String())

	str, err := FormatBits(big.NewInt(13))
	require.NoError(t, err)
	require.Equal(t, "1101", str)

	str, err = FormatBits(big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, "0", str)

	_, err = FormatBits(big.NewInt(-13))
	require.ErrorIs(t, err, ErrNegative)
}

func TestPopcount(t *testing.T) {
	type vector struct {
		n    string
		want int
	}
	for _, tc := range []vector{
		{"0", 0},
		{"1", 1},
		{"13", 3},
		{"255", 8},
		{"256", 1},
		{"340282366920938463463374607431768211455", 128}, // 2^128 - 1
	} {
		n, ok := new(big.Int).SetString(tc.n, 10)
		require.True(t, ok)
		got, err := Popcount(n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Popcount(%s)", tc.n)
	}

	_, err := Popcount(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegative)
}

func TestPopcountMatchesDigitSum(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte{'p', 'o', 'p'})
	require.NoError(t, err)

	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 100; i++ {
		n := sampling.RandInt(prng, bound)
		s, err := Decompose(n)
		require.NoError(t, err)
		var sum int
		for _, b := range s {
			sum += int(b)
		}
		pop, err := Popcount(n)
		require.NoError(t, err)
		require.Equal(t, sum, pop)
	}
}

func TestBitPositions(t *testing.T) {
	got, err := BitPositions(big.NewInt(13))
	require.NoError(t, err)
	require.Equal(t, map[int]struct{}{0: {}, 2: {}, 3: {}}, got)

	got, err = BitPositions(big.NewInt(0))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = BitPositions(big.NewInt(-2))
	require.ErrorIs(t, err, ErrNegative)
}

func TestBitLength(t *testing.T) {
	require.Equal(t, 1, BitLength(big.NewInt(0)))
	require.Equal(t, 1, BitLength(big.NewInt(1)))
	require.Equal(t, 4, BitLength(big.NewInt(13)))
	require.Equal(t, 9, BitLength(big.NewInt(256)))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int64{1, 2, 4, 8, 1024} {
		require.True(t, IsPowerOfTwo(big.NewInt(n)), "n=%d", n)
	}
	for _, n := range []int64{0, -4, 3, 6, 12, 1023} {
		require.False(t, IsPowerOfTwo(big.NewInt(n)), "n=%d", n)
	}
}

func TestIsCentrallySymmetric(t *testing.T) {
	type vector struct {
		n    int64
		want bool
	}
	for _, tc := range []vector{
		{0, true},
		{1, true},
		{4, true},   // single set bit
		{5, true},   // 101
		{7, true},   // 111
		{9, true},   // 1001
		{11, false}, // 1011
		{12, true},  // 1100 reflects about the center of {2, 3}
		{13, false}, // 1101
		{21, true},  // 10101
		{22, false}, // 10110
	} {
		got, err := IsCentrallySymmetric(big.NewInt(tc.n))
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "n=%d", tc.n)
	}

	_, err := IsCentrallySymmetric(big.NewInt(-7))
	require.ErrorIs(t, err, ErrNegative)
}

func TestIsMersenne(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want bool
		k    int
	}{
		{1, true, 1},
		{3, true, 2},
		{7, true, 3},
		{31, true, 5},
		{8191, true, 13},
		{0, false, -1},
		{4, false, -1},
		{30, false, -1},
	} {
		ok, k := IsMersenne(big.NewInt(tc.n))
		require.Equal(t, tc.want, ok, "n=%d", tc.n)
		require.Equal(t, tc.k, k, "n=%d", tc.n)
	}
}

func TestIsFermat(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want bool
		k    int
	}{
		{3, true, 0},
		{5, true, 1},
		{17, true, 2},
		{257, true, 3},
		{65537, true, 4},
		{4294967297, true, 5}, // F_5 = 641 × 6700417, Fermat but not prime
		{1, false, -1},
		{2, false, -1},
		{7, false, -1},
		{9, false, -1}, // 2^3 + 1, exponent not a power of two
	} {
		ok, k := IsFermat(big.NewInt(tc.n))
		require.Equal(t, tc.want, ok, "n=%d", tc.n)
		require.Equal(t, tc.k, k, "n=%d", tc.n)
	}
}
