package sampling

import (
	"encoding/binary"
	"math/big"
)

// RandUint64 returns a uniform uint64 read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandUint64Range returns a uniform value in [min, max), for min < max.
func RandUint64Range(prng PRNG, min, max uint64) uint64 {
	if min >= max {
		panic("sampling: empty range")
	}
	span := max - min
	// Rejection sampling over the largest multiple of span below 2^64.
	limit := -span % span // (2^64 - span) mod span, offset of the tail
	for {
		v := RandUint64(prng)
		if v >= limit {
			return min + v%span
		}
	}
}

// RandInt returns a uniform big integer in [0, max-1].
func RandInt(prng PRNG, max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		panic("sampling: max must be positive")
	}
	bits := max.BitLen()
	bytes := (bits + 7) / 8
	buf := make([]byte, bytes)
	mask := byte(0xFF >> (8*bytes - bits))
	n := new(big.Int)
	for {
		if _, err := prng.Read(buf); err != nil {
			panic(err)
		}
		buf[0] &= mask
		if n.SetBytes(buf).Cmp(max) < 0 {
			return n
		}
	}
}
