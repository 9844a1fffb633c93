// Package zeta implements the experimental correspondence between BCT
// density statistics and the Riemann zeta function: popcount/bit-length
// density ratios over the primes, gap statistics compared against the GUE
// and Poisson regimes, convolution vanishing rates and high-precision
// partial zeta sums as a comparison anchor.
package zeta

import (
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/miosync-masa/bct/factorization"
)

// ZetaZeros holds the imaginary parts of the first 20 non-trivial zeros of
// ζ(s) on the critical line.
var ZetaZeros = []float64{
	14.134725, 21.022040, 25.010858, 30.424876, 32.935062,
	37.586178, 40.918720, 43.327073, 48.005151, 49.773832,
	52.970321, 56.446248, 59.347044, 60.831779, 65.112544,
	67.079811, 69.546402, 72.067158, 75.704691, 77.144840,
}

// Statistics classification bands for variance/mean gap ratios.
const (
	StronglyGUE  = "Strongly GUE-like"
	GUE          = "GUE-like (level repulsion)"
	NearPoisson  = "Near Poisson"
	SuperPoisson = "Super-Poisson (clustering)"
)

// Primes returns the primes below max in ascending order.
func Primes(max uint64) (primes []uint64) {
	n := new(big.Int)
	for p := uint64(2); p < max; p++ {
		if factorization.IsPrime(n.SetUint64(p)) {
			primes = append(primes, p)
		}
	}
	return
}

// DensityRatios returns popcount/bit-length for each input, the quantity
// conjectured to correspond to Re(s) on the critical strip.
func DensityRatios(ns []uint64) []float64 {
	ratios := make([]float64, len(ns))
	for i, n := range ns {
		ratios[i] = densityRatio(n)
	}
	return ratios
}

// Gaps returns the absolute differences between adjacent values.
func Gaps(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	gaps := make([]float64, len(values)-1)
	for i := range gaps {
		g := values[i+1] - values[i]
		if g < 0 {
			g = -g
		}
		gaps[i] = g
	}
	return gaps
}

// VarianceMeanRatio returns var/mean of the gaps. Level repulsion (GUE)
// pushes the ratio below 1; a Poisson process sits near 1.
func VarianceMeanRatio(gaps []float64) (float64, error) {
	if len(gaps) == 0 {
		return 0, stats.ErrEmptyInput
	}
	mean, err := stats.Mean(gaps)
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, stats.ErrZero
	}
	variance, err := stats.PopulationVariance(gaps)
	if err != nil {
		return 0, err
	}
	return variance / mean, nil
}

// ClassifyStatistics maps a variance/mean ratio to its statistical regime.
func ClassifyStatistics(ratio float64) string {
	switch {
	case ratio < 0.5:
		return StronglyGUE
	case ratio < 1.0:
		return GUE
	case ratio < 1.2:
		return NearPoisson
	default:
		return SuperPoisson
	}
}

// NormalizedZeroGaps returns the gaps between consecutive zeta zeros scaled
// to unit mean, together with their variance/mean ratio.
func NormalizedZeroGaps() ([]float64, float64, error) {
	gaps := Gaps(ZetaZeros)
	mean, err := stats.Mean(gaps)
	if err != nil {
		return nil, 0, err
	}
	normalized := make([]float64, len(gaps))
	for i, g := range gaps {
		normalized[i] = g / mean
	}
	ratio, err := VarianceMeanRatio(normalized)
	if err != nil {
		return nil, 0, err
	}
	return normalized, ratio, nil
}
