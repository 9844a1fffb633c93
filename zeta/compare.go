package zeta

import (
	"errors"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/miosync-masa/bct/convolution"
	"github.com/miosync-masa/bct/factorization"
)

// Correspondence bundles the BCT-side and zeta-side gap statistics of one
// comparison run.
type Correspondence struct {
	// Variance/mean gap ratios per spectrum.
	DensityVarMean float64
	ZeroVarMean    float64
	HeightVarMean  float64
	// Classification of each ratio.
	DensityClass string
	ZeroClass    string
	HeightClass  string
	// Density distribution over the primes.
	DensityMean   float64
	DensityStdDev float64
}

// Compare runs the full BCT–ζ correspondence analysis: prime density gaps
// below maxPrime, normalized zeta zero gaps, and height gaps over the
// composites below maxComposite.
func Compare(maxPrime, maxComposite uint64) (Correspondence, error) {
	primes := Primes(maxPrime)
	ratios := DensityRatios(primes)

	densityVarMean, err := VarianceMeanRatio(Gaps(ratios))
	if err != nil {
		return Correspondence{}, err
	}
	densityMean, err := stats.Mean(ratios)
	if err != nil {
		return Correspondence{}, err
	}
	densityStdDev, err := stats.StandardDeviationPopulation(ratios)
	if err != nil {
		return Correspondence{}, err
	}

	_, zeroVarMean, err := NormalizedZeroGaps()
	if err != nil {
		return Correspondence{}, err
	}

	heights, err := compositeHeights(maxComposite)
	if err != nil {
		return Correspondence{}, err
	}
	heightVarMean, err := VarianceMeanRatio(Gaps(heights))
	if err != nil {
		return Correspondence{}, err
	}

	return Correspondence{
		DensityVarMean: densityVarMean,
		ZeroVarMean:    zeroVarMean,
		HeightVarMean:  heightVarMean,
		DensityClass:   ClassifyStatistics(densityVarMean),
		ZeroClass:      ClassifyStatistics(zeroVarMean),
		HeightClass:    ClassifyStatistics(heightVarMean),
		DensityMean:    densityMean,
		DensityStdDev:  densityStdDev,
	}, nil
}

// compositeHeights returns H over the smallest factor pair of each
// composite in [4, max).
func compositeHeights(max uint64) ([]float64, error) {
	var heights []float64
	for n := uint64(4); n < max; n++ {
		m := new(big.Int).SetUint64(n)
		if factorization.IsPrime(m) {
			continue
		}
		a, b, err := smallestPair(m)
		if errors.Is(err, ErrNoFactorization) {
			continue
		}
		if err != nil {
			return nil, err
		}
		h, err := convolution.Height(a, b)
		if err != nil {
			return nil, err
		}
		heights = append(heights, float64(h))
	}
	return heights, nil
}
