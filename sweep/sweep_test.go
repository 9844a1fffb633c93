package sweep

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunEmptyRange(t *testing.T) {
	report := Run(Range{Start: 10, End: 10}, 4, func(n uint64) (Result, error) {
		t.Fatal("check should not be called")
		return Result{}, nil
	})
	require.True(t, report.Passed())
	require.Zero(t, report.Checked)
}

func TestRunCountsAndViolations(t *testing.T) {
	// Claim: no multiples of 7 exist. Violated 14 times in [1, 100).
	check := func(n uint64) (Result, error) {
		if n%2 == 0 {
			return Result{Skip: true}, nil
		}
		return Result{OK: n%7 != 0, Detail: fmt.Sprintf("n=%d", n)}, nil
	}

	report := Run(Range{Start: 1, End: 100}, 1, check)
	require.False(t, report.Passed())
	require.Equal(t, uint64(50), report.Checked)
	require.Equal(t, uint64(49), report.Skipped)
	require.Equal(t, uint64(7), report.Violations) // 7, 21, 35, 49, 63, 77, 91
	require.Equal(t, uint64(7), report.First[0].N)
}

func TestRunParallelMatchesSerial(t *testing.T) {
	check := func(n uint64) (Result, error) {
		if n%3 == 0 {
			return Result{Skip: true}, nil
		}
		return Result{
			OK:      n%11 != 0,
			Sample:  float64(n % 5),
			Sampled: true,
		}, nil
	}

	serial := Run(Range{Start: 1, End: 5000}, 1, check)
	for _, workers := range []int{2, 4, 7} {
		parallel := Run(Range{Start: 1, End: 5000}, workers, check)
		require.Equal(t, serial.Checked, parallel.Checked, "workers=%d", workers)
		require.Equal(t, serial.Skipped, parallel.Skipped, "workers=%d", workers)
		require.Equal(t, serial.Violations, parallel.Violations, "workers=%d", workers)
		require.Equal(t, serial.MaxSample, parallel.MaxSample, "workers=%d", workers)
		require.Len(t, parallel.Samples(), len(serial.Samples()), "workers=%d", workers)
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	report := Run(Range{Start: 0, End: 10}, 2, func(n uint64) (Result, error) {
		if n == 7 {
			return Result{}, boom
		}
		return Result{OK: true}, nil
	})
	require.ErrorIs(t, report.Err(), boom)
	require.False(t, report.Passed())
}

func TestReportSummary(t *testing.T) {
	report := Run(Range{Start: 0, End: 10}, 1, func(n uint64) (Result, error) {
		return Result{OK: true, Sample: float64(n), Sampled: true}, nil
	})
	summary, err := report.Summary()
	require.NoError(t, err)
	require.Equal(t, 10, summary.Count)
	require.Equal(t, 9.0, summary.Max)
	require.Equal(t, 4.5, summary.Mean)
	require.Equal(t, 9.0, report.MaxSample)
	require.Equal(t, uint64(9), report.ArgMaxSample)

	empty := Run(Range{Start: 0, End: 3}, 1, func(n uint64) (Result, error) {
		return Result{OK: true}, nil
	})
	summary, err = empty.Summary()
	require.NoError(t, err)
	require.Zero(t, summary.Count)
}

func TestHeightUpperBoundSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 2000}, 4, HeightUpperBound)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Greater(t, report.Checked, uint64(0))
}

func TestEqualityConditionSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 1 << 11}, 4, EqualityCondition)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
}

func TestMersenneClosedFormSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 1 << 16}, 4, MersenneClosedForm)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Equal(t, uint64(15), report.Checked) // k = 2 .. 16
}

func TestFermatResonanceSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 70000}, 4, FermatResonance)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Equal(t, uint64(5), report.Checked) // F_0 .. F_4
}

func TestSequentialNormalizationSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 2000}, 4, SequentialNormalization)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
}

func TestParallelChainFamilySweep(t *testing.T) {
	report := Run(Range{Start: 0, End: 22}, 1, ParallelChainFamily)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Equal(t, uint64(10), report.Checked) // odd k in [3, 21]
	require.Equal(t, 20.0, report.MaxSample)     // L_par = k−1 at k = 21
	require.Equal(t, uint64(21), report.ArgMaxSample)
}

func TestEvenPerfectOrthogonalitySweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 10000}, 4, EvenPerfectOrthogonality)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Equal(t, uint64(4), report.Checked) // 6, 28, 496, 8128
}

func TestOddAbundanceBoundSweep(t *testing.T) {
	report := Run(Range{Start: 1, End: 20000}, 4, OddAbundanceBound)
	require.NoError(t, report.Err())
	require.True(t, report.Passed(), "violations: %v", report.First)
	require.Greater(t, report.Checked, uint64(0))
	require.Less(t, report.MaxSample, AbundanceThreshold)

	// 15 = 3 × 5 is the first BCT-perfect odd composite, with σ(15)/15 = 8/5.
	single := Run(Range{Start: 15, End: 16}, 1, OddAbundanceBound)
	require.Equal(t, uint64(1), single.Checked)
	require.InDelta(t, 1.6, single.MaxSample, 1e-12)
}

func TestFamilyM(t *testing.T) {
	require.EqualValues(t, 3, FamilyM(3).Int64())
	require.EqualValues(t, 11, FamilyM(5).Int64())
	require.EqualValues(t, 43, FamilyM(7).Int64())
}
