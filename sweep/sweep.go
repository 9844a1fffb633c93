// Package sweep implements exhaustive range verification of the structural
// claims of Binary Convolution Theory. A sweep walks a range of integers,
// evaluates a predicate on each and aggregates violations together with
// extremal examples. Ranges can be partitioned across workers; every
// aggregation is commutative, so the partition order never affects the
// report.
package sweep

import (
	"fmt"
	"sync"

	"github.com/montanaflynn/stats"
)

// Number of violations retained verbatim in a report.
const maxRecordedViolations = 16

// Result is the outcome of a predicate on a single integer.
type Result struct {
	// Skip marks integers outside the predicate's hypothesis, e.g. a
	// composite-only claim evaluated on a prime.
	Skip bool
	// OK reports whether the claim holds for this integer.
	OK bool
	// Detail describes a violation, or an extremal example worth keeping.
	Detail string
	// Sample optionally records a numeric observation (a ratio, a gap)
	// that the report summarizes. Valid only when Sampled is set.
	Sample  float64
	Sampled bool
}

// Check is a predicate evaluated on every integer of a sweep range.
type Check func(n uint64) (Result, error)

// Range is the half-open integer interval [Start, End).
type Range struct {
	Start, End uint64
}

// Violation records one integer for which a check failed.
type Violation struct {
	N      uint64
	Detail string
}

// Report aggregates the outcome of a sweep over a range.
type Report struct {
	Range      Range
	Checked    uint64 // integers matching the predicate's hypothesis
	Skipped    uint64
	Violations uint64
	// First holds the lowest-n violations, at most maxRecordedViolations.
	First []Violation
	// MaxSample and ArgMaxSample track the extremal recorded observation.
	MaxSample    float64
	ArgMaxSample uint64
	samples      []float64
	err          error
}

// Err returns the first error a check reported, if any.
func (r *Report) Err() error {
	return r.err
}

// Passed reports whether the sweep completed without violations or errors.
func (r *Report) Passed() bool {
	return r.err == nil && r.Violations == 0
}

// Samples returns the recorded observations.
func (r *Report) Samples() []float64 {
	return r.samples
}

// Summary condenses the recorded observations of a report.
type Summary struct {
	Count    int
	Max      float64
	Mean     float64
	Variance float64
}

// Summary computes summary statistics over the recorded observations.
func (r *Report) Summary() (Summary, error) {
	if len(r.samples) == 0 {
		return Summary{}, nil
	}
	mean, err := stats.Mean(r.samples)
	if err != nil {
		return Summary{}, err
	}
	variance, err := stats.PopulationVariance(r.samples)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(r.samples)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:    len(r.samples),
		Max:      max,
		Mean:     mean,
		Variance: variance,
	}, nil
}

func (r *Report) String() string {
	status := "PASS"
	if !r.Passed() {
		status = "FAIL"
	}
	return fmt.Sprintf("[%d, %d): checked=%d skipped=%d violations=%d %s",
		r.Range.Start, r.Range.End, r.Checked, r.Skipped, r.Violations, status)
}

// Run sweeps check over r using the given number of workers. The range is
// split into contiguous chunks, one per worker; workers ≤ 1 selects the
// synchronous path. The merged report is independent of completion order.
func Run(r Range, workers int, check Check) Report {
	if r.End <= r.Start {
		return Report{Range: r}
	}
	if workers <= 1 || r.End-r.Start < uint64(workers) {
		return runChunk(r, check)
	}

	span := r.End - r.Start
	chunk := span / uint64(workers)

	reports := make([]Report, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := r.Start + uint64(w)*chunk
		end := start + chunk
		if w == workers-1 {
			end = r.End
		}
		wg.Add(1)
		go func(w int, sub Range) {
			defer wg.Done()
			reports[w] = runChunk(sub, check)
		}(w, Range{Start: start, End: end})
	}
	wg.Wait()

	out := Report{Range: r}
	for i := range reports {
		out.merge(&reports[i])
	}
	return out
}

func runChunk(r Range, check Check) Report {
	report := Report{Range: r}
	for n := r.Start; n < r.End; n++ {
		res, err := check(n)
		if err != nil {
			report.err = err
			return report
		}
		if res.Skip {
			report.Skipped++
			continue
		}
		report.Checked++
		if res.Sampled {
			report.samples = append(report.samples, res.Sample)
			if len(report.samples) == 1 || res.Sample > report.MaxSample {
				report.MaxSample = res.Sample
				report.ArgMaxSample = n
			}
		}
		if !res.OK {
			report.Violations++
			if len(report.First) < maxRecordedViolations {
				report.First = append(report.First, Violation{N: n, Detail: res.Detail})
			}
		}
	}
	return report
}

// merge folds other into r. Chunks are merged in ascending range order, so
// keeping the first recorded violations preserves the lowest-n ones.
func (r *Report) merge(other *Report) {
	r.Checked += other.Checked
	r.Skipped += other.Skipped
	r.Violations += other.Violations
	for _, v := range other.First {
		if len(r.First) == maxRecordedViolations {
			break
		}
		r.First = append(r.First, v)
	}
	if len(other.samples) > 0 {
		if len(r.samples) == 0 || other.MaxSample > r.MaxSample {
			r.MaxSample = other.MaxSample
			r.ArgMaxSample = other.ArgMaxSample
		}
		r.samples = append(r.samples, other.samples...)
	}
	if r.err == nil {
		r.err = other.err
	}
}
