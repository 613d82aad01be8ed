// Package stats keeps running summaries of search runs, such as node counts
// and final lower bounds over a batch of puzzles.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Running is a one-pass mean and variance (Welford's algorithm) with the
// extremes seen so far.
type Running struct {
	n        int
	mean     float64
	m2       float64
	min, max float64
}

func (r *Running) Push(v float64) {
	r.n++
	if r.n == 1 {
		r.mean, r.m2, r.min, r.max = v, 0, v, v
		return
	}
	delta := v - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (v - r.mean)
	r.min = math.Min(r.min, v)
	r.max = math.Max(r.max, v)
}

func (r *Running) N() int { return r.n }

func (r *Running) Mean() float64 {
	if r.n == 0 {
		return 0
	}
	return r.mean
}

// Variance is the sample variance.
func (r *Running) Variance() float64 {
	if r.n <= 1 {
		return 0
	}
	return r.m2 / float64(r.n-1)
}

func (r *Running) Stdev() float64 {
	return math.Sqrt(r.Variance())
}

func (r *Running) Min() float64 { return r.min }
func (r *Running) Max() float64 { return r.max }

// StandardError of the mean.
func (r *Running) StandardError() float64 {
	if r.n == 0 {
		return 0
	}
	return math.Sqrt(r.Variance() / float64(r.n))
}

// ZVal returns the two-tailed Z-value for a confidence level given in
// percent.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// Interval is the half-width of the confidence interval around the mean.
func (r *Running) Interval(confidence float64) float64 {
	return ZVal(confidence) * r.StandardError()
}

func (r *Running) String() string {
	return fmt.Sprintf("%.2f ± %.2f (95%%) [%.0f, %.0f] over %d",
		r.Mean(), r.Interval(95), r.min, r.max, r.n)
}
