package interp

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/constraints"
)

// Diff is one cell of the difference tableau built by NevilleDiffs. C is the
// correction to add to the previous row's cell at the same column to reach
// this row's interpolant, D the correction to add to the previous row's cell
// one column to the right. The two paths are equal in exact arithmetic and
// diverge under rounding.
type Diff[T constraints.Float] struct {
	C, D T
}

// NevilleDiffs builds the same triangular tableau as Neville but stores, for
// each cell, the two corrections relative to the previous row instead of the
// absolute interpolant value. Row 0 holds (y, y) for each sample.
//
// Summing the C components down the leftmost column starting from the first
// ordinate reconstructs the interpolated value, as does summing the D
// components down the rightmost diagonal starting from the last ordinate.
// Any consistent mixed path gives the same value up to rounding; which path
// accumulates the least rounding error depends on the data, so both
// corrections are exposed and the choice is left to the caller.
func NevilleDiffs[T constraints.Float](points []Point[T], x T) (tableau [][]Diff[T], err error) {
	if err = checkPoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	tableau = make([][]Diff[T], n)

	row := make([]Diff[T], n)
	for i := range points {
		row[i] = Diff[T]{C: points[i].Y, D: points[i].Y}
	}
	tableau[0] = row

	for k := 1; k < n; k++ {
		prev := tableau[k-1]
		row = make([]Diff[T], n-k)
		for i := range row {
			xj, xi := points[i].X, points[i+k].X
			t := (prev[i+1].C - prev[i].D) / (xj - xi)
			row[i] = Diff[T]{C: (xj - x) * t, D: (xi - x) * t}
		}
		tableau[k] = row
	}

	return tableau, nil
}

// CorrectionSummary describes the magnitudes of the corrections of a
// difference tableau, over all rows past the first.
type CorrectionSummary struct {
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// SummarizeCorrections returns descriptive statistics over the absolute C and
// D corrections of a tableau built by NevilleDiffs. It only restates what the
// tableau already exposes, per step; it is not an error bound. A tableau of a
// single sample has no corrections and is rejected.
func SummarizeCorrections[T constraints.Float](tableau [][]Diff[T]) (CorrectionSummary, error) {
	if len(tableau) < 2 {
		return CorrectionSummary{}, fmt.Errorf("tableau of %d row(s) has no corrections to summarize", len(tableau))
	}
	mags := make([]float64, 0, len(tableau)*(len(tableau)-1))
	for _, row := range tableau[1:] {
		for _, d := range row {
			mags = append(mags, math.Abs(float64(d.C)), math.Abs(float64(d.D)))
		}
	}

	var s CorrectionSummary
	var err error
	if s.Max, err = stats.Max(mags); err != nil {
		return CorrectionSummary{}, err
	}
	if s.Mean, err = stats.Mean(mags); err != nil {
		return CorrectionSummary{}, err
	}
	if s.Median, err = stats.Median(mags); err != nil {
		return CorrectionSummary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(mags); err != nil {
		return CorrectionSummary{}, err
	}
	return s, nil
}
