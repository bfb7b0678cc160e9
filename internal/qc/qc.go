package qc

import (
	"math"

	"github.com/gonum/stat"
	"github.com/montanaflynn/stats"
)

// Summary holds cohort-level descriptive statistics for one metric,
// computed over its finite values only.
type Summary struct {
	N      int
	Mean   float64
	SD     float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize describes a metric across the cohort. It fails when the
// metric has no finite values at all.
func Summarize(values []float64) (Summary, error) {
	data := stats.LoadRawData(finite(values))

	var (
		s   Summary
		err error
	)

	s.N = data.Len()

	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.SD, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}

	return s, nil
}

// FlagOutliers marks subjects whose metric lies more than nSD standard
// deviations above or below the cohort mean. Non-finite values do not
// enter the mean and are never flagged here; see FlagUndefined.
// ids and values are parallel, in cohort order.
func FlagOutliers(out Flags, ids []string, values []float64, flag string, nSD float64) {
	m, s := stat.MeanStdDev(finite(values), nil)

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < m-nSD*s || v > m+nSD*s {
			out.AddFlag(ids[i], flag)
		}
	}
}

// FlagUndefined marks subjects whose metric came out NaN or infinite,
// which happens when every step of the series was degenerate.
func FlagUndefined(out Flags, ids []string, values []float64, flag string) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.AddFlag(ids[i], flag)
		}
	}
}

// FlagDegenerate marks subjects whose step series hit an infinite
// difference. firstInf carries the per-subject index of that step,
// -1 meaning the series stayed finite throughout.
func FlagDegenerate(out Flags, ids []string, firstInf []int, flag string) {
	for i, d := range firstInf {
		if d >= 0 {
			out.AddFlag(ids[i], flag)
		}
	}
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}

	return out
}
