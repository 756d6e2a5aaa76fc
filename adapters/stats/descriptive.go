package stats

import (
	"hirelens/domain/hiring"

	mstats "github.com/montanaflynn/stats"
)

// Describe computes the descriptive statistics of one period segment.
// Empty segments yield N=0 with zero mean; segments of one value yield a
// zero standard deviation.
func Describe(seg hiring.PeriodSegment) hiring.PeriodStats {
	ps := hiring.PeriodStats{Period: seg.Period, N: len(seg.Values)}
	if ps.N == 0 {
		return ps
	}

	mean, _ := mstats.Mean(seg.Values)
	ps.Mean = mean
	if ps.N > 1 {
		sd, _ := mstats.StandardDeviationSample(seg.Values)
		ps.StdDev = sd
	}
	return ps
}

// Distribution summarizes a cross-country value set for reporting.
type Distribution struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	N      int
}

// DescribeValues summarizes an arbitrary value slice.
func DescribeValues(values []float64) Distribution {
	d := Distribution{N: len(values)}
	if d.N == 0 {
		return d
	}
	d.Mean, _ = mstats.Mean(values)
	d.Median, _ = mstats.Median(values)
	d.Min, _ = mstats.Min(values)
	d.Max, _ = mstats.Max(values)
	if d.N > 1 {
		d.StdDev, _ = mstats.StandardDeviationSample(values)
	}
	return d
}
