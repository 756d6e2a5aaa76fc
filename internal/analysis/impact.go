package analysis

import (
	"hirelens/adapters/stats"
	"hirelens/domain/hiring"
)

// NearZero is the absolute threshold below which a period mean cannot serve
// as a change denominator. Scores against such a mean are flagged undefined
// instead of propagating infinities.
const NearZero = 1e-9

// ComputeImpact derives one country's impact metric from its three period
// segments: period means, the Pre-vs-During Welch test, and the relative
// change scores as percentages.
//
// An undefined score (near-zero denominator or empty period) keeps the
// country in the output with the corresponding Defined flag unset; it never
// aborts the run.
func ComputeImpact(segments []hiring.PeriodSegment) hiring.ImpactMetric {
	var pre, during, post hiring.PeriodSegment
	for _, seg := range segments {
		switch seg.Period {
		case hiring.PeriodPre:
			pre = seg
		case hiring.PeriodDuring:
			during = seg
		case hiring.PeriodPost:
			post = seg
		}
	}

	metric := hiring.ImpactMetric{Country: country(segments)}

	preStats := stats.Describe(pre)
	duringStats := stats.Describe(during)
	postStats := stats.Describe(post)
	metric.PreMean = preStats.Mean
	metric.DuringMean = duringStats.Mean
	metric.PostMean = postStats.Mean

	if preStats.N > 0 && duringStats.N > 0 {
		metric.ImpactPct, metric.ImpactDefined = relativeChangePct(duringStats.Mean, preStats.Mean)
	}
	if duringStats.N > 0 && postStats.N > 0 {
		metric.RecoveryPct, metric.RecoveryDefined = relativeChangePct(postStats.Mean, duringStats.Mean)
	}

	if test := stats.WelchTTest(pre.Values, during.Values); test.Valid {
		metric.TStatistic = test.T
		metric.PValue = test.P
		metric.PValid = true
	}
	return metric
}

// ComputeAllImpacts computes metrics for every country, ordered by name.
func ComputeAllImpacts(series []hiring.CountrySeries) []hiring.ImpactMetric {
	metrics := make([]hiring.ImpactMetric, 0, len(series))
	for _, cs := range series {
		metrics = append(metrics, ComputeImpact(Segment(cs)))
	}
	return metrics
}

// relativeChangePct returns (to-from)/from as a percentage. The bool is
// false when from is too close to zero to divide by.
func relativeChangePct(to, from float64) (float64, bool) {
	if from < NearZero && from > -NearZero {
		return 0, false
	}
	return (to - from) / from * 100, true
}

func country(segments []hiring.PeriodSegment) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[0].Country
}
