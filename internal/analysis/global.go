package analysis

import (
	"hirelens/adapters/stats"
	"hirelens/domain/hiring"
)

// ComputeGlobalMetrics aggregates the cross-country picture: distribution
// of the defined impact scores, the extreme countries, and a pooled Welch
// test of every country's Pre values against every country's During values.
// Ties for most/least impacted resolve by country name.
func ComputeGlobalMetrics(metrics []hiring.ImpactMetric, series []hiring.CountrySeries) hiring.GlobalMetrics {
	var global hiring.GlobalMetrics

	impacts := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		if !m.ImpactDefined {
			continue
		}
		impacts = append(impacts, m.ImpactPct)
		if global.MostImpactedCountry == "" || less(m, global.MostImpactedPct, global.MostImpactedCountry) {
			global.MostImpactedCountry = m.Country
			global.MostImpactedPct = m.ImpactPct
		}
		if global.LeastImpactedCountry == "" || greater(m, global.LeastImpactedPct, global.LeastImpactedCountry) {
			global.LeastImpactedCountry = m.Country
			global.LeastImpactedPct = m.ImpactPct
		}
	}

	dist := stats.DescribeValues(impacts)
	global.MeanImpactPct = dist.Mean
	global.MedianImpactPct = dist.Median
	global.StdDevImpactPct = dist.StdDev

	preValues, duringValues := pooledPeriodValues(series)
	global.PreSampleSize = len(preValues)
	global.DuringSample = len(duringValues)
	if test := stats.WelchTTest(preValues, duringValues); test.Valid {
		global.TStatistic = test.T
		global.PValue = test.P
		global.PValid = true
	}
	return global
}

// AggregatePeriodMeans collects, per period, the mean rate of every country
// that contributed values to that period. Feeds the distribution box plot.
func AggregatePeriodMeans(series []hiring.CountrySeries) hiring.PeriodDistribution {
	dist := make(hiring.PeriodDistribution, len(hiring.AllPeriods))
	for _, cs := range series {
		for _, seg := range Segment(cs) {
			if ps := stats.Describe(seg); ps.N > 0 {
				dist[seg.Period] = append(dist[seg.Period], ps.Mean)
			}
		}
	}
	return dist
}

func pooledPeriodValues(series []hiring.CountrySeries) (pre, during []float64) {
	for _, cs := range series {
		for _, seg := range Segment(cs) {
			switch seg.Period {
			case hiring.PeriodPre:
				pre = append(pre, seg.Values...)
			case hiring.PeriodDuring:
				during = append(during, seg.Values...)
			}
		}
	}
	return pre, during
}

func less(m hiring.ImpactMetric, best float64, bestCountry string) bool {
	if m.ImpactPct != best {
		return m.ImpactPct < best
	}
	return m.Country < bestCountry
}

func greater(m hiring.ImpactMetric, best float64, bestCountry string) bool {
	if m.ImpactPct != best {
		return m.ImpactPct > best
	}
	return m.Country < bestCountry
}
