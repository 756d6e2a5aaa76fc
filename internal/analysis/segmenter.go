package analysis

import (
	"sort"

	"hirelens/domain/hiring"
)

// GroupByCountry folds flat rate records into per-country series, sorted by
// country name with records ordered by year.
func GroupByCountry(records []hiring.RateRecord) []hiring.CountrySeries {
	byCountry := make(map[string][]hiring.RateRecord)
	for _, rec := range records {
		byCountry[rec.Country] = append(byCountry[rec.Country], rec)
	}

	names := make([]string, 0, len(byCountry))
	for name := range byCountry {
		names = append(names, name)
	}
	sort.Strings(names)

	series := make([]hiring.CountrySeries, 0, len(names))
	for _, name := range names {
		recs := byCountry[name]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
		series = append(series, hiring.CountrySeries{Country: name, Records: recs})
	}
	return series
}

// Segment partitions one country's series into the three fixed period
// buckets. Every period appears exactly once, in chronological order, even
// when the country contributed no values to it. Years outside the dataset
// window are dropped (the loader already rejects them).
func Segment(series hiring.CountrySeries) []hiring.PeriodSegment {
	byPeriod := make(map[hiring.Period]*hiring.PeriodSegment, len(hiring.AllPeriods))
	segments := make([]hiring.PeriodSegment, 0, len(hiring.AllPeriods))
	for _, p := range hiring.AllPeriods {
		segments = append(segments, hiring.PeriodSegment{Country: series.Country, Period: p})
	}
	for i := range segments {
		byPeriod[segments[i].Period] = &segments[i]
	}

	for _, rec := range series.Records {
		period, ok := hiring.PeriodFor(rec.Year)
		if !ok {
			continue
		}
		seg := byPeriod[period]
		seg.Years = append(seg.Years, rec.Year)
		seg.Values = append(seg.Values, rec.Rate)
	}
	return segments
}

// SegmentAll segments every country's series.
func SegmentAll(series []hiring.CountrySeries) map[string][]hiring.PeriodSegment {
	out := make(map[string][]hiring.PeriodSegment, len(series))
	for _, cs := range series {
		out[cs.Country] = Segment(cs)
	}
	return out
}
