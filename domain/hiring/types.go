package hiring

import (
	"sort"
)

// Year bounds of the dataset. Every input row must stay inside this window.
const (
	MinYear = 2018
	MaxYear = 2023
)

// DefaultExpectedCountries is the number of countries the reference dataset
// covers. The loader warns (but does not fail) when the input differs.
const DefaultExpectedCountries = 28

// Period identifies one of the three fixed COVID windows.
type Period string

const (
	PeriodPre    Period = "pre_covid"    // 2018-2019
	PeriodDuring Period = "during_covid" // 2020-2022
	PeriodPost   Period = "post_covid"   // 2023
)

// AllPeriods lists the periods in chronological order.
var AllPeriods = []Period{PeriodPre, PeriodDuring, PeriodPost}

// Label returns the human-readable period name used in charts and reports.
func (p Period) Label() string {
	switch p {
	case PeriodPre:
		return "Pre-COVID"
	case PeriodDuring:
		return "During COVID"
	case PeriodPost:
		return "Post-COVID"
	default:
		return string(p)
	}
}

// Years returns the calendar years the period covers.
func (p Period) Years() []int {
	switch p {
	case PeriodPre:
		return []int{2018, 2019}
	case PeriodDuring:
		return []int{2020, 2021, 2022}
	case PeriodPost:
		return []int{2023}
	default:
		return nil
	}
}

// PeriodFor maps a calendar year to its period. The second return value is
// false for years outside the dataset window.
func PeriodFor(year int) (Period, bool) {
	switch {
	case year == 2018 || year == 2019:
		return PeriodPre, true
	case year >= 2020 && year <= 2022:
		return PeriodDuring, true
	case year == 2023:
		return PeriodPost, true
	default:
		return "", false
	}
}

// RateRecord is one observed relative AI hiring rate for a country-year.
// Exactly one record exists per (country, year) pair.
type RateRecord struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Rate    float64 `json:"rate"`
}

// CountrySeries groups one country's records, ordered by year.
type CountrySeries struct {
	Country string       `json:"country"`
	Records []RateRecord `json:"records"`
}

// PeriodSegment holds the rates a country contributed to one period.
// Values and Years are parallel and ordered by year. Missing years simply
// contribute fewer values; nothing is imputed.
type PeriodSegment struct {
	Country string    `json:"country"`
	Period  Period    `json:"period"`
	Years   []int     `json:"years"`
	Values  []float64 `json:"values"`
}

// PeriodStats are the descriptive statistics of one segment.
type PeriodStats struct {
	Period Period  `json:"period"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	N      int     `json:"n"`
}

// ImpactMetric is the per-country outcome of the pipeline: period means,
// relative change scores, and the Pre-vs-During significance test.
//
// Impact and recovery are percentages. When a denominator is zero or
// near-zero the corresponding Defined flag is false and the percentage
// must be ignored; the country stays in the report but is excluded from
// ranking. PValid is false when either sample was too small for a t-test.
type ImpactMetric struct {
	Country string `json:"country"`

	PreMean    float64 `json:"pre_covid_mean"`
	DuringMean float64 `json:"during_covid_mean"`
	PostMean   float64 `json:"post_covid_mean"`

	ImpactPct       float64 `json:"impact_pct"`
	ImpactDefined   bool    `json:"impact_defined"`
	RecoveryPct     float64 `json:"recovery_pct"`
	RecoveryDefined bool    `json:"recovery_defined"`

	TStatistic float64 `json:"t_statistic"`
	PValue     float64 `json:"p_value"`
	PValid     bool    `json:"p_valid"`
}

// GlobalMetrics aggregates the cross-country picture: distribution of the
// impact scores, the extremes, and a pooled Pre-vs-During significance test
// over every country's raw rates.
type GlobalMetrics struct {
	MeanImpactPct   float64 `json:"mean_impact_pct"`
	MedianImpactPct float64 `json:"median_impact_pct"`
	StdDevImpactPct float64 `json:"std_dev_impact_pct"`

	MostImpactedCountry  string  `json:"most_impacted_country"`
	MostImpactedPct      float64 `json:"most_impacted_pct"`
	LeastImpactedCountry string  `json:"least_impacted_country"`
	LeastImpactedPct     float64 `json:"least_impacted_pct"`

	TStatistic    float64 `json:"t_statistic"`
	PValue        float64 `json:"p_value"`
	PValid        bool    `json:"p_valid"`
	PreSampleSize int     `json:"pre_sample_size"`
	DuringSample  int     `json:"during_sample_size"`
}

// PeriodDistribution carries, per period, the per-country mean rates used
// for the cross-country distribution chart.
type PeriodDistribution map[Period][]float64

// RankByImpact returns the countries with a defined impact score sorted
// ascending by score (most negative first). Ties resolve by country name so
// the ordering is total and deterministic.
func RankByImpact(metrics []ImpactMetric) []ImpactMetric {
	ranked := make([]ImpactMetric, 0, len(metrics))
	for _, m := range metrics {
		if m.ImpactDefined {
			ranked = append(ranked, m)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ImpactPct != ranked[j].ImpactPct {
			return ranked[i].ImpactPct < ranked[j].ImpactPct
		}
		return ranked[i].Country < ranked[j].Country
	})
	return ranked
}

// TopImpacted returns the n most-negative entries of the impact ranking.
// The result length is min(n, countries with a defined score).
func TopImpacted(metrics []ImpactMetric, n int) []ImpactMetric {
	ranked := RankByImpact(metrics)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
