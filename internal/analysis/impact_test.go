package analysis

import (
	"math"
	"reflect"
	"testing"

	"hirelens/domain/hiring"
	"hirelens/internal/testkit"
)

func metricFor(t *testing.T, pre, during, post float64) hiring.ImpactMetric {
	t.Helper()
	series := hiring.CountrySeries{
		Country: "Testland",
		Records: testkit.ConstantSeries("Testland", pre, during, post),
	}
	return ComputeImpact(Segment(series))
}

func TestComputeImpact_ExactScores(t *testing.T) {
	// Pre mean 1.0, During mean 0.8: impact must be exactly -20%.
	m := metricFor(t, 1.0, 0.8, 1.0)

	if !m.ImpactDefined {
		t.Fatal("impact should be defined")
	}
	if math.Abs(m.ImpactPct+20.0) > 1e-9 {
		t.Errorf("impact = %.12f, want -20 exactly", m.ImpactPct)
	}
	if !m.RecoveryDefined {
		t.Fatal("recovery should be defined")
	}
	if math.Abs(m.RecoveryPct-25.0) > 1e-9 {
		t.Errorf("recovery = %.12f, want 25 exactly", m.RecoveryPct)
	}
}

func TestComputeImpact_ZeroPreMeanFlagsUndefined(t *testing.T) {
	m := metricFor(t, 0.0, 0.8, 1.0)

	if m.ImpactDefined {
		t.Fatal("impact against a zero pre mean must be flagged undefined")
	}
	if math.IsNaN(m.ImpactPct) || math.IsInf(m.ImpactPct, 0) {
		t.Errorf("undefined impact must not leak NaN/Inf, got %g", m.ImpactPct)
	}

	// Excluded from ranking, included in the raw metrics.
	ranked := hiring.RankByImpact([]hiring.ImpactMetric{m})
	if len(ranked) != 0 {
		t.Errorf("undefined impact must be excluded from ranking, got %d entries", len(ranked))
	}
	if m.Country != "Testland" {
		t.Errorf("metric should still carry the country, got %q", m.Country)
	}
}

func TestComputeImpact_NearZeroDenominator(t *testing.T) {
	m := metricFor(t, 1e-12, 0.8, 1.0)
	if m.ImpactDefined {
		t.Error("near-zero pre mean must flag the impact undefined")
	}

	m = metricFor(t, 1.0, 0.0, 1.0)
	if m.RecoveryDefined {
		t.Error("zero during mean must flag the recovery undefined")
	}
	if !m.ImpactDefined {
		t.Error("impact stays defined when only the during mean is zero")
	}
	if math.Abs(m.ImpactPct+100.0) > 1e-9 {
		t.Errorf("impact = %.12f, want -100", m.ImpactPct)
	}
}

func TestComputeImpact_WelchTestAttached(t *testing.T) {
	series := hiring.CountrySeries{
		Country: "Testland",
		Records: []hiring.RateRecord{
			{Country: "Testland", Year: 2018, Rate: 1.5},
			{Country: "Testland", Year: 2019, Rate: 1.6},
			{Country: "Testland", Year: 2020, Rate: 1.0},
			{Country: "Testland", Year: 2021, Rate: 1.1},
			{Country: "Testland", Year: 2022, Rate: 1.05},
			{Country: "Testland", Year: 2023, Rate: 1.4},
		},
	}
	m := ComputeImpact(Segment(series))

	if !m.PValid {
		t.Fatal("expected a valid p-value for 2-vs-3 samples")
	}
	if m.PValue <= 0 || m.PValue >= 1 {
		t.Errorf("p-value out of range: %g", m.PValue)
	}
	if m.TStatistic <= 0 {
		t.Errorf("pre mean above during mean should give positive t, got %g", m.TStatistic)
	}
}

func TestComputeImpact_MissingPostPeriod(t *testing.T) {
	series := hiring.CountrySeries{
		Country: "Testland",
		Records: []hiring.RateRecord{
			{Country: "Testland", Year: 2018, Rate: 1.0},
			{Country: "Testland", Year: 2019, Rate: 1.0},
			{Country: "Testland", Year: 2020, Rate: 0.8},
			{Country: "Testland", Year: 2021, Rate: 0.8},
			{Country: "Testland", Year: 2022, Rate: 0.8},
		},
	}
	m := ComputeImpact(Segment(series))

	if !m.ImpactDefined {
		t.Error("impact should be defined without a post period")
	}
	if m.RecoveryDefined {
		t.Error("recovery cannot be defined without post values")
	}
}

func TestComputeAllImpacts_Deterministic(t *testing.T) {
	records := testkit.GenerateRecords(42, 28)
	series := GroupByCountry(records)

	first := ComputeAllImpacts(series)
	second := ComputeAllImpacts(series)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must yield identical metrics")
	}
	if len(first) != 28 {
		t.Fatalf("expected 28 metrics, got %d", len(first))
	}
}
