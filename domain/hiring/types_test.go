package hiring

import (
	"testing"
)

func TestPeriodFor_MapsEveryDatasetYear(t *testing.T) {
	cases := map[int]Period{
		2018: PeriodPre,
		2019: PeriodPre,
		2020: PeriodDuring,
		2021: PeriodDuring,
		2022: PeriodDuring,
		2023: PeriodPost,
	}
	for year, want := range cases {
		got, ok := PeriodFor(year)
		if !ok {
			t.Fatalf("PeriodFor(%d) reported out of range", year)
		}
		if got != want {
			t.Errorf("PeriodFor(%d) = %s, want %s", year, got, want)
		}
	}

	for _, year := range []int{2017, 2024, 0} {
		if _, ok := PeriodFor(year); ok {
			t.Errorf("PeriodFor(%d) should be out of range", year)
		}
	}
}

func TestPeriodYears_CoverWindowExactlyOnce(t *testing.T) {
	seen := make(map[int]Period)
	for _, p := range AllPeriods {
		for _, year := range p.Years() {
			if prev, dup := seen[year]; dup {
				t.Fatalf("year %d in both %s and %s", year, prev, p)
			}
			seen[year] = p
		}
	}
	for year := MinYear; year <= MaxYear; year++ {
		if _, ok := seen[year]; !ok {
			t.Errorf("year %d not covered by any period", year)
		}
	}
}

func TestRankByImpact_TiesResolveByName(t *testing.T) {
	metrics := []ImpactMetric{
		{Country: "Sweden", ImpactPct: -10, ImpactDefined: true},
		{Country: "Brazil", ImpactPct: -25, ImpactDefined: true},
		{Country: "Norway", ImpactPct: -10, ImpactDefined: true},
		{Country: "Malta", ImpactPct: 0, ImpactDefined: false}, // undefined, excluded
	}

	ranked := RankByImpact(metrics)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked countries, got %d", len(ranked))
	}
	want := []string{"Brazil", "Norway", "Sweden"}
	for i, name := range want {
		if ranked[i].Country != name {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Country, name)
		}
	}
}

func TestTopImpacted_LengthIsMinOfTenAndDefined(t *testing.T) {
	metrics := []ImpactMetric{
		{Country: "A", ImpactPct: -1, ImpactDefined: true},
		{Country: "B", ImpactPct: -2, ImpactDefined: true},
		{Country: "C", ImpactDefined: false},
	}
	if got := len(TopImpacted(metrics, 10)); got != 2 {
		t.Errorf("expected min(10, defined)=2, got %d", got)
	}

	many := make([]ImpactMetric, 15)
	for i := range many {
		many[i] = ImpactMetric{Country: string(rune('A' + i)), ImpactPct: float64(i), ImpactDefined: true}
	}
	top := TopImpacted(many, 10)
	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	if top[0].Country != "A" {
		t.Errorf("most negative should rank first, got %s", top[0].Country)
	}
}
