// Package testkit generates deterministic synthetic hiring-rate datasets
// for tests: a configurable number of countries with a baseline rate, a
// dip through 2020-2022, and a 2023 rebound.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"hirelens/domain/hiring"
)

// countryNames are the 28 geographies of the reference dataset.
var countryNames = []string{
	"Australia", "Belgium", "Brazil", "Canada", "China", "Denmark",
	"Finland", "France", "Germany", "India", "Ireland", "Israel",
	"Italy", "Japan", "Netherlands", "New Zealand", "Norway", "Poland",
	"Portugal", "Singapore", "South Africa", "South Korea", "Spain",
	"Sweden", "Switzerland", "United Arab Emirates", "United Kingdom",
	"United States",
}

// CountryNames returns the first n reference country names. Requests beyond
// the reference list are padded with numbered placeholders.
func CountryNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(countryNames) {
			names = append(names, countryNames[i])
		} else {
			names = append(names, fmt.Sprintf("Country %02d", i+1))
		}
	}
	return names
}

// GenerateRecords produces a complete seeded dataset: every country gets
// one rate per year 2018-2023, drawn around a baseline near 1.0 with a
// COVID-period dip and a post-period rebound.
func GenerateRecords(seed int64, countries int) []hiring.RateRecord {
	rng := rand.New(rand.NewSource(seed))
	records := make([]hiring.RateRecord, 0, countries*(hiring.MaxYear-hiring.MinYear+1))

	for _, country := range CountryNames(countries) {
		baseline := 0.8 + rng.Float64()*0.8 // 0.8 - 1.6
		dip := 0.5 + rng.Float64()*0.4      // multiplier during COVID
		rebound := 0.9 + rng.Float64()*0.5  // multiplier post COVID

		for year := hiring.MinYear; year <= hiring.MaxYear; year++ {
			period, _ := hiring.PeriodFor(year)
			rate := baseline
			switch period {
			case hiring.PeriodDuring:
				rate = baseline * dip
			case hiring.PeriodPost:
				rate = baseline * rebound
			}
			rate += (rng.Float64() - 0.5) * 0.05 // small per-year noise
			records = append(records, hiring.RateRecord{Country: country, Year: year, Rate: rate})
		}
	}
	return records
}

// WriteCSV writes records in the loader's input shape: header row with the
// country column and one column per year, one row per country.
func WriteCSV(path string, records []hiring.RateRecord) error {
	byCountry := make(map[string]map[int]float64)
	order := make([]string, 0)
	for _, rec := range records {
		if byCountry[rec.Country] == nil {
			byCountry[rec.Country] = make(map[int]float64)
			order = append(order, rec.Country)
		}
		byCountry[rec.Country][rec.Year] = rec.Rate
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"Country"}
	for year := hiring.MinYear; year <= hiring.MaxYear; year++ {
		header = append(header, strconv.Itoa(year))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, country := range order {
		row := []string{country}
		for year := hiring.MinYear; year <= hiring.MaxYear; year++ {
			if rate, ok := byCountry[country][year]; ok {
				row = append(row, strconv.FormatFloat(rate, 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ConstantSeries returns records for one country with fixed per-period
// rates, for hand-computed expectations in tests.
func ConstantSeries(country string, preRate, duringRate, postRate float64) []hiring.RateRecord {
	records := make([]hiring.RateRecord, 0, 6)
	for year := hiring.MinYear; year <= hiring.MaxYear; year++ {
		period, _ := hiring.PeriodFor(year)
		rate := preRate
		switch period {
		case hiring.PeriodDuring:
			rate = duringRate
		case hiring.PeriodPost:
			rate = postRate
		}
		records = append(records, hiring.RateRecord{Country: country, Year: year, Rate: rate})
	}
	return records
}
