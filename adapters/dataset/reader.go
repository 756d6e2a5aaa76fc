package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"hirelens/domain/core"
	"hirelens/domain/hiring"
	apperrors "hirelens/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader loads the hiring-rate table from a CSV or XLSX file. The expected
// shape is a header row (country label followed by the year columns
// 2018-2023) and one row per country.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader, picking the decoder from the file extension.
// Anything that is not .xlsx is treated as CSV.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Load reads the input file into rate records ordered by country then year.
func (r *Reader) Load() ([]hiring.RateRecord, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.DataFormat(fmt.Sprintf("input file not found: %s", r.filePath))
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "xlsx":
		rows, err = r.readXLSXRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, apperrors.DataFormat("input must have a header row and at least one country row")
	}

	return r.processRows(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, apperrors.DataFormatWrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row widths are validated against the header below
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.DataFormatWrap(err, "failed to read CSV file")
	}
	return rows, nil
}

func (r *Reader) readXLSXRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.DataFormatWrap(err, "failed to open XLSX file")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, apperrors.DataFormatWrap(err, "failed to read first sheet")
	}
	return rows, nil
}

// processRows validates the header and converts data rows into records.
func (r *Reader) processRows(rows [][]string) ([]hiring.RateRecord, error) {
	yearByCol, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	seen := make(map[string]map[int]bool)
	records := make([]hiring.RateRecord, 0, (len(rows)-1)*len(yearByCol))

	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		country := NormalizeCountry(row[0])
		if country == "" {
			return nil, apperrors.DataFormat(fmt.Sprintf("row %d has an empty country name", i+2))
		}
		if seen[country] == nil {
			seen[country] = make(map[int]bool)
		}

		for col, year := range yearByCol {
			if col >= len(row) {
				continue // short row: treat trailing years as missing
			}
			raw := strings.TrimSpace(row[col])
			if raw == "" {
				continue // missing year, never imputed
			}
			rate, err := cleanRate(raw)
			if err != nil {
				return nil, apperrors.DataFormatWrap(
					core.NewNonNumericValueError(country, year, raw), "failed to parse rate")
			}
			if seen[country][year] {
				return nil, apperrors.DataFormatWrap(
					core.NewDuplicateRecordError(country, year), "duplicate input row")
			}
			seen[country][year] = true
			records = append(records, hiring.RateRecord{Country: country, Year: year, Rate: rate})
		}
	}

	if len(records) == 0 {
		return nil, apperrors.DataFormat("input contains no rate values")
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Country != records[j].Country {
			return records[i].Country < records[j].Country
		}
		return records[i].Year < records[j].Year
	})
	return records, nil
}

// parseHeader maps column index to year and requires every year of the
// dataset window to be present.
func parseHeader(header []string) (map[int]int, error) {
	if len(header) < 2 {
		return nil, apperrors.DataFormat("header must have a country column and year columns")
	}

	yearByCol := make(map[int]int)
	found := make(map[int]bool)
	for col, cell := range header[1:] {
		label := strings.TrimSpace(cell)
		if label == "" {
			continue
		}
		year, err := strconv.Atoi(label)
		if err != nil {
			return nil, apperrors.DataFormat(fmt.Sprintf("header column %q is not a year", label))
		}
		if year < hiring.MinYear || year > hiring.MaxYear {
			return nil, apperrors.DataFormatWrap(core.ErrYearOutOfRange,
				fmt.Sprintf("header year %d outside %d-%d", year, hiring.MinYear, hiring.MaxYear))
		}
		if found[year] {
			return nil, apperrors.DataFormat(fmt.Sprintf("header repeats year %d", year))
		}
		found[year] = true
		yearByCol[col+1] = year
	}

	for year := hiring.MinYear; year <= hiring.MaxYear; year++ {
		if !found[year] {
			return nil, apperrors.DataFormatWrap(core.NewMissingYearError(year), "incomplete header")
		}
	}
	return yearByCol, nil
}

// cleanRate parses a rate cell, tolerating a trailing percent sign the way
// the reference dataset formats its values.
func cleanRate(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	return strconv.ParseFloat(raw, 64)
}

// NormalizeCountry trims the name and collapses internal whitespace runs so
// "United  States " and "United States" key the same country.
func NormalizeCountry(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// CountryCount returns the number of distinct countries in the records.
func CountryCount(records []hiring.RateRecord) int {
	countries := make(map[string]bool)
	for _, rec := range records {
		countries[rec.Country] = true
	}
	return len(countries)
}
