package dataset

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "hirelens/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCSV(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022,2023
India,1.5,1.6,1.2,1.3,1.4,1.7
Brazil,1.1,1.2,0.9,1.0,1.05,1.3
`)

	records, err := NewReader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 12)

	// Sorted by country then year.
	assert.Equal(t, "Brazil", records[0].Country)
	assert.Equal(t, 2018, records[0].Year)
	assert.InDelta(t, 1.1, records[0].Rate, 1e-12)
	assert.Equal(t, "India", records[6].Country)
	assert.Equal(t, 2023, records[11].Year)
	assert.InDelta(t, 1.7, records[11].Rate, 1e-12)

	assert.Equal(t, 2, CountryCount(records))
}

func TestLoad_AcceptsPercentSuffixedValues(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022,2023
Canada,1.2%,1.3%,0.9%,1.0%,1.1%,1.4%
`)

	records, err := NewReader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.InDelta(t, 1.2, records[0].Rate, 1e-12)
}

func TestLoad_MissingYearColumnFails(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022
Canada,1.2,1.3,0.9,1.0,1.1
`)

	_, err := NewReader(path).Load()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDataFormat, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "2023")
}

func TestLoad_NonNumericValueFails(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022,2023
Canada,1.2,oops,0.9,1.0,1.1,1.4
`)

	_, err := NewReader(path).Load()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDataFormat, apperrors.GetCode(err))
}

func TestLoad_DuplicateCountryRowFails(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022,2023
Canada,1.2,1.3,0.9,1.0,1.1,1.4
Canada,1.0,1.0,1.0,1.0,1.0,1.0
`)

	_, err := NewReader(path).Load()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDataFormat, apperrors.GetCode(err))
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).Load()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDataFormat, apperrors.GetCode(err))
}

func TestLoad_EmptyCellsAreSkipped(t *testing.T) {
	path := writeTempCSV(t, `Country,2018,2019,2020,2021,2022,2023
Canada,1.2,,0.9,1.0,1.1,1.4
`)

	records, err := NewReader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 5)
	for _, rec := range records {
		assert.NotEqual(t, 2019, rec.Year)
	}
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1",
		&[]interface{}{"Country", 2018, 2019, 2020, 2021, 2022, 2023}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2",
		&[]interface{}{"Singapore", 1.3, 1.4, 1.1, 1.2, 1.25, 1.5}))

	path := filepath.Join(t.TempDir(), "rates.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := NewReader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, "Singapore", records[0].Country)
	assert.InDelta(t, 1.3, records[0].Rate, 1e-9)
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "United States", NormalizeCountry("  United   States "))
	assert.Equal(t, "Brazil", NormalizeCountry("Brazil"))
	assert.Equal(t, "", NormalizeCountry("   "))
}
