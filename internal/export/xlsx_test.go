package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
)

func testReport(t *testing.T) *pipeline.Report {
	t.Helper()

	sellers := []pipeline.SellerReport{
		{
			SellerRollup: pipeline.SellerRollup{
				SellerID:   "s1",
				Price:      pipeline.Stats{Sum: 1200, Mean: 600, Max: 800, Min: 400},
				Freight:    pipeline.Stats{Sum: 60, Mean: 30, Max: 40, Min: 20},
				ProductIDs: []string{"p1", "p2"},
				Categories: []string{"toys", "garden"},
			},
			City:  "sao paulo",
			State: "SP",
		},
	}
	customers := []pipeline.CustomerReport{
		{
			OrderRollup: pipeline.OrderRollup{
				OrderID:    "o1",
				Payment:    pipeline.Stats{Sum: 5500, Mean: 5500, Max: 5500, Min: 5500},
				Categories: []string{"toys"},
			},
			CustomerID: "c1",
			City:       "curitiba",
			State:      "PR",
		},
	}

	sellerSeg, err := pipeline.SegmentSellers(sellers, models.DefaultSellerThresholds)
	require.NoError(t, err)
	customerSeg, err := pipeline.SegmentCustomers(customers, models.DefaultCustomerThresholds)
	require.NoError(t, err)

	sellerCities := pipeline.SellerCityRollups(sellers, 8)
	customerCities := pipeline.CustomerCityRollups(customers, 8)

	return &pipeline.Report{
		Sellers:                sellers,
		Customers:              customers,
		SellerCities:           sellerCities,
		CustomerCities:         customerCities,
		SellerCityCategories:   pipeline.RankCityCategories(sellerCities, 10),
		CustomerCityCategories: pipeline.RankCityCategories(customerCities, 10),
		SellerSegments:         sellerSeg,
		CustomerSegments:       customerSeg,
	}
}

func TestWriteWorkbookCreatesEverySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(testReport(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{
		sheetSellers, sheetCustomers, sheetSellerCities,
		sheetCustomerCities, sheetCategories,
		sheetSellerSegments, sheetCustomerSegments,
	} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1")
}

func TestWriteWorkbookSellerRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(testReport(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	id, err := f.GetCellValue(sheetSellers, "A2")
	require.NoError(t, err)
	assert.Equal(t, "s1", id)

	sum, err := f.GetCellValue(sheetSellers, "D2")
	require.NoError(t, err)
	assert.Equal(t, "1200", sum)
}

func TestWriteWorkbookMergesCustomerTopBands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(testReport(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetCustomerSegments)
	require.NoError(t, err)
	// header + six rows: five lower bands plus the merged top band
	require.Len(t, rows, 7)

	lastBand := rows[6][0]
	assert.Equal(t, "Klaster VI + Klaster VII", lastBand)

	// the 5500 customer lands in the merged slice
	assert.Equal(t, "1", rows[6][3])
}

func TestWriteWorkbookSellerSegmentsKeepAllBands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(testReport(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetSellerSegments)
	require.NoError(t, err)
	require.Len(t, rows, 1+pipeline.SegmentCount)
	assert.Equal(t, "Klaster VII", rows[pipeline.SegmentCount][0])
}

func TestWriteWorkbookCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(testReport(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetCategories)
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	assert.Equal(t, []string{"Group", "City", "Category", "Count"}, rows[0])
	assert.Equal(t, "seller", rows[1][0])
}
