package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
)

func testReport(t *testing.T) *pipeline.Report {
	t.Helper()

	sellers := []pipeline.SellerReport{
		{SellerRollup: pipeline.SellerRollup{SellerID: "s1", Price: pipeline.Stats{Sum: 1200}}, City: "sao paulo", State: "SP"},
		{SellerRollup: pipeline.SellerRollup{SellerID: "s2", Price: pipeline.Stats{Sum: 400}}, City: "curitiba", State: "PR"},
	}
	customers := []pipeline.CustomerReport{
		{OrderRollup: pipeline.OrderRollup{OrderID: "o1", Payment: pipeline.Stats{Sum: 250}}, CustomerID: "c1", City: "niteroi", State: "RJ"},
	}

	sellerSeg, err := pipeline.SegmentSellers(sellers, models.DefaultSellerThresholds)
	require.NoError(t, err)
	customerSeg, err := pipeline.SegmentCustomers(customers, models.DefaultCustomerThresholds)
	require.NoError(t, err)

	return &pipeline.Report{
		Sellers:          sellers,
		Customers:        customers,
		SellerCities:     pipeline.SellerCityRollups(sellers, 8),
		SellerStates:     pipeline.SellerStateRollups(sellers, 8),
		CustomerCities:   pipeline.CustomerCityRollups(customers, 8),
		CustomerStates:   pipeline.CustomerStateRollups(customers, 8),
		SellerSegments:   sellerSeg,
		CustomerSegments: customerSeg,
	}
}

func TestWriteAllProducesEveryChart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	w := NewWriter(dir)

	paths, err := w.WriteAll(testReport(t))
	require.NoError(t, err)
	require.Len(t, paths, 7)

	for _, path := range paths {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWriteAllCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "charts")
	w := NewWriter(dir)

	_, err := w.WriteAll(testReport(t))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
