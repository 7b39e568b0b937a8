package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sellerReport(city, state string, sum float64, categories ...string) SellerReport {
	return SellerReport{
		SellerRollup: SellerRollup{Price: Stats{Sum: sum}, Categories: categories},
		City:         city,
		State:        state,
	}
}

func TestSellerCityRollupsGroupsAndSorts(t *testing.T) {
	reports := []SellerReport{
		sellerReport("curitiba", "PR", 100, "toys"),
		sellerReport("sao paulo", "SP", 400, "garden"),
		sellerReport("curitiba", "PR", 350, "pet_shop"),
	}

	cities := SellerCityRollups(reports, 8)
	require.Len(t, cities, 2)

	assert.Equal(t, "sao paulo", cities[0].Name)
	assert.InDelta(t, 400, cities[0].Total, 1e-9)
	assert.Equal(t, 1, cities[0].Count)

	assert.Equal(t, "curitiba", cities[1].Name)
	assert.InDelta(t, 450, cities[1].Total, 1e-9)
	assert.Equal(t, 2, cities[1].Count)
	assert.Equal(t, []string{"toys", "pet_shop"}, cities[1].Categories)
}

func TestSellerCityRollupsCapsAtN(t *testing.T) {
	reports := make([]SellerReport, 0, 12)
	for i := 0; i < 12; i++ {
		reports = append(reports, sellerReport(string(rune('a'+i)), "SP", float64(100-i)))
	}

	cities := SellerCityRollups(reports, 8)
	assert.Len(t, cities, 8)
	for i := 1; i < len(cities); i++ {
		assert.GreaterOrEqual(t, cities[i-1].Total, cities[i].Total)
	}
}

func TestTopGeoTiesKeepFirstSeenOrder(t *testing.T) {
	names := []string{"alpha", "beta"}
	totals := []float64{7, 7}
	categories := [][]string{nil, nil}

	rollups := topGeo(names, totals, categories, 0)
	require.Len(t, rollups, 2)
	assert.Equal(t, "alpha", rollups[0].Name)
	assert.Equal(t, "beta", rollups[1].Name)
}

func TestTopGeoIdempotentOnRepeatedRuns(t *testing.T) {
	reports := []SellerReport{
		sellerReport("a", "SP", 10, "x"),
		sellerReport("b", "SP", 10, "y"),
		sellerReport("a", "SP", 5, "z"),
	}

	first := SellerCityRollups(reports, 8)
	second := SellerCityRollups(reports, 8)
	assert.Equal(t, first, second)
}

func TestCustomerCityRollupsUsePaymentSum(t *testing.T) {
	reports := []CustomerReport{
		{OrderRollup: OrderRollup{Payment: Stats{Sum: 200}, Categories: []string{"toys"}}, City: "niteroi", State: "RJ"},
		{OrderRollup: OrderRollup{Payment: Stats{Sum: 80}}, City: "santos", State: "SP"},
	}

	cities := CustomerCityRollups(reports, 8)
	require.Len(t, cities, 2)
	assert.Equal(t, "niteroi", cities[0].Name)
	assert.InDelta(t, 200, cities[0].Total, 1e-9)

	states := CustomerStateRollups(reports, 8)
	require.Len(t, states, 2)
	assert.Equal(t, "RJ", states[0].Name)
}

func TestSellerStateRollups(t *testing.T) {
	reports := []SellerReport{
		sellerReport("campinas", "SP", 50),
		sellerReport("sao paulo", "SP", 70),
		sellerReport("curitiba", "PR", 90),
	}

	states := SellerStateRollups(reports, 8)
	require.Len(t, states, 2)
	assert.Equal(t, "SP", states[0].Name)
	assert.InDelta(t, 120, states[0].Total, 1e-9)
	assert.Equal(t, "PR", states[1].Name)
}
