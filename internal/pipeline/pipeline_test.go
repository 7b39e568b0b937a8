package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
)

func fixtureDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Customers: []dataset.Customer{
			{ID: "c1", City: "sao paulo", State: "SP"},
			{ID: "c2", City: "curitiba", State: "PR"},
			{ID: "c3", City: "sao paulo", State: "SP"},
		},
		Orders: []dataset.Order{
			{ID: "o1", CustomerID: "c1", Status: dataset.StatusDelivered, PurchasedAt: ts(1)},
			{ID: "o2", CustomerID: "c2", Status: dataset.StatusShipped, PurchasedAt: ts(10)},
			{ID: "o3", CustomerID: "c3", Status: dataset.StatusCanceled, PurchasedAt: ts(15)},
		},
		Items: []dataset.OrderItem{
			{OrderID: "o1", ItemID: 1, ProductID: "p1", SellerID: "s1", Price: 120, FreightValue: 10, ShippingLimitAt: ts(3)},
			{OrderID: "o1", ItemID: 2, ProductID: "p3", SellerID: "s2", Price: 80, FreightValue: 8, ShippingLimitAt: ts(4)},
			{OrderID: "o2", ItemID: 1, ProductID: "p2", SellerID: "s1", Price: 200, FreightValue: 20, ShippingLimitAt: ts(12)},
			{OrderID: "o3", ItemID: 1, ProductID: "p1", SellerID: "s1", Price: 999, FreightValue: 99, ShippingLimitAt: ts(16)},
		},
		Payments: []dataset.Payment{
			{OrderID: "o1", Value: 218},
			{OrderID: "o2", Value: 220},
			{OrderID: "o3", Value: 1098},
		},
		Products: testProducts,
		Sellers: []dataset.Seller{
			{ID: "s1", City: "sao paulo", State: "SP"},
			{ID: "s2", City: "curitiba", State: "PR"},
		},
	}
}

func fullRange(t *testing.T, ds *dataset.Dataset) dataset.DateRange {
	t.Helper()
	rng, ok := ds.FullRange()
	require.True(t, ok)
	return rng
}

func TestRunProducesEverySection(t *testing.T) {
	ds := fixtureDataset()

	report, err := Run(ds, fullRange(t, ds), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, report.Sellers, 2)
	require.Len(t, report.Customers, 2)
	assert.NotEmpty(t, report.SellerCities)
	assert.NotEmpty(t, report.SellerStates)
	assert.NotEmpty(t, report.CustomerCities)
	assert.NotEmpty(t, report.CustomerStates)
	assert.Len(t, report.SellerCityCategories, len(report.SellerCities))
	assert.Len(t, report.CustomerCityCategories, len(report.CustomerCities))
	require.NotNil(t, report.SellerSegments)
	require.NotNil(t, report.CustomerSegments)
	assert.Empty(t, report.Warnings)
}

func TestRunExcludesCanceledOrdersEverywhere(t *testing.T) {
	ds := fixtureDataset()

	report, err := Run(ds, fullRange(t, ds), DefaultOptions())
	require.NoError(t, err)

	// o3 is canceled: its 999 item and 1098 payment must not appear.
	assert.Equal(t, "s1", report.Sellers[0].SellerID)
	assert.InDelta(t, 320, report.Sellers[0].Price.Sum, 1e-9)

	for _, c := range report.Customers {
		assert.NotEqual(t, "o3", c.OrderID)
	}
	assert.Equal(t, 2, report.CustomerSegments.Total())
}

func TestRunConservationBetweenReportsAndSegments(t *testing.T) {
	ds := fixtureDataset()

	report, err := Run(ds, fullRange(t, ds), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, len(report.Sellers), report.SellerSegments.Total())
	assert.Equal(t, len(report.Customers), report.CustomerSegments.Total())
}

func TestRunHonorsDateRange(t *testing.T) {
	ds := fixtureDataset()
	rng, err := dataset.NewDateRange(ts(9), ts(20))
	require.NoError(t, err)

	report, runErr := Run(ds, rng, DefaultOptions())
	require.NoError(t, runErr)

	// only o2 purchases and its item remain in range
	require.Len(t, report.Customers, 1)
	assert.Equal(t, "o2", report.Customers[0].OrderID)
	require.Len(t, report.Sellers, 1)
	assert.InDelta(t, 200, report.Sellers[0].Price.Sum, 1e-9)
}

func TestRunIsDeterministic(t *testing.T) {
	ds := fixtureDataset()
	rng := fullRange(t, ds)

	first, err := Run(ds, rng, DefaultOptions())
	require.NoError(t, err)
	second, err := Run(ds, rng, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptionsNormalizeFillsDefaults(t *testing.T) {
	var opts Options
	opts.Normalize()

	assert.Len(t, opts.SellerThresholds, SegmentCount-1)
	assert.Len(t, opts.CustomerThresholds, SegmentCount-1)
	assert.Equal(t, 8, opts.TopCities)
	assert.Equal(t, 10, opts.TopCategories)
	assert.Equal(t, 5, opts.TopEntities)
}

func TestTopSellersAndCustomersClamp(t *testing.T) {
	ds := fixtureDataset()

	report, err := Run(ds, fullRange(t, ds), DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, report.TopSellers(1), 1)
	assert.Len(t, report.TopSellers(100), len(report.Sellers))
	assert.Len(t, report.TopCustomers(100), len(report.Customers))
}
