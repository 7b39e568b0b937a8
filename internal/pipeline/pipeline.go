package pipeline

import (
	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
)

// Options tunes a pipeline run. Zero values fall back to the dashboard
// defaults via Normalize.
type Options struct {
	SellerThresholds   []float64
	CustomerThresholds []float64
	TopCities          int
	TopCategories      int
	TopEntities        int
}

// DefaultOptions returns the standard dashboard tuning.
func DefaultOptions() Options {
	return Options{
		SellerThresholds:   append([]float64(nil), models.DefaultSellerThresholds...),
		CustomerThresholds: append([]float64(nil), models.DefaultCustomerThresholds...),
		TopCities:          models.DefaultTopCities,
		TopCategories:      models.DefaultTopCategories,
		TopEntities:        models.DefaultTopEntities,
	}
}

// OptionsFromConfig builds pipeline options from the analysis section of
// the application config.
func OptionsFromConfig(cfg models.Analysis) Options {
	opts := Options{
		SellerThresholds:   cfg.SellerThresholds,
		CustomerThresholds: cfg.CustomerThresholds,
		TopCities:          cfg.TopCities,
		TopCategories:      cfg.TopCategories,
		TopEntities:        cfg.TopEntities,
	}
	opts.Normalize()
	return opts
}

// Normalize fills unset fields with defaults.
func (o *Options) Normalize() {
	if len(o.SellerThresholds) == 0 {
		o.SellerThresholds = append([]float64(nil), models.DefaultSellerThresholds...)
	}
	if len(o.CustomerThresholds) == 0 {
		o.CustomerThresholds = append([]float64(nil), models.DefaultCustomerThresholds...)
	}
	if o.TopCities <= 0 {
		o.TopCities = models.DefaultTopCities
	}
	if o.TopCategories <= 0 {
		o.TopCategories = models.DefaultTopCategories
	}
	if o.TopEntities <= 0 {
		o.TopEntities = models.DefaultTopEntities
	}
}

// Report is the complete output of one analysis run over a filtered
// dataset snapshot.
type Report struct {
	Range dataset.DateRange

	Sellers   []SellerReport
	Customers []CustomerReport

	SellerCities   []GeoRollup
	SellerStates   []GeoRollup
	CustomerCities []GeoRollup
	CustomerStates []GeoRollup

	SellerCityCategories   []CityCategories
	CustomerCityCategories []CityCategories

	SellerSegments   *Segmentation
	CustomerSegments *Segmentation

	Warnings []Warning
}

// Run executes the full analysis over ds restricted to rng: rollups,
// master merges, geographic breakdowns, per-city category rankings and
// segmentation. Join warnings from every stage are collected on the
// report.
func Run(ds *dataset.Dataset, rng dataset.DateRange, opts Options) (*Report, error) {
	opts.Normalize()

	filtered := ds.FilterRange(rng)
	eligible := filtered.EligibleOrderIDs()

	report := &Report{Range: rng}

	sellerRollups, w := BuildSellerRollups(filtered.Items, filtered.Products, eligible)
	report.Warnings = append(report.Warnings, w...)

	orderRollups, w := BuildOrderRollups(filtered.Items, filtered.Products, filtered.Payments, eligible)
	report.Warnings = append(report.Warnings, w...)

	report.Sellers, w = mergeSellers(sellerRollups, filtered.Sellers)
	report.Warnings = append(report.Warnings, w...)

	report.Customers, w = mergeCustomers(orderRollups, filtered.Orders, filtered.Customers)
	report.Warnings = append(report.Warnings, w...)

	report.SellerCities = SellerCityRollups(report.Sellers, opts.TopCities)
	report.SellerStates = SellerStateRollups(report.Sellers, opts.TopCities)
	report.CustomerCities = CustomerCityRollups(report.Customers, opts.TopCities)
	report.CustomerStates = CustomerStateRollups(report.Customers, opts.TopCities)

	report.SellerCityCategories = RankCityCategories(report.SellerCities, opts.TopCategories)
	report.CustomerCityCategories = RankCityCategories(report.CustomerCities, opts.TopCategories)

	var err error
	report.SellerSegments, err = SegmentSellers(report.Sellers, opts.SellerThresholds)
	if err != nil {
		return nil, err
	}
	report.CustomerSegments, err = SegmentCustomers(report.Customers, opts.CustomerThresholds)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// TopSellers returns the first n seller reports (already sorted by
// summed price descending).
func (r *Report) TopSellers(n int) []SellerReport {
	if n > len(r.Sellers) {
		n = len(r.Sellers)
	}
	return r.Sellers[:n]
}

// TopCustomers returns the first n customer reports (already sorted by
// summed payment descending).
func (r *Report) TopCustomers(n int) []CustomerReport {
	if n > len(r.Customers) {
		n = len(r.Customers)
	}
	return r.Customers[:n]
}
