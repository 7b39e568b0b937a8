package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsEmpty(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, DefaultSellerThresholds, cfg.Analysis.SellerThresholds)
	assert.Equal(t, DefaultCustomerThresholds, cfg.Analysis.CustomerThresholds)
	assert.Equal(t, 8, cfg.Analysis.TopCities)
	assert.Equal(t, 10, cfg.Analysis.TopCategories)
	assert.Equal(t, 5, cfg.Analysis.TopEntities)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "R$", cfg.Output.Currency)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Data: Data{Source: SourceSQLite, SQLitePath: "snapshot.sqlite"},
		Analysis: Analysis{
			SellerThresholds: []float64{100, 200, 300, 400, 500, 600},
			TopCities:        4,
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, SourceSQLite, cfg.Data.Source)
	assert.Equal(t, []float64{100, 200, 300, 400, 500, 600}, cfg.Analysis.SellerThresholds)
	assert.Equal(t, 4, cfg.Analysis.TopCities)
	// Unset fields still get defaults
	assert.Equal(t, DefaultCustomerThresholds, cfg.Analysis.CustomerThresholds)
	assert.Equal(t, 10, cfg.Analysis.TopCategories)
}

func TestDefaultThresholdsAreIncreasing(t *testing.T) {
	for _, ths := range [][]float64{DefaultSellerThresholds, DefaultCustomerThresholds} {
		for i := 1; i < len(ths); i++ {
			assert.Greater(t, ths[i], ths[i-1])
		}
	}
}
