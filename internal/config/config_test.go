package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigPath(t *testing.T) {
	t.Setenv("ECOMDASH_CONFIG", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".ecomdash")
	assert.Equal(t, expected, GetConfigPath())
}

func TestGetConfigFileEnvOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom.yaml")
	t.Setenv("ECOMDASH_CONFIG", override)
	assert.Equal(t, override, GetConfigFile())
}

func TestLoadMissingFileAppliesDefaults(t *testing.T) {
	t.Setenv("ECOMDASH_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.SourceCSV, cfg.Data.Source)
	assert.Equal(t, models.DefaultSellerThresholds, cfg.Analysis.SellerThresholds)
	assert.Equal(t, 8, cfg.Analysis.TopCities)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("ECOMDASH_CONFIG", "")

	testConfig := &models.Config{
		Data: models.Data{
			Source:     models.SourceSQLite,
			SQLitePath: "/data/snapshot.sqlite",
		},
		Analysis: models.Analysis{
			TopCities:     6,
			TopCategories: 5,
		},
	}

	err := Save(testConfig)
	require.NoError(t, err)
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.SourceSQLite, loaded.Data.Source)
	assert.Equal(t, "/data/snapshot.sqlite", loaded.Data.SQLitePath)
	assert.Equal(t, 6, loaded.Analysis.TopCities)
	assert.Equal(t, 5, loaded.Analysis.TopCategories)
	// Fields not persisted get defaults on load
	assert.Equal(t, models.DefaultCustomerThresholds, loaded.Analysis.CustomerThresholds)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("ECOMDASH_CONFIG", "")

	assert.False(t, Exists())

	require.NoError(t, os.MkdirAll(GetConfigPath(), 0700))
	require.NoError(t, os.WriteFile(GetConfigFile(), []byte("data:\n  source: csv\n"), 0600))
	assert.True(t, Exists())
}
