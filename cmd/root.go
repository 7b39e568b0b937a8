package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/config"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/ui"
	"github.com/Reminerva/Proyek-Data-Analysis/pkg/models"
)

var (
	cfgDataDir string
	cfgSource  string
	cfgNoColor bool

	rootCmd = &cobra.Command{
		Use:   "ecomdash",
		Short: "Explore e-commerce sales from the terminal",
		Long: "Ecomdash - an interactive dashboard over the Brazilian e-commerce dataset: " +
			"seller revenue, customer spend, city and category breakdowns and Klaster segmentation.",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ShowError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDataDir, "data-dir", "", "directory holding the dataset CSV files")
	rootCmd.PersistentFlags().StringVar(&cfgSource, "source", "", "dataset source: csv or sqlite")
	rootCmd.PersistentFlags().BoolVar(&cfgNoColor, "no-color", false, "disable colored output")
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home + "/.ecomdash")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is okay for now
	}
}

// loadConfig merges the persisted configuration with command-line
// overrides.
func loadConfig() (*models.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfgDataDir != "" {
		cfg.Data.Dir = cfgDataDir
	}
	if cfgSource != "" {
		cfg.Data.Source = cfgSource
	}
	if cfgNoColor {
		cfg.Output.Color = "never"
	}
	ui.SetColorMode(cfg.Output.Color)
	return cfg, nil
}

// loadDataset opens the configured source and loads the six tables.
func loadDataset(cfg *models.Config) (*dataset.Dataset, error) {
	source, err := dataset.Open(cfg.Data)
	if err != nil {
		return nil, err
	}

	ui.ShowInfo("Loading dataset...")
	ds, err := source.Load()
	if err != nil {
		return nil, err
	}
	ui.ShowInfo(fmt.Sprintf("Loaded %d orders, %d items, %d payments",
		len(ds.Orders), len(ds.Items), len(ds.Payments)))
	return ds, nil
}

// useColor reports whether colored output is active for this run.
func useColor(cfg *models.Config) bool {
	if cfg.Output.Color == "never" {
		return false
	}
	if cfg.Output.Color == "always" {
		return true
	}
	return ui.ColorEnabled()
}
