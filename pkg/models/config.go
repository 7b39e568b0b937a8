package models

// Config is the persisted ecomdash configuration. Zero values are filled
// in by ApplyDefaults so a missing or partial config file still works.
type Config struct {
	Data     Data     `yaml:"data"`
	Analysis Analysis `yaml:"analysis"`
	Output   Output   `yaml:"output"`
}

// Data describes where the six dataset tables come from.
type Data struct {
	Source     string `yaml:"source"`      // "csv" or "sqlite"
	Dir        string `yaml:"dir"`         // directory holding the six CSV files
	SQLitePath string `yaml:"sqlite_path"` // snapshot database, used when source is "sqlite"
}

// Analysis carries the tunable pipeline parameters. The thresholds are the
// upper bounds of the first six segmentation bands; the seventh band is
// unbounded.
type Analysis struct {
	SellerThresholds   []float64 `yaml:"seller_thresholds"`
	CustomerThresholds []float64 `yaml:"customer_thresholds"`
	TopCities          int       `yaml:"top_cities"`
	TopCategories      int       `yaml:"top_categories"`
	TopEntities        int       `yaml:"top_entities"`
}

// Output controls presentation.
type Output struct {
	Color    string `yaml:"color"`     // "auto", "always", "never"
	ChartDir string `yaml:"chart_dir"` // default directory for PNG charts
	Currency string `yaml:"currency"`  // currency symbol used in tables
}

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

const (
	DefaultTopCities     = 8
	DefaultTopCategories = 10
	DefaultTopEntities   = 5
)

// Default analysis parameters, matching the published dashboard.
var (
	DefaultSellerThresholds   = []float64{300, 1000, 2500, 5000, 10000, 50000}
	DefaultCustomerThresholds = []float64{70, 130, 210, 350, 1000, 4000}
)

// ApplyDefaults fills unset fields in place.
func (c *Config) ApplyDefaults() {
	if c.Data.Source == "" {
		c.Data.Source = SourceCSV
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if len(c.Analysis.SellerThresholds) == 0 {
		c.Analysis.SellerThresholds = append([]float64(nil), DefaultSellerThresholds...)
	}
	if len(c.Analysis.CustomerThresholds) == 0 {
		c.Analysis.CustomerThresholds = append([]float64(nil), DefaultCustomerThresholds...)
	}
	if c.Analysis.TopCities == 0 {
		c.Analysis.TopCities = DefaultTopCities
	}
	if c.Analysis.TopCategories == 0 {
		c.Analysis.TopCategories = DefaultTopCategories
	}
	if c.Analysis.TopEntities == 0 {
		c.Analysis.TopEntities = DefaultTopEntities
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.ChartDir == "" {
		c.Output.ChartDir = "charts"
	}
	if c.Output.Currency == "" {
		c.Output.Currency = "R$"
	}
}
