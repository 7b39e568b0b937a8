package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/render"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/ui"
	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

var (
	categoriesCities int
	categoriesTop    int
	categoriesEntity string
	categoriesStart  string
	categoriesEnd    string
)

// categoriesCmd shows the per-city category rankings
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show product category rankings per city",
	Long: `Rank product categories inside the top cities, for sellers and for
customers. The number of cities and the ranking depth are tunable within
the dashboard's bounds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if categoriesCities < 2 || categoriesCities > 8 {
			return errs.ValidationError("cities", categoriesCities, "must be between 2 and 8")
		}
		if categoriesTop < 2 || categoriesTop > 10 {
			return errs.ValidationError("top", categoriesTop, "must be between 2 and 10")
		}
		if categoriesEntity != "seller" && categoriesEntity != "customer" && categoriesEntity != "all" {
			return errs.ValidationError("entity", categoriesEntity, "must be seller, customer or all")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		rng, err := resolveRange(ds, categoriesStart, categoriesEnd)
		if err != nil {
			return err
		}

		opts := pipeline.OptionsFromConfig(cfg.Analysis)
		opts.TopCities = categoriesCities
		opts.TopCategories = categoriesTop

		report, err := pipeline.Run(ds, rng, opts)
		if err != nil {
			return err
		}

		renderer := render.NewRenderer(useColor(cfg), cfg.Output.Currency)

		if categoriesEntity == "seller" || categoriesEntity == "all" {
			ui.ShowHeader("Seller categories by city " + rng.String())
			for _, cc := range report.SellerCityCategories {
				fmt.Print(renderer.CategoryTable(cc))
			}
		}
		if categoriesEntity == "customer" || categoriesEntity == "all" {
			ui.ShowHeader("Customer categories by city " + rng.String())
			for _, cc := range report.CustomerCityCategories {
				fmt.Print(renderer.CategoryTable(cc))
			}
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().IntVar(&categoriesCities, "cities", 8, "number of top cities to rank (2-8)")
	categoriesCmd.Flags().IntVar(&categoriesTop, "top", 10, "categories per city (2-10)")
	categoriesCmd.Flags().StringVar(&categoriesEntity, "entity", "all", "which rankings to show: seller, customer or all")
	categoriesCmd.Flags().StringVar(&categoriesStart, "start", "", "start date (YYYY-MM-DD)")
	categoriesCmd.Flags().StringVar(&categoriesEnd, "end", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(categoriesCmd)
}
