package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/render"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/ui"
	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

// dashboardCmd runs the interactive terminal dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open an interactive session over the loaded dataset. Pick a view from
the menu, adjust the date range at any time, and quit when done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		rng, ok := ds.FullRange()
		if !ok {
			return errs.New(errs.ErrCodeDataEmpty, "dataset contains no orders")
		}

		opts := pipeline.OptionsFromConfig(cfg.Analysis)
		renderer := render.NewRenderer(useColor(cfg), cfg.Output.Currency)
		renderer.SetWidth(ui.TerminalWidth())

		report, err := pipeline.Run(ds, rng, opts)
		if err != nil {
			return err
		}

		ui.ShowHeader("E-Commerce Dashboard")
		if summary := render.WarningSummary(report.Warnings); summary != "" {
			ui.ShowWarning(summary)
		}

		for {
			action, err := ui.SelectAction()
			if err != nil {
				return err
			}

			switch action {
			case ui.ActionOverview:
				fmt.Print(renderer.Overview(report))

			case ui.ActionSellers:
				ui.ShowHeader("Top sellers by revenue")
				fmt.Print(renderer.SellerTable(report, opts.TopEntities))

			case ui.ActionCustomers:
				ui.ShowHeader("Top customers by spend")
				fmt.Print(renderer.CustomerTable(report, opts.TopEntities))

			case ui.ActionGeography:
				fmt.Print(renderer.GeoTable("Seller revenue by city", report.SellerCities))
				fmt.Print(renderer.GeoTable("Seller revenue by state", report.SellerStates))
				fmt.Print(renderer.GeoTable("Customer spend by city", report.CustomerCities))
				fmt.Print(renderer.GeoTable("Customer spend by state", report.CustomerStates))
				fmt.Print(renderer.CityComparison(report.SellerCities, report.CustomerCities))

			case ui.ActionCategories:
				ui.ShowHeader("Seller categories by city")
				for _, cc := range report.SellerCityCategories {
					fmt.Print(renderer.CategoryTable(cc))
				}
				ui.ShowHeader("Customer categories by city")
				for _, cc := range report.CustomerCityCategories {
					fmt.Print(renderer.CategoryTable(cc))
				}

			case ui.ActionSegments:
				ui.ShowHeader("Seller segments")
				fmt.Print(renderer.SegmentTable(report.SellerSegments))
				fmt.Print(renderer.SegmentBand(report.SellerSegments))
				ui.ShowHeader("Customer segments")
				fmt.Print(renderer.SegmentTable(report.CustomerSegments))
				fmt.Print(renderer.SegmentBand(report.CustomerSegments))

			case ui.ActionChangeDate:
				min, max, _ := ds.PurchaseSpan()
				newRange, err := ui.AskDateRange(min, max)
				if err != nil {
					if errs.IsRecoverable(err) {
						ui.ShowError(err)
						continue
					}
					return err
				}
				rng = newRange
				report, err = pipeline.Run(ds, rng, opts)
				if err != nil {
					return err
				}
				ui.ShowSuccess("Date range set to " + rng.String())
				if summary := render.WarningSummary(report.Warnings); summary != "" {
					ui.ShowWarning(summary)
				}

			case ui.ActionQuit:
				quit, err := ui.ConfirmQuit()
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
