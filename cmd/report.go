package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/chart"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/export"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/render"
	"github.com/Reminerva/Proyek-Data-Analysis/internal/ui"
)

var (
	reportStart  string
	reportEnd    string
	reportExport string
	reportCharts string
	reportTop    int
)

// reportCmd runs one full analysis non-interactively
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a full report for a date range",
	Long: `Run the complete analysis once and print every section: overview, top
sellers and customers, geographic breakdowns, category rankings and
segmentation. Optionally export the result as an XLSX workbook or save
PNG charts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		rng, err := resolveRange(ds, reportStart, reportEnd)
		if err != nil {
			return err
		}

		opts := pipeline.OptionsFromConfig(cfg.Analysis)
		if reportTop > 0 {
			opts.TopEntities = reportTop
		}

		report, err := pipeline.Run(ds, rng, opts)
		if err != nil {
			return err
		}

		renderer := render.NewRenderer(useColor(cfg), cfg.Output.Currency)
		renderer.SetWidth(ui.TerminalWidth())

		ui.ShowHeader("Report " + rng.String())
		fmt.Print(renderer.Overview(report))

		ui.ShowHeader("Top sellers by revenue")
		fmt.Print(renderer.SellerTable(report, opts.TopEntities))

		ui.ShowHeader("Top customers by spend")
		fmt.Print(renderer.CustomerTable(report, opts.TopEntities))

		fmt.Print(renderer.GeoTable("Seller revenue by city", report.SellerCities))
		fmt.Print(renderer.GeoTable("Seller revenue by state", report.SellerStates))
		fmt.Print(renderer.GeoTable("Customer spend by city", report.CustomerCities))
		fmt.Print(renderer.GeoTable("Customer spend by state", report.CustomerStates))
		fmt.Print(renderer.CityComparison(report.SellerCities, report.CustomerCities))

		ui.ShowHeader("Seller categories by city")
		for _, cc := range report.SellerCityCategories {
			fmt.Print(renderer.CategoryTable(cc))
		}
		ui.ShowHeader("Customer categories by city")
		for _, cc := range report.CustomerCityCategories {
			fmt.Print(renderer.CategoryTable(cc))
		}

		ui.ShowHeader("Seller segments")
		fmt.Print(renderer.SegmentTable(report.SellerSegments))
		ui.ShowHeader("Customer segments")
		fmt.Print(renderer.SegmentTable(report.CustomerSegments))

		if summary := render.WarningSummary(report.Warnings); summary != "" {
			ui.ShowWarning(summary)
		}

		if reportExport != "" {
			if err := export.WriteWorkbook(report, reportExport); err != nil {
				return err
			}
			ui.ShowSuccess("Workbook written to " + reportExport)
		}

		if reportCharts != "" {
			paths, err := chart.NewWriter(reportCharts).WriteAll(report)
			if err != nil {
				return err
			}
			ui.ShowSuccess(fmt.Sprintf("%d charts written to %s", len(paths), reportCharts))
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportStart, "start", "", "start date (YYYY-MM-DD), defaults to the first purchase")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "end date (YYYY-MM-DD), defaults to the last purchase")
	reportCmd.Flags().StringVar(&reportExport, "export", "", "write the report as an XLSX workbook to this path")
	reportCmd.Flags().StringVar(&reportCharts, "charts", "", "write PNG charts into this directory")
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "rows per top-seller/customer table")
	rootCmd.AddCommand(reportCmd)
}
