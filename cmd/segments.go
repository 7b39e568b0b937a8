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
	segmentsEntity string
	segmentsStart  string
	segmentsEnd    string
)

// segmentsCmd shows the Klaster segmentation for one or both entities
var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Show Klaster segmentation",
	Long: `Band sellers by revenue and customers by spend into the seven Klaster
segments and show counts, shares and a proportional band per segment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if segmentsEntity != "seller" && segmentsEntity != "customer" && segmentsEntity != "all" {
			return errs.ValidationError("entity", segmentsEntity, "must be seller, customer or all")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		rng, err := resolveRange(ds, segmentsStart, segmentsEnd)
		if err != nil {
			return err
		}

		report, err := pipeline.Run(ds, rng, pipeline.OptionsFromConfig(cfg.Analysis))
		if err != nil {
			return err
		}

		renderer := render.NewRenderer(useColor(cfg), cfg.Output.Currency)
		renderer.SetWidth(ui.TerminalWidth())

		if segmentsEntity == "seller" || segmentsEntity == "all" {
			ui.ShowHeader("Seller segments " + rng.String())
			fmt.Print(renderer.SegmentTable(report.SellerSegments))
			fmt.Print(renderer.SegmentBand(report.SellerSegments))
		}
		if segmentsEntity == "customer" || segmentsEntity == "all" {
			ui.ShowHeader("Customer segments " + rng.String())
			fmt.Print(renderer.SegmentTable(report.CustomerSegments))
			fmt.Print(renderer.SegmentBand(report.CustomerSegments))
		}
		return nil
	},
}

func init() {
	segmentsCmd.Flags().StringVar(&segmentsEntity, "entity", "all", "which segmentation to show: seller, customer or all")
	segmentsCmd.Flags().StringVar(&segmentsStart, "start", "", "start date (YYYY-MM-DD)")
	segmentsCmd.Flags().StringVar(&segmentsEnd, "end", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(segmentsCmd)
}
