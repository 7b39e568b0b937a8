package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
)

// Renderer formats analysis results for the terminal.
type Renderer struct {
	useColor bool
	currency string
	width    int
}

// NewRenderer creates a renderer. currency is the symbol prefixed to
// monetary values.
func NewRenderer(useColor bool, currency string) *Renderer {
	return &Renderer{
		useColor: useColor,
		currency: currency,
		width:    100, // Default terminal width
	}
}

// SetWidth sets the display width
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

func (r *Renderer) money(v float64) string {
	return FormatMoney(r.currency, v)
}

// Overview summarizes a report: entity counts, revenue and spend totals
// and the active date range.
func (r *Renderer) Overview(report *pipeline.Report) string {
	var buf strings.Builder

	var revenue float64
	for _, s := range report.Sellers {
		revenue += s.Price.Sum
	}
	var spend float64
	for _, c := range report.Customers {
		spend += c.Payment.Sum
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Date range", report.Range.String()})
	table.Append([]string{"Active sellers", FormatCount(len(report.Sellers))})
	table.Append([]string{"Paying orders", FormatCount(len(report.Customers))})
	table.Append([]string{"Item revenue", r.money(revenue)})
	table.Append([]string{"Payment volume", r.money(spend)})
	table.Append([]string{"Data warnings", FormatCount(len(report.Warnings))})

	table.Render()
	return buf.String()
}

// SellerTable renders the top n sellers with their price statistics and
// location.
func (r *Renderer) SellerTable(report *pipeline.Report, n int) string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Seller", "City", "State", "Revenue", "Avg", "Max", "Min", "Items"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, s := range report.TopSellers(n) {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			shortID(s.SellerID),
			s.City,
			s.State,
			r.money(s.Price.Sum),
			r.money(s.Price.Mean),
			r.money(s.Price.Max),
			r.money(s.Price.Min),
			FormatCount(len(s.ProductIDs)),
		})
	}

	table.Render()
	return buf.String()
}

// CustomerTable renders the top n customers with their payment
// statistics and location.
func (r *Renderer) CustomerTable(report *pipeline.Report, n int) string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Customer", "City", "State", "Spend", "Avg", "Max", "Min", "Status"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, c := range report.TopCustomers(n) {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			shortID(c.CustomerID),
			c.City,
			c.State,
			r.money(c.Payment.Sum),
			r.money(c.Payment.Mean),
			r.money(c.Payment.Max),
			r.money(c.Payment.Min),
			string(c.Status),
		})
	}

	table.Render()
	return buf.String()
}

// GeoTable renders geographic rollups with a proportional bar per row.
func (r *Renderer) GeoTable(title string, rollups []pipeline.GeoRollup) string {
	var buf strings.Builder

	buf.WriteString(r.sectionTitle(title))
	buf.WriteString("\n")

	var max float64
	for _, g := range rollups {
		if g.Total > max {
			max = g.Total
		}
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Location", "Total", "Members", ""})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, g := range rollups {
		bar := r.bar(g.Total, max, 30)
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			g.Name,
			r.money(g.Total),
			FormatCount(g.Count),
			bar,
		})
	}

	table.Render()
	return buf.String()
}

// CategoryTable renders the ranked categories of one city.
func (r *Renderer) CategoryTable(cc pipeline.CityCategories) string {
	var buf strings.Builder

	buf.WriteString(r.sectionTitle(cc.City))
	buf.WriteString("\n")

	var max int
	for _, c := range cc.Categories {
		if c.Count > max {
			max = c.Count
		}
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Category", "Count", ""})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, c := range cc.Categories {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			c.Category,
			FormatCount(c.Count),
			r.bar(float64(c.Count), float64(max), 25),
		})
	}

	table.Render()
	return buf.String()
}

// CityComparison renders seller revenue and customer spend side by side
// for every city present in either rollup. Seller city order wins;
// customer-only cities follow in their own order.
func (r *Renderer) CityComparison(sellerCities, customerCities []pipeline.GeoRollup) string {
	var buf strings.Builder

	buf.WriteString(r.sectionTitle("Seller revenue vs customer spend by city"))
	buf.WriteString("\n")

	customerByCity := make(map[string]pipeline.GeoRollup, len(customerCities))
	for _, g := range customerCities {
		customerByCity[g.Name] = g
	}
	seen := make(map[string]struct{}, len(sellerCities))

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"City", "Seller Revenue", "Customer Spend"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, g := range sellerCities {
		seen[g.Name] = struct{}{}
		spend := "-"
		if c, ok := customerByCity[g.Name]; ok {
			spend = r.money(c.Total)
		}
		table.Append([]string{g.Name, r.money(g.Total), spend})
	}
	for _, g := range customerCities {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		table.Append([]string{g.Name, "-", r.money(g.Total)})
	}

	table.Render()
	return buf.String()
}

// SegmentTable renders every band of a segmentation with counts and the
// band's value interval.
func (r *Renderer) SegmentTable(seg *pipeline.Segmentation) string {
	var buf strings.Builder

	total := seg.Total()
	var maxCount int
	for _, b := range seg.Buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Band", "Range", "Count", "Share", ""})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, b := range seg.Buckets {
		share := 0.0
		if total > 0 {
			share = float64(b.Count) / float64(total) * 100
		}
		table.Append([]string{
			b.Label,
			r.bandRange(b),
			FormatCount(b.Count),
			fmt.Sprintf("%.1f%%", share),
			r.bar(float64(b.Count), float64(maxCount), 25),
		})
	}

	table.Render()
	return buf.String()
}

// SegmentBand renders a single proportional band line across the
// segmentation, one colored run per non-empty bucket. For customer
// segmentations the two highest bands are shown as one run, as the
// published dashboard merges them.
func (r *Renderer) SegmentBand(seg *pipeline.Segmentation) string {
	type run struct {
		label string
		count int
	}

	runs := make([]run, 0, len(seg.Buckets))
	for _, b := range seg.Buckets {
		runs = append(runs, run{label: b.Label, count: b.Count})
	}
	// The published customer view folds the two highest bands together.
	if seg.Entity == "customer" && len(runs) >= 2 {
		last := len(runs) - 1
		runs[last-1].label = runs[last-1].label + " + " + runs[last].label
		runs[last-1].count += runs[last].count
		runs = runs[:last]
	}

	total := 0
	for _, rn := range runs {
		total += rn.count
	}
	if total == 0 {
		return "(no entities in range)\n"
	}

	palette := []func(format string, a ...interface{}) string{
		color.GreenString,
		color.CyanString,
		color.BlueString,
		color.MagentaString,
		color.YellowString,
		color.RedString,
		color.WhiteString,
	}

	bandWidth := r.width - 20
	if bandWidth < 14 {
		bandWidth = 14
	}

	var band strings.Builder
	var legend strings.Builder
	for i, rn := range runs {
		if rn.count == 0 {
			continue
		}
		cells := int(float64(bandWidth) * float64(rn.count) / float64(total))
		if cells == 0 {
			cells = 1
		}
		segment := strings.Repeat("█", cells)
		if r.useColor {
			segment = palette[i%len(palette)]("%s", segment)
		}
		band.WriteString(segment)

		share := float64(rn.count) / float64(total) * 100
		legend.WriteString(fmt.Sprintf("  %s %s: %s (%.1f%%)\n",
			r.legendDot(i, palette), rn.label, FormatCount(rn.count), share))
	}

	return band.String() + "\n\n" + legend.String()
}

func (r *Renderer) legendDot(i int, palette []func(string, ...interface{}) string) string {
	if r.useColor {
		return palette[i%len(palette)]("%s", "■")
	}
	return "■"
}

func (r *Renderer) bandRange(b pipeline.SegmentBucket) string {
	if math.IsInf(b.Upper, 1) {
		return fmt.Sprintf(">= %s", r.money(b.Lower))
	}
	return fmt.Sprintf("%s - %s", r.money(b.Lower), r.money(b.Upper))
}

func (r *Renderer) bar(value, max float64, width int) string {
	if max <= 0 {
		return ""
	}
	filled := int(float64(width) * value / max)
	if filled == 0 && value > 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if r.useColor {
		return color.CyanString("%s", bar)
	}
	return bar
}

func (r *Renderer) sectionTitle(title string) string {
	if r.useColor {
		return color.New(color.Bold).Sprint(title) + "\n"
	}
	return title + "\n"
}

// shortID truncates dataset hash ids for table display.
func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

// WarningSummary condenses join warnings into per-table counts.
func WarningSummary(warnings []pipeline.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, w := range warnings {
		key := w.Table + "." + w.Column
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	parts := make([]string, 0, len(order))
	for _, key := range order {
		parts = append(parts, fmt.Sprintf("%s (%d rows dropped)", key, counts[key]))
	}
	return "unmatched join keys: " + strings.Join(parts, ", ")
}
