// Package export writes analysis reports as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

const (
	sheetSellers          = "Sellers"
	sheetCustomers        = "Customers"
	sheetSellerCities     = "Seller Cities"
	sheetCustomerCities   = "Customer Cities"
	sheetCategories       = "Categories"
	sheetSellerSegments   = "Seller Segments"
	sheetCustomerSegments = "Customer Segments"
)

// WriteWorkbook saves the full report as an XLSX workbook at path. Each
// report section gets its own sheet; the segmentation sheets carry native
// pie charts.
func WriteWorkbook(report *pipeline.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSellers(f, report); err != nil {
		return err
	}
	if err := writeCustomers(f, report); err != nil {
		return err
	}
	if err := writeGeo(f, sheetSellerCities, report.SellerCities); err != nil {
		return err
	}
	if err := writeGeo(f, sheetCustomerCities, report.CustomerCities); err != nil {
		return err
	}
	if err := writeCategories(f, report); err != nil {
		return err
	}
	if err := writeSegments(f, sheetSellerSegments, report.SellerSegments, false); err != nil {
		return err
	}
	if err := writeSegments(f, sheetCustomerSegments, report.CustomerSegments, true); err != nil {
		return err
	}

	// The workbook opens on the seller sheet, not the default empty one.
	f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex(sheetSellers)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return errs.Wrap(err, errs.ErrCodeExportFailed, "saving workbook").
			WithContext("path", path)
	}
	return nil
}

func newSheet(f *excelize.File, name string) error {
	if _, err := f.NewSheet(name); err != nil {
		return errs.Wrap(err, errs.ErrCodeExportFailed, "creating sheet").
			WithContext("sheet", name)
	}
	return nil
}

func setHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errs.Wrap(err, errs.ErrCodeExportFailed, "resolving header cell")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errs.Wrap(err, errs.ErrCodeExportFailed, "writing header").
				WithContext("sheet", sheet)
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return errs.Wrap(err, errs.ErrCodeExportFailed, "resolving cell")
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errs.Wrap(err, errs.ErrCodeExportFailed, "writing row").
				WithContext("sheet", sheet).
				WithContext("row", row)
		}
	}
	return nil
}

func writeSellers(f *excelize.File, report *pipeline.Report) error {
	if err := newSheet(f, sheetSellers); err != nil {
		return err
	}
	headers := []string{
		"Seller ID", "City", "State",
		"Price Sum", "Price Mean", "Price Max", "Price Min",
		"Freight Sum", "Freight Mean", "Items",
	}
	if err := setHeader(f, sheetSellers, headers); err != nil {
		return err
	}
	for i, s := range report.Sellers {
		row := []interface{}{
			s.SellerID, s.City, s.State,
			s.Price.Sum, s.Price.Mean, s.Price.Max, s.Price.Min,
			s.Freight.Sum, s.Freight.Mean, len(s.ProductIDs),
		}
		if err := setRow(f, sheetSellers, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomers(f *excelize.File, report *pipeline.Report) error {
	if err := newSheet(f, sheetCustomers); err != nil {
		return err
	}
	headers := []string{
		"Customer ID", "Order ID", "City", "State", "Status", "Purchased",
		"Payment Sum", "Payment Mean", "Payment Max", "Payment Min",
	}
	if err := setHeader(f, sheetCustomers, headers); err != nil {
		return err
	}
	for i, c := range report.Customers {
		row := []interface{}{
			c.CustomerID, c.OrderID, c.City, c.State, string(c.Status),
			c.PurchasedAt.Format("2006-01-02 15:04:05"),
			c.Payment.Sum, c.Payment.Mean, c.Payment.Max, c.Payment.Min,
		}
		if err := setRow(f, sheetCustomers, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeGeo(f *excelize.File, sheet string, rollups []pipeline.GeoRollup) error {
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	if err := setHeader(f, sheet, []string{"Location", "Total", "Members"}); err != nil {
		return err
	}
	for i, g := range rollups {
		if err := setRow(f, sheet, i+2, []interface{}{g.Name, g.Total, g.Count}); err != nil {
			return err
		}
	}
	if len(rollups) == 0 {
		return nil
	}

	chart := &excelize.Chart{
		Type: excelize.Bar,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, len(rollups)+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, len(rollups)+1),
		}},
		Title: []excelize.RichTextRun{{Text: sheet}},
	}
	if err := f.AddChart(sheet, "E2", chart); err != nil {
		return errs.Wrap(err, errs.ErrCodeExportFailed, "adding geo chart").
			WithContext("sheet", sheet)
	}
	return nil
}

func writeCategories(f *excelize.File, report *pipeline.Report) error {
	if err := newSheet(f, sheetCategories); err != nil {
		return err
	}
	if err := setHeader(f, sheetCategories, []string{"Group", "City", "Category", "Count"}); err != nil {
		return err
	}

	row := 2
	write := func(group string, cities []pipeline.CityCategories) error {
		for _, cc := range cities {
			for _, c := range cc.Categories {
				if err := setRow(f, sheetCategories, row, []interface{}{group, cc.City, c.Category, c.Count}); err != nil {
					return err
				}
				row++
			}
		}
		return nil
	}

	if err := write("seller", report.SellerCityCategories); err != nil {
		return err
	}
	return write("customer", report.CustomerCityCategories)
}

// writeSegments writes one band per row and a native pie chart over the
// counts. mergeTop folds the two highest bands into one pie slice, the
// way the customer view is published.
func writeSegments(f *excelize.File, sheet string, seg *pipeline.Segmentation, mergeTop bool) error {
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	if err := setHeader(f, sheet, []string{"Band", "Lower", "Upper", "Count"}); err != nil {
		return err
	}

	type slice struct {
		label string
		lower float64
		upper float64
		count int
	}
	slices := make([]slice, 0, len(seg.Buckets))
	for _, b := range seg.Buckets {
		slices = append(slices, slice{label: b.Label, lower: b.Lower, upper: b.Upper, count: b.Count})
	}
	if mergeTop && len(slices) >= 2 {
		last := len(slices) - 1
		slices[last-1].label = slices[last-1].label + " + " + slices[last].label
		slices[last-1].upper = slices[last].upper
		slices[last-1].count += slices[last].count
		slices = slices[:last]
	}

	for i, s := range slices {
		upper := interface{}(s.upper)
		if s.upper > 1e300 { // +Inf has no XLSX representation
			upper = ""
		}
		if err := setRow(f, sheet, i+2, []interface{}{s.label, s.lower, upper, s.count}); err != nil {
			return err
		}
	}

	chart := &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$D$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, len(slices)+1),
			Values:     fmt.Sprintf("'%s'!$D$2:$D$%d", sheet, len(slices)+1),
		}},
		Title: []excelize.RichTextRun{{Text: sheet}},
	}
	if err := f.AddChart(sheet, "F2", chart); err != nil {
		return errs.Wrap(err, errs.ErrCodeExportFailed, "adding segment chart").
			WithContext("sheet", sheet)
	}
	return nil
}
