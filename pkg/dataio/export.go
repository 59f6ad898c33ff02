package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"pedidocalc/pkg/catalog"
	"pedidocalc/pkg/order"
)

// DetailHeader is the fixed column order of the detail table, shared by the
// console report and every export format.
var DetailHeader = []string{
	"product", "quantity", "discount_fraction", "sale_price",
	"applied_sale_price", "purchase_price", "revenue", "cost",
	"profit", "margin",
}

// SummaryHeader is the column order of the one-row summary table.
var SummaryHeader = []string{"total_revenue", "total_cost", "total_profit", "weighted_margin"}

// DetailRow renders one enriched line into DetailHeader order. Null amounts
// render as empty cells.
func DetailRow(l order.EnrichedLine) []string {
	return []string{
		l.Product,
		formatFloat(l.Quantity),
		formatFloat(l.Discount),
		formatAmount(l.SalePrice),
		formatAmount(l.AppliedSalePrice),
		formatAmount(l.PurchasePrice),
		formatAmount(l.Revenue),
		formatAmount(l.Cost),
		formatAmount(l.Profit),
		formatAmount(l.Margin),
	}
}

// SummaryRow renders the summary into SummaryHeader order.
func SummaryRow(s order.Summary) []string {
	return []string{
		formatFloat(s.TotalRevenue),
		formatFloat(s.TotalCost),
		formatFloat(s.TotalProfit),
		formatFloat(s.WeightedMargin),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatAmount(a catalog.Amount) string {
	if !a.Valid {
		return ""
	}
	return formatFloat(a.Value)
}

// Export writes the detail and summary tables as two CSV files plus a
// combined xlsx workbook, all sharing a salida_<timestamp> prefix inside
// dir, and returns that prefix. It is only called once the whole
// computation has succeeded, so a failed run never leaves partial output.
func Export(dir string, lines []order.EnrichedLine, sum order.Summary, now time.Time) (string, error) {
	prefix := "salida_" + now.Format("20060102_150405")
	base := filepath.Join(dir, prefix)

	detail := make([][]string, 0, len(lines))
	for _, l := range lines {
		detail = append(detail, DetailRow(l))
	}
	summary := [][]string{SummaryRow(sum)}

	if err := writeCSV(base+"_detalle.csv", DetailHeader, detail); err != nil {
		return "", err
	}
	if err := writeCSV(base+"_resumen.csv", SummaryHeader, summary); err != nil {
		return "", err
	}
	if err := writeWorkbook(base+".xlsx", lines, sum); err != nil {
		return "", err
	}
	return base, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeWorkbook(path string, lines []order.EnrichedLine, sum order.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "detalle", DetailHeader, detailCells(lines)); err != nil {
		return err
	}
	if err := writeSheet(f, "resumen", SummaryHeader, [][]interface{}{summaryCells(sum)}); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return err
	}
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			return err
		}
	}
	return nil
}

func detailCells(lines []order.EnrichedLine) [][]interface{} {
	rows := make([][]interface{}, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []interface{}{
			l.Product,
			l.Quantity,
			l.Discount,
			amountCell(l.SalePrice),
			amountCell(l.AppliedSalePrice),
			amountCell(l.PurchasePrice),
			amountCell(l.Revenue),
			amountCell(l.Cost),
			amountCell(l.Profit),
			amountCell(l.Margin),
		})
	}
	return rows
}

func summaryCells(s order.Summary) []interface{} {
	return []interface{}{s.TotalRevenue, s.TotalCost, s.TotalProfit, s.WeightedMargin}
}

// amountCell keeps null amounts as empty spreadsheet cells.
func amountCell(a catalog.Amount) interface{} {
	if !a.Valid {
		return nil
	}
	return a.Value
}
