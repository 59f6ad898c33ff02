// Package report renders the enrichment results for the console.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"pedidocalc/pkg/dataio"
	"pedidocalc/pkg/order"
)

// PrintSummary renders the order totals. The weighted margin is shown as a
// percentage, everything else as plain numbers.
func PrintSummary(w io.Writer, sum order.Summary) {
	fmt.Fprintln(w, "\n=== RESUMEN DEL PEDIDO ===")
	t := newTable(w, dataio.SummaryHeader)
	row := dataio.SummaryRow(sum)
	row[len(row)-1] = fmt.Sprintf("%.1f%%", sum.WeightedMargin*100)
	t.Append(row)
	t.Render()
}

// PrintDetail renders the per-line table in the fixed column order.
func PrintDetail(w io.Writer, lines []order.EnrichedLine) {
	fmt.Fprintln(w, "\n=== DETALLE ===")
	t := newTable(w, dataio.DetailHeader)
	for _, l := range lines {
		t.Append(dataio.DetailRow(l))
	}
	t.Render()
}

// PrintUnmatched lists order products that had no catalog match. Prints
// nothing when the list is empty.
func PrintUnmatched(w io.Writer, products []string) {
	if len(products) == 0 {
		return
	}
	fmt.Fprintln(w, "\n[ADVERTENCIA] Estos productos no se encontraron en el catálogo (revisa nombres):")
	for _, p := range products {
		fmt.Fprintln(w, " -", p)
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}
