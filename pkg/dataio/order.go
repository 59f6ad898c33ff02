package dataio

import (
	"encoding/csv"
	"fmt"
	"os"

	"pedidocalc/pkg/order"
)

var orderColumns = []string{"producto", "cantidad", "descuento_%"}

// ReadOrder loads the order CSV. Empty cantidad/descuento cells load as null
// and get their zero defaults during enrichment, not here.
func ReadOrder(path string) ([]order.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open order %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read order %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("order file %s is empty", path)
	}

	idx, err := headerIndex("order", records[0], orderColumns)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(records)-1)
	for i, rec := range records[1:] {
		qty, err := parseAmount(cell(rec, idx["cantidad"]))
		if err != nil {
			return nil, fmt.Errorf("order row %d, cantidad: %w", i+2, err)
		}
		discount, err := parseAmount(cell(rec, idx["descuento_%"]))
		if err != nil {
			return nil, fmt.Errorf("order row %d, descuento_%%: %w", i+2, err)
		}
		lines = append(lines, order.Line{
			Product:  cell(rec, idx["producto"]),
			Quantity: qty,
			Discount: discount,
		})
	}
	return lines, nil
}
