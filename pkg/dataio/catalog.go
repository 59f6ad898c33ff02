package dataio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pedidocalc/pkg/catalog"
)

// CatalogSheet is the workbook sheet the catalog is read from.
const CatalogSheet = "PERFUMES"

var catalogColumns = []string{"producto", "precio compra", "precio venta"}

// ReadCatalog loads the PERFUMES sheet of an xlsx workbook into catalog
// entries. Extra columns are ignored; empty price cells load as null and are
// dealt with later by the dedup policy. Rows with every required cell empty
// (trailing spreadsheet padding) are skipped.
func ReadCatalog(path string) ([]catalog.Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(CatalogSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", CatalogSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog sheet %s is empty", CatalogSheet)
	}

	idx, err := headerIndex("catalog", rows[0], catalogColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		product := cell(row, idx["producto"])
		rawPurchase := cell(row, idx["precio compra"])
		rawSale := cell(row, idx["precio venta"])
		if product == "" && rawPurchase == "" && rawSale == "" {
			continue
		}

		purchase, err := parseAmount(rawPurchase)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d, precio compra: %w", i+2, err)
		}
		sale, err := parseAmount(rawSale)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d, precio venta: %w", i+2, err)
		}
		entries = append(entries, catalog.Entry{
			Product:       product,
			PurchasePrice: purchase,
			SalePrice:     sale,
		})
	}
	return entries, nil
}
