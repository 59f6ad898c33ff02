package order

import "pedidocalc/pkg/catalog"

// Line is one raw order row. Quantity and Discount are null when the source
// cell was empty; Enrich applies the zero defaults.
type Line struct {
	Product  string
	Quantity catalog.Amount
	Discount catalog.Amount // fraction in [0,1]
}

// EnrichedLine is a Line joined with its resolved catalog prices plus the
// derived money fields. Prices stay null when the product has no catalog
// match, and nulls propagate into every derived field. Margin is null (not
// zero) when the line's revenue is zero.
type EnrichedLine struct {
	Product          string
	Quantity         float64
	Discount         float64
	SalePrice        catalog.Amount
	AppliedSalePrice catalog.Amount
	PurchasePrice    catalog.Amount
	Revenue          catalog.Amount
	Cost             catalog.Amount
	Profit           catalog.Amount
	Margin           catalog.Amount
}

// Summary aggregates the whole order; null line values contribute zero.
// Unlike the per-line margin, WeightedMargin is 0.0 when total revenue is
// zero.
type Summary struct {
	TotalRevenue   float64
	TotalCost      float64
	TotalProfit    float64
	WeightedMargin float64
}
