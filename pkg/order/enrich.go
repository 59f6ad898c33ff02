package order

import "pedidocalc/pkg/catalog"

// Enrich joins every order line to the resolved catalog by normalized
// product name and computes the derived money fields. The join is
// many-to-one: the catalog side holds at most one entry per key.
//
// Lines whose product is missing from the catalog keep null prices and have
// their original name collected into the returned unmatched list (first
// occurrence order, no repeats); they never abort the run. The enriched
// slice preserves the input order.
func Enrich(lines []Line, cat catalog.Resolved) ([]EnrichedLine, Summary, []string) {
	out := make([]EnrichedLine, 0, len(lines))
	var unmatched []string
	missing := make(map[string]struct{})

	var sum Summary
	for _, l := range lines {
		entry, ok := cat[catalog.Normalize(l.Product)]
		if !ok {
			if _, dup := missing[l.Product]; !dup {
				missing[l.Product] = struct{}{}
				unmatched = append(unmatched, l.Product)
			}
		}

		qty := l.Quantity.Or(0)
		discount := l.Discount.Or(0)

		applied := entry.SalePrice.Mul(catalog.Num(1 - discount))
		revenue := catalog.Num(qty).Mul(applied)
		cost := catalog.Num(qty).Mul(entry.PurchasePrice)
		profit := revenue.Sub(cost)
		margin := profit.Div(revenue)

		out = append(out, EnrichedLine{
			Product:          l.Product,
			Quantity:         qty,
			Discount:         discount,
			SalePrice:        entry.SalePrice,
			AppliedSalePrice: applied,
			PurchasePrice:    entry.PurchasePrice,
			Revenue:          revenue,
			Cost:             cost,
			Profit:           profit,
			Margin:           margin,
		})

		sum.TotalRevenue += revenue.Or(0)
		sum.TotalCost += cost.Or(0)
		sum.TotalProfit += profit.Or(0)
	}

	if sum.TotalRevenue != 0 {
		sum.WeightedMargin = sum.TotalProfit / sum.TotalRevenue
	}
	return out, sum, unmatched
}
