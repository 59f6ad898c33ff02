package catalog

import "fmt"

// PriceError reports a null price feeding a price-based dedup policy.
// Defaulting such a price to zero would silently pick a wrong winner, so the
// run aborts instead.
type PriceError struct {
	Product string
	Column  string
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("product %q has no numeric %s, cannot apply a price-based dedup policy", e.Product, e.Column)
}

// Resolve collapses catalog entries into exactly one entry per canonical
// product key. Groups whose members all carry identical prices are true
// duplicates and keep their first entry no matter the policy; groups with
// genuine price disagreement are settled by policy.
func Resolve(entries []Entry, policy Policy) (Resolved, error) {
	// First-seen key order keeps error reporting deterministic.
	keys := make([]string, 0, len(entries))
	groups := make(map[string][]Entry, len(entries))
	for _, e := range entries {
		k := Normalize(e.Product)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], e)
	}

	out := make(Resolved, len(groups))
	for _, k := range keys {
		winner, err := settle(groups[k], policy)
		if err != nil {
			return nil, err
		}
		out[k] = winner
	}
	return out, nil
}

func settle(group []Entry, policy Policy) (Entry, error) {
	if len(group) == 1 || samePrices(group) {
		return group[0], nil
	}

	switch policy {
	case PolicyFirst:
		return group[0], nil
	case PolicyMaxVenta:
		return pick(group, "precio venta", salePrice, func(v, best float64) bool { return v > best })
	case PolicyMinCosto:
		return pick(group, "precio compra", purchasePrice, func(v, best float64) bool { return v < best })
	case PolicyAvg:
		return average(group)
	}
	return Entry{}, &PolicyError{Value: policy.String()}
}

// samePrices reports whether every entry in the group carries the same
// purchase and sale price, with null considered equal to null.
func samePrices(group []Entry) bool {
	first := group[0]
	for _, e := range group[1:] {
		if !e.PurchasePrice.Equal(first.PurchasePrice) || !e.SalePrice.Equal(first.SalePrice) {
			return false
		}
	}
	return true
}

func purchasePrice(e Entry) Amount { return e.PurchasePrice }
func salePrice(e Entry) Amount     { return e.SalePrice }

// pick is a stable arg-extremum over the group: ties keep the earliest entry
// reaching the extreme value.
func pick(group []Entry, column string, price func(Entry) Amount, better func(v, best float64) bool) (Entry, error) {
	best, err := numeric(group[0], column, price)
	if err != nil {
		return Entry{}, err
	}
	winner := 0
	for i, e := range group[1:] {
		v, err := numeric(e, column, price)
		if err != nil {
			return Entry{}, err
		}
		if better(v, best) {
			winner, best = i+1, v
		}
	}
	return group[winner], nil
}

func average(group []Entry) (Entry, error) {
	var sumPurchase, sumSale float64
	for _, e := range group {
		p, err := numeric(e, "precio compra", purchasePrice)
		if err != nil {
			return Entry{}, err
		}
		s, err := numeric(e, "precio venta", salePrice)
		if err != nil {
			return Entry{}, err
		}
		sumPurchase += p
		sumSale += s
	}
	n := float64(len(group))
	return Entry{
		Product:       group[0].Product,
		PurchasePrice: Num(sumPurchase / n),
		SalePrice:     Num(sumSale / n),
	}, nil
}

func numeric(e Entry, column string, price func(Entry) Amount) (float64, error) {
	a := price(e)
	if !a.Valid {
		return 0, &PriceError{Product: e.Product, Column: column}
	}
	return a.Value, nil
}
