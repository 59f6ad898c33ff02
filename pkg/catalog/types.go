package catalog

// Amount is an optional monetary value. The zero value is the null amount;
// any arithmetic with a null operand yields null.
type Amount struct {
	Value float64
	Valid bool
}

// Num builds a non-null Amount.
func Num(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Equal reports null-safe equality: two nulls are equal, a null never
// equals a number.
func (a Amount) Equal(b Amount) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Value == b.Value
}

// Mul returns a*b, null when either operand is null.
func (a Amount) Mul(b Amount) Amount {
	if !a.Valid || !b.Valid {
		return Amount{}
	}
	return Num(a.Value * b.Value)
}

// Sub returns a-b, null when either operand is null.
func (a Amount) Sub(b Amount) Amount {
	if !a.Valid || !b.Valid {
		return Amount{}
	}
	return Num(a.Value - b.Value)
}

// Div returns a/b. The result is null when either operand is null or the
// divisor is zero; division by zero is not an error here, it is "undefined".
func (a Amount) Div(b Amount) Amount {
	if !a.Valid || !b.Valid || b.Value == 0 {
		return Amount{}
	}
	return Num(a.Value / b.Value)
}

// Or returns the value, or def when the amount is null.
func (a Amount) Or(def float64) float64 {
	if !a.Valid {
		return def
	}
	return a.Value
}

// Entry represents a single priced product row as read from the catalog
// source. Prices are null when the source cell was empty.
type Entry struct {
	Product       string
	PurchasePrice Amount
	SalePrice     Amount
}

// Resolved maps a canonical product key to exactly one catalog entry.
// Built once per run by Resolve and treated as immutable afterwards.
type Resolved map[string]Entry
