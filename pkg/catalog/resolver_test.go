package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func e(name string, purchase, sale float64) Entry {
	return Entry{Product: name, PurchasePrice: Num(purchase), SalePrice: Num(sale)}
}

var allPolicies = []Policy{PolicyFirst, PolicyMaxVenta, PolicyMinCosto, PolicyAvg}

func TestResolveSingletonsPassThrough(t *testing.T) {
	entries := []Entry{e("Uno", 1, 2), e("Dos", 3, 4)}
	got, err := Resolve(entries, PolicyFirst)
	if err != nil {
		t.Fatal(err)
	}
	want := Resolved{"UNO": entries[0], "DOS": entries[1]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveEqualitySkipBeatsPolicy(t *testing.T) {
	// Same normalized name, same prices: true duplicates collapse to the
	// first entry regardless of policy.
	entries := []Entry{e("X", 10, 20), e(" x ", 10, 20)}
	for _, p := range allPolicies {
		got, err := Resolve(entries, p)
		if err != nil {
			t.Fatalf("policy %s: %v", p, err)
		}
		if len(got) != 1 {
			t.Fatalf("policy %s: expected 1 entry, got %d", p, len(got))
		}
		if !reflect.DeepEqual(got["X"], entries[0]) {
			t.Errorf("policy %s: expected first entry %v, got %v", p, entries[0], got["X"])
		}
	}
}

func TestResolveEqualitySkipNullPrices(t *testing.T) {
	// Null equals null for the duplicate check, so these never reach the
	// numeric policies.
	entries := []Entry{
		{Product: "X", SalePrice: Num(20)},
		{Product: "x", SalePrice: Num(20)},
	}
	for _, p := range allPolicies {
		got, err := Resolve(entries, p)
		if err != nil {
			t.Fatalf("policy %s: %v", p, err)
		}
		if !reflect.DeepEqual(got["X"], entries[0]) {
			t.Errorf("policy %s: expected first entry, got %v", p, got["X"])
		}
	}
}

func TestResolvePolicies(t *testing.T) {
	conflict := []Entry{e("X", 5, 10), e("x", 7, 15)}

	tests := []struct {
		policy Policy
		want   Entry
	}{
		{PolicyFirst, e("X", 5, 10)},
		{PolicyMaxVenta, e("x", 7, 15)},
		{PolicyMinCosto, e("X", 5, 10)},
		{PolicyAvg, e("X", 6, 12.5)},
	}
	for _, tc := range tests {
		got, err := Resolve(conflict, tc.policy)
		if err != nil {
			t.Fatalf("policy %s: %v", tc.policy, err)
		}
		if !reflect.DeepEqual(got["X"], tc.want) {
			t.Errorf("policy %s: expected %v, got %v", tc.policy, tc.want, got["X"])
		}
	}
}

func TestResolveStableTieBreak(t *testing.T) {
	// Equal extreme values keep the earliest entry reaching them.
	entries := []Entry{e("X", 9, 15), e("x", 7, 15)}
	got, err := Resolve(entries, PolicyMaxVenta)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got["X"], entries[0]) {
		t.Errorf("expected first entry at the tie, got %v", got["X"])
	}
}

func TestResolveNullPriceFailsNumericPolicies(t *testing.T) {
	entries := []Entry{
		{Product: "X", PurchasePrice: Num(5)}, // null sale price
		e("x", 7, 15),
	}
	for _, p := range []Policy{PolicyMaxVenta, PolicyAvg} {
		_, err := Resolve(entries, p)
		var priceErr *PriceError
		if !errors.As(err, &priceErr) {
			t.Fatalf("policy %s: expected PriceError, got %v", p, err)
		}
		if priceErr.Product != "X" || priceErr.Column != "precio venta" {
			t.Errorf("policy %s: unexpected error detail: %+v", p, priceErr)
		}
	}
}

func TestResolveOnlyComparedColumnMustBeNumeric(t *testing.T) {
	// max_venta compares sale prices only; a null purchase price on the
	// winner is fine.
	entries := []Entry{
		{Product: "X", SalePrice: Num(15)},
		e("x", 5, 10),
	}
	got, err := Resolve(entries, PolicyMaxVenta)
	if err != nil {
		t.Fatal(err)
	}
	if got["X"].PurchasePrice.Valid {
		t.Errorf("expected winner with null purchase price, got %v", got["X"])
	}
	if !got["X"].SalePrice.Equal(Num(15)) {
		t.Errorf("expected sale price 15, got %v", got["X"].SalePrice)
	}
}

func TestResolveKeysAreUnique(t *testing.T) {
	entries := []Entry{e("perfume  uno", 1, 2), e(" PERFUME UNO ", 3, 4), e("Perfume Uno", 1, 2)}
	for _, p := range allPolicies {
		got, err := Resolve(entries, p)
		if err != nil {
			t.Fatalf("policy %s: %v", p, err)
		}
		if len(got) != 1 {
			t.Errorf("policy %s: expected a single key, got %v", p, got)
		}
		if _, ok := got["PERFUME UNO"]; !ok {
			t.Errorf("policy %s: missing canonical key, got %v", p, got)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	valid := map[string]Policy{
		"first":     PolicyFirst,
		"max_venta": PolicyMaxVenta,
		"min_costo": PolicyMinCosto,
		"avg":       PolicyAvg,
	}
	for name, want := range valid {
		got, err := ParsePolicy(name)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", name, got, err, want)
		}
	}

	_, err := ParsePolicy("bogus")
	var polErr *PolicyError
	if !errors.As(err, &polErr) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
	if polErr.Value != "bogus" {
		t.Errorf("unexpected error detail: %+v", polErr)
	}
}

func TestResolveRejectsOutOfRangePolicy(t *testing.T) {
	// A Policy forged outside the enum still fails once a group genuinely
	// needs settling.
	entries := []Entry{e("X", 5, 10), e("x", 7, 15)}
	_, err := Resolve(entries, Policy(99))
	var polErr *PolicyError
	if !errors.As(err, &polErr) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
}
