package catalog

import "fmt"

// Policy decides which entry wins when a normalized product name appears
// more than once in the catalog with conflicting prices.
type Policy int

const (
	// PolicyFirst keeps the first entry in input order.
	PolicyFirst Policy = iota
	// PolicyMaxVenta keeps the entry with the highest sale price.
	PolicyMaxVenta
	// PolicyMinCosto keeps the entry with the lowest purchase price.
	PolicyMinCosto
	// PolicyAvg synthesizes an entry averaging all prices in the group.
	PolicyAvg
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyMaxVenta:
		return "max_venta"
	case PolicyMinCosto:
		return "min_costo"
	case PolicyAvg:
		return "avg"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// PolicyError reports a dedup policy value that is not part of the enum.
type PolicyError struct {
	Value string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("unknown dedup policy %q (want first, max_venta, min_costo or avg)", e.Value)
}

// ParsePolicy validates an externally supplied policy name, typically a
// command-line flag value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "first":
		return PolicyFirst, nil
	case "max_venta":
		return PolicyMaxVenta, nil
	case "min_costo":
		return PolicyMinCosto, nil
	case "avg":
		return PolicyAvg, nil
	}
	return 0, &PolicyError{Value: s}
}
