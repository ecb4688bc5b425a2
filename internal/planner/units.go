package planner

import "fmt"

// Metric/imperial display conversions. Applied per recipe at display time
// only; the shopping-list aggregation never converts.
const (
	GramsToPounds     = 0.00220462
	PoundsToGrams     = 453.592
	MillilitersToCups = 0.00422675
	CupsToMilliliters = 240
)

// Convert translates an amount between the supported unit pairs.
func Convert(amount float64, from, to string) (float64, error) {
	switch {
	case from == "g" && to == "lb":
		return amount * GramsToPounds, nil
	case from == "lb" && to == "g":
		return amount * PoundsToGrams, nil
	case from == "ml" && to == "cup":
		return amount * MillilitersToCups, nil
	case from == "cup" && to == "ml":
		return amount * CupsToMilliliters, nil
	case from == to:
		return amount, nil
	default:
		return 0, fmt.Errorf("no conversion from %q to %q", from, to)
	}
}
