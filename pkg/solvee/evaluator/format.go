package evaluator

import (
	"math"
	"strconv"
)

// FormatNumber renders a plain numeric result: integer form when the value
// has no fractional part, otherwise exactly two decimals. 15.0 prints as
// "15", 0.5 as "0.50".
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if v == 0 {
		return "0" // avoid "-0" for negative zero
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatConverted renders a converted magnitude. Conversions always carry
// two decimals, even for whole numbers: "32.00 °F", never "32 °F".
func FormatConverted(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatResult renders any evaluation result for the result column.
func FormatResult(obj Object) string {
	switch obj := obj.(type) {
	case *Number:
		return obj.Inspect()
	case nil:
		return ""
	default:
		return obj.Inspect()
	}
}
