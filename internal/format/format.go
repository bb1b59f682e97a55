// Package format holds the numeric display contracts shared by every renderer.
package format

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Score renders a relevance score with exactly three decimals.
func Score(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Count renders an integer with thousands separators, e.g. 1,234,567.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Average renders a mean with exactly one decimal.
func Average(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
