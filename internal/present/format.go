package present

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatValue renders a number with thousands separators and at most three
// fraction digits, trailing zeros dropped.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 3)
}

// FormatRounded renders v rounded to a whole number with separators.
func FormatRounded(v float64) string {
	return FormatValue(math.Round(v))
}

// FormatCount renders an integer count with separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Percentage renders value as a share of total with one decimal, for
// example "12.5%". A zero total yields "0.0%".
func Percentage(value, total float64) string {
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return "0.0%"
	}
	return strconv.FormatFloat(value/total*100, 'f', 1, 64) + "%"
}

// FormatSI renders v with an SI prefix and two significant digits:
// 1234567 becomes "1.2M", 12345 becomes "12k" and 5 becomes "5.0".
func FormatSI(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.0"
	}
	rounded := roundSignificant(v, 2)
	value, prefix := humanize.ComputeSI(rounded)

	decimals := 1 - int(math.Floor(math.Log10(math.Abs(value))))
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	return s + strings.TrimSpace(prefix)
}

func roundSignificant(v float64, digits int) float64 {
	exp := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits-1)-exp)
	return math.Round(v*scale) / scale
}
