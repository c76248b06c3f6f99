// Package money formats Colombian peso amounts for display.
package money

import (
	"math"
	"strconv"
	"strings"
)

// COP renders v rounded to whole pesos with "." as the thousands
// separator, e.g. 16000 -> "$16.000". Non-finite values render as "$0".
func COP(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}
	rounded := math.Round(v)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "$" + group(strconv.FormatFloat(rounded, 'f', 0, 64))
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Percent renders v with one decimal, e.g. 63.2 -> "63.2%".
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
