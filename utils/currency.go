package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyINR formats an amount with Indian digit grouping.
// Example: 123456.5 -> "Rs. 1,23,456.50"
func FormatCurrencyINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.SplitN(d.StringFixed(2), ".", 2)
	return "Rs. " + sign + groupIndian(parts[0]) + "." + parts[1]
}

// groupIndian puts a comma after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
