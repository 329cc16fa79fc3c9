package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatPrice formats a decimal price as "27.500 ₫" with dot grouping.
// Fractional parts survive Shopee's /100000 divisor only in odd cases, so
// they are kept as-is after the grouped integer part.
func formatPrice(d decimal.Decimal) string {
	s := d.String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var parts []string
	for len(intPart) > 3 {
		parts = append([]string{intPart[len(intPart)-3:]}, parts...)
		intPart = intPart[:len(intPart)-3]
	}
	parts = append([]string{intPart}, parts...)

	out := strings.Join(parts, ".")
	if hasFrac {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out + " ₫"
}
