package utils

import (
	"fmt"
	"strings"
)

// FormatVND formats an amount as Vietnamese đồng with dot thousand
// separators, e.g. 1250000 -> "1.250.000₫". Amounts are whole đồng.
func FormatVND(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)

	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	out := strings.Join(groups, ".") + "₫"
	if neg {
		out = "-" + out
	}
	return out
}
