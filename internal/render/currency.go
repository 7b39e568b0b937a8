package render

import (
	"fmt"
	"strings"
)

// FormatMoney renders a value in Brazilian conventions: thousands
// separated by '.', decimals by ',', e.g. "R$ 1.234,56".
func FormatMoney(symbol string, value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := fmt.Sprintf("%s %s,%s", symbol, strings.Join(groups, "."), frac)
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCount renders an integer with '.' thousands separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out
}
