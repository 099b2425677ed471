// Package moneyfmt renders centavo amounts for display. It never feeds
// back into billing computation.
package moneyfmt

import (
	"fmt"
	"strings"

	"hotel-front-desk/internal/domain/billing"
)

// Display renders a Money value as "₱1,234.50".
func Display(m billing.Money) string {
	c := m.Centavos()
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s₱%s.%02d", sign, groupThousands(c/100), c%100)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
