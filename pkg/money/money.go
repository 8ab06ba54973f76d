// Package money formats int64 cent amounts for presentation. All internal
// arithmetic stays in cents; only responses render "12.34" strings.
package money

import "fmt"

func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
