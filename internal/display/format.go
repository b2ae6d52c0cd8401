// Package display formats values for human-readable log output.
package display

import (
	"fmt"
)

// daysPerYear is the mean Gregorian year length.
const daysPerYear = 365.2425

// FormatDays returns a short label for a day count: whole days below one
// year ("1 day", "300 days"), fractional years from there on ("5.9 years").
// Negative counts keep their sign.
func FormatDays(days int) string {
	abs := days
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs == 1:
		return fmt.Sprintf("%d day", days)
	case abs < 365:
		return fmt.Sprintf("%d days", days)
	}
	return fmt.Sprintf("%.1f years", float64(days)/daysPerYear)
}

// FormatCount pluralizes noun for n ("1 show", "3 shows").
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
