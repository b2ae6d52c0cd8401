package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// maxPart bounds each parsed component. Serial multiplies the year by 365,
// so this keeps every serial number well inside int64.
const maxPart = 1 << 50

// Date is a calendar date. It is a plain value; fields are not validated.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses "month/day/year" (e.g. "9/22/2004"). It reports false for
// blank input, for anything other than exactly three slash-separated parts,
// for parts that are not integers, and for parts whose magnitude exceeds
// 2^50. Whitespace around each part is ignored.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || int64(n) > maxPart || int64(n) < -maxPart {
			return Date{}, false
		}
		nums[i] = n
	}
	return Date{Year: nums[2], Month: nums[0], Day: nums[1]}, true
}
