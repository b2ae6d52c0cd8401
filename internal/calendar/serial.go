package calendar

// monthDays holds non-leap month lengths, January first.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether y is a Gregorian leap year.
func IsLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// Serial returns the day number of d counted from 0001-01-01 (serial 1).
func Serial(d Date) int {
	years := d.Year - 1
	days := years*365 + floorDiv(years, 4) - floorDiv(years, 100) + floorDiv(years, 400)

	for m := 1; m < d.Month && m <= len(monthDays); m++ {
		days += monthDays[m-1]
		if m == 2 && IsLeap(d.Year) {
			days++
		}
	}
	return days + d.Day
}

// DaysBetween returns Serial(end) - Serial(start). It is negative when end
// precedes start.
func DaysBetween(start, end Date) int {
	return Serial(end) - Serial(start)
}

// floorDiv divides rounding toward negative infinity so that years before
// year 1 keep a continuous leap-day count.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
