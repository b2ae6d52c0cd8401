// Package calendar implements the date handling used to measure show
// runtimes: parsing of month/day/year strings and proleptic-Gregorian
// day numbering.
//
// No range validation is applied. Month and day values outside their
// calendar ranges still produce a serial number: days are added as-is,
// months at or below 1 contribute no month days, and months at or above
// 13 contribute all twelve months of the year. [ParseDate] rejects parts
// beyond ±2^50 so that day numbers cannot overflow.
package calendar
