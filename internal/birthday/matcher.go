// Package birthday holds the pure date, template and phone logic of the
// automation engine. Nothing here touches the network or the database.
package birthday

import "time"

// monthDay returns the calendar month/day a birth date falls on in the
// given year. A Feb 29 birth date is celebrated on Mar 1 in non-leap years.
func monthDay(birthDate time.Time, year int) (time.Month, int) {
	m, d := birthDate.Month(), birthDate.Day()
	if m == time.February && d == 29 && !isLeapYear(year) {
		return time.March, 1
	}
	return m, d
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Matches reports whether ref falls on the customer's birthday. The birth
// year is ignored; only month and day matter.
func Matches(birthDate, ref time.Time) bool {
	m, d := monthDay(birthDate, ref.Year())
	return ref.Month() == m && ref.Day() == d
}

// DateFor builds the concrete birthday date used for record keeping:
// month/day from the birth date, year taken from ref (the sending year,
// never the birth year). The result is midnight UTC, suitable for a DATE
// column.
func DateFor(birthDate, ref time.Time) time.Time {
	m, d := monthDay(birthDate, ref.Year())
	return time.Date(ref.Year(), m, d, 0, 0, 0, 0, time.UTC)
}

// UpcomingWithin reports whether the customer's next birthday falls inside
// [today, today+days], inclusive. It considers both the birthday in
// today's year and in the following year so windows spanning New Year
// behave correctly.
func UpcomingWithin(birthDate, today time.Time, days int) bool {
	todayMid := midnight(today)
	windowEnd := todayMid.AddDate(0, 0, days)

	for _, year := range []int{today.Year(), today.Year() + 1} {
		m, d := monthDay(birthDate, year)
		candidate := time.Date(year, m, d, 0, 0, 0, 0, today.Location())
		if !candidate.Before(todayMid) && !candidate.After(windowEnd) {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
