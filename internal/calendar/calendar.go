// Package calendar holds the date arithmetic behind the date picker: parsing
// and formatting DD/MM/YYYY text, month lengths, weekday offsets and the
// day grid of a month.
//
// Every function is pure. Sunday is the first day of the week.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"spese-screen/internal/core"
)

const (
	// InputLayout documents the only accepted text shape for dates.
	InputLayout = "DD/MM/YYYY"

	// MinYear is the earliest year ParseInput accepts.
	MinYear = 1900

	// DaysPerWeek is the column count of a month grid.
	DaysPerWeek = 7

	longLayout  = "January 2, 2006"
	titleLayout = "January 2006"
)

// Cell is one slot of a month grid. Day is zero for the leading blanks.
type Cell struct {
	Day int
}

// IsBlank reports whether the cell is a leading blank.
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// FormatInput renders d as DD/MM/YYYY.
func FormatInput(d core.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), d.Month(), d.Year())
}

// ParseInput parses DD/MM/YYYY text. The boolean is false when the text is
// not three integer fields, a field is out of range, or the day does not
// exist in that month.
func ParseInput(text string) (core.Date, bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return core.Date{}, false
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.Date{}, false
		}
		fields[i] = n
	}
	day, month, year := fields[0], fields[1], fields[2]

	if day < 1 || day > 31 || month < 1 || month > 12 || year < MinYear {
		return core.Date{}, false
	}

	// time.Date rolls 31/04 over into May, so the day no longer matches.
	d := core.NewDate(year, month, day)
	if d.Day() != day {
		return core.Date{}, false
	}
	return d, true
}

// FormatLong renders d like "January 5, 2025".
func FormatLong(d core.Date) string {
	return d.Format(longLayout)
}

// FormatMonthTitle renders the month of d like "January 2025".
func FormatMonthTitle(d core.Date) string {
	return d.Format(titleLayout)
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month (1-12) in year.
func DaysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return core.NewDate(year, month+1, 0).Day()
}

// FirstWeekdayOfMonth returns the weekday index of the 1st, 0 being Sunday.
func FirstWeekdayOfMonth(year, month int) int {
	return int(core.NewDate(year, month, 1).Weekday())
}

// BuildMonthGrid returns the leading blank cells followed by one cell per day.
func BuildMonthGrid(year, month int) []Cell {
	blanks := FirstWeekdayOfMonth(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day})
	}
	return cells
}

// Rows splits a grid into weeks of DaysPerWeek cells. The last row may be short.
func Rows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

// ShiftMonth returns day 1 of the month offset months away from d's month.
func ShiftMonth(d core.Date, offset int) core.Date {
	return core.NewDate(d.Year(), d.Month()+offset, 1)
}

// WithDay returns the date with the given day in d's month, or false when
// that month has no such day.
func WithDay(d core.Date, day int) (core.Date, bool) {
	if day < 1 || day > DaysInMonth(d.Year(), d.Month()) {
		return core.Date{}, false
	}
	return core.NewDate(d.Year(), d.Month(), day), true
}

// WeekdayHeaders returns two-letter column headers in grid order.
func WeekdayHeaders() []string {
	headers := make([]string, 0, DaysPerWeek)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		headers = append(headers, wd.String()[:2])
	}
	return headers
}
