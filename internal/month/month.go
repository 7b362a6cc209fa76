// Package month resolves "YYYY-MM" month strings into calendar-accurate
// date ranges. All report and budget queries are scoped by the ranges
// produced here, so the boundaries must land exactly on the first instant
// of day 1 and the last instant of the month's final day.
package month

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	apperrors "pennywise/internal/errors"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Range is the inclusive [Start, End] interval covering one calendar month.
type Range struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether m matches the YYYY-MM format.
func Valid(m string) bool {
	return monthPattern.MatchString(m)
}

// Resolve parses a "YYYY-MM" string into its inclusive date range in UTC.
// Start is the first instant of day 1 (00:00:00.000) and End is the last
// millisecond of the final calendar day, computed via day 0 of the next
// month so 28/29/30/31-day months and leap years all resolve correctly.
// Returns ErrInvalidMonthFormat if m does not match the pattern.
func Resolve(m string) (Range, error) {
	year, mon, err := parse(m)
	if err != nil {
		return Range{}, err
	}

	start := time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(mon)+1, 0, 23, 59, 59, 999000000, time.UTC)
	return Range{Start: start, End: end}, nil
}

// DaysInMonth returns the number of calendar days in the given month,
// used to pre-size dense per-day result slices.
func DaysInMonth(m string) (int, error) {
	year, mon, err := parse(m)
	if err != nil {
		return 0, err
	}
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(mon)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// Day formats day d of month m as a "YYYY-MM-DD" date label.
func Day(m string, d int) string {
	return fmt.Sprintf("%s-%02d", m, d)
}

func parse(m string) (year, mon int, err error) {
	if !Valid(m) {
		return 0, 0, apperrors.ErrInvalidMonthFormat
	}
	year, _ = strconv.Atoi(m[:4])
	mon, _ = strconv.Atoi(m[5:])
	return year, mon, nil
}
