// Package datex provides pure calendar-date helpers for the scheduling
// engine. All functions operate on ISO YYYY-MM-DD strings as calendar dates,
// never as instants, so results do not depend on the process time zone.
package datex

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

// ValidISODate reports whether s is a strict YYYY-MM-DD calendar date.
// Rejects non-existent dates like 2023-02-30.
func ValidISODate(s string) bool {
	if len(s) != len(isoLayout) {
		return false
	}
	_, err := time.Parse(isoLayout, s)
	return err == nil
}

// parseISO parses a strict ISO date into a UTC time at midnight
func parseISO(s string) (time.Time, error) {
	if !ValidISODate(s) {
		return time.Time{}, fmt.Errorf("invalid ISO date %q", s)
	}
	return time.Parse(isoLayout, s)
}

// ConsecutiveDates returns days consecutive calendar dates starting at
// start, inclusive, in ascending order
func ConsecutiveDates(start string, days int) ([]string, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	t, err := parseISO(start)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, t.AddDate(0, 0, i).Format(isoLayout))
	}
	return dates, nil
}

// EndDate returns the last date of a range of days consecutive dates
// starting at start
func EndDate(start string, days int) (string, error) {
	if days <= 0 {
		return "", fmt.Errorf("days must be positive, got %d", days)
	}
	t, err := parseISO(start)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days-1).Format(isoLayout), nil
}

// DayOfWeekName returns the English weekday name for an ISO date
func DayOfWeekName(date string) (string, error) {
	t, err := parseISO(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// WeekOfYear returns the ISO 8601 week number for an ISO date
func WeekOfYear(date string) (int, error) {
	t, err := parseISO(date)
	if err != nil {
		return 0, err
	}
	_, week := t.ISOWeek()
	return week, nil
}
