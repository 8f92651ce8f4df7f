package datex

import "fmt"

// The occasion and season tables below are the single source of truth for
// date-derived schedule metadata. Entries use MM-DD keys so they apply to
// every year; season windows may wrap the year boundary.
//
// calendarVersion bumps when the tables change, so persisted schedules can
// be traced back to the table that produced them.
const calendarVersion = "2026.1"

// CalendarVersion returns the version tag of the occasion/season tables
func CalendarVersion() string { return calendarVersion }

// occasions maps fixed MM-DD dates to named occasions
var occasions = map[string]string{
	"01-01": "Winter Classic",
	"02-14": "Valentine's Day",
	"03-17": "St. Patrick's Day",
	"07-01": "Canada Day",
	"07-04": "Independence Day",
	"10-31": "Halloween",
	"11-12": "Hockey Hall of Fame Weekend",
	"12-24": "Christmas Eve",
	"12-25": "Christmas Day",
	"12-26": "Boxing Day",
	"12-31": "New Year's Eve",
}

// seasonWindow is an inclusive MM-DD range; windows where from > to wrap
// across the year boundary (regular season runs October through April)
type seasonWindow struct {
	name string
	from string
	to   string
}

// seasons are checked in order, first match wins
var seasons = []seasonWindow{
	{name: "Season Opening Week", from: "10-07", to: "10-13"},
	{name: "Holiday Break", from: "12-24", to: "12-26"},
	{name: "All-Star Break", from: "01-30", to: "02-05"},
	{name: "Trade Deadline Week", from: "03-01", to: "03-07"},
	{name: "Stanley Cup Playoffs", from: "04-16", to: "06-30"},
	{name: "Preseason", from: "09-15", to: "10-06"},
	{name: "Regular Season", from: "10-07", to: "04-15"},
	{name: "Offseason", from: "07-01", to: "09-14"},
}

// SpecialOccasion returns the named occasion for an ISO date, or nil when
// the date has none
func SpecialOccasion(date string) (*string, error) {
	t, err := parseISO(date)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	if name, ok := occasions[key]; ok {
		return &name, nil
	}
	return nil, nil
}

// SpecialSeason returns the named season window containing an ISO date, or
// nil when no window matches
func SpecialSeason(date string) (*string, error) {
	t, err := parseISO(date)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	for _, w := range seasons {
		if inWindow(key, w.from, w.to) {
			name := w.name
			return &name, nil
		}
	}
	return nil, nil
}

// inWindow checks an MM-DD key against an inclusive window, handling
// windows that wrap the year boundary
func inWindow(key, from, to string) bool {
	if from <= to {
		return key >= from && key <= to
	}
	return key >= from || key <= to
}
