package domain

import "time"

// ScheduledItem is a content item placed into a daily batch with its
// 1-based display position
type ScheduledItem struct {
	ContentItem
	DisplayOrder int `json:"display_order"`
}

// DailySchedule represents one calendar day's shareable batch. Exactly one
// record exists per publish date; regeneration overwrites it.
type DailySchedule struct {
	ID              int64           `json:"id"`
	PublishDate     string          `json:"publish_date"` // ISO date, unique key
	DayOfWeek       string          `json:"day_of_week"`
	WeekOfYear      int             `json:"week_of_year"`
	SpecialOccasion *string         `json:"special_occasion"`
	SpecialSeason   *string         `json:"special_season"`
	Items           []ScheduledItem `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DateError records a single date's failure during schedule generation
type DateError struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// GenerateResult summarizes a schedule generation run. Partial success is a
// first-class outcome: Errors lists the dates that failed while
// DatesGenerated counts those that persisted.
type GenerateResult struct {
	DatesGenerated int         `json:"dates_generated"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	Errors         []DateError `json:"errors,omitempty"`
}
