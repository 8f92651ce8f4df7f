package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pucklab/puckdesk/pkg/datex"
	"github.com/pucklab/puckdesk/pkg/domain"
)

//go:generate moq -out mocks/content_provider.go -pkg mocks -skip-ensure -fmt goimports . ContentProvider
//go:generate moq -out mocks/schedule_store.go -pkg mocks -skip-ensure -fmt goimports . ScheduleStore

// ContentProvider supplies the selection pool
type ContentProvider interface {
	GetPool(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error)
}

// ScheduleStore persists generated daily schedules, keyed by publish date
type ScheduleStore interface {
	UpsertDailySchedule(ctx context.Context, sched *domain.DailySchedule) error
}

// Generator builds one shareable batch per date in a requested range. A
// single usage tracker spans the whole run so item usage balances across
// all dates, not per day.
type Generator struct {
	content ContentProvider
	store   ScheduleStore
	rnd     *rand.Rand
	now     func() time.Time
}

// NewGenerator creates a schedule generator. The random source feeds the
// selection tie-break; nil seeds from the clock.
func NewGenerator(content ContentProvider, store ScheduleStore, rnd *rand.Rand) *Generator {
	return &Generator{content: content, store: store, rnd: rnd, now: time.Now}
}

// GenerateRequest describes one schedule generation run
type GenerateRequest struct {
	StartDate   string
	Days        int
	ItemsPerDay int
	ContentType domain.ContentType
}

// validate checks the request before any I/O; validation failures are
// returned immediately and never retried
func (r GenerateRequest) validate() error {
	if !datex.ValidISODate(r.StartDate) {
		return fmt.Errorf("start date %q is not a valid ISO date", r.StartDate)
	}
	if r.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", r.Days)
	}
	if r.ItemsPerDay <= 0 {
		return fmt.Errorf("items per day must be positive, got %d", r.ItemsPerDay)
	}
	if !r.ContentType.Valid() {
		return fmt.Errorf("unknown content type %q", r.ContentType)
	}
	return nil
}

// Generate builds and upserts one daily schedule per date in the range.
// A single date's persistence failure is collected and the run continues;
// the whole operation fails only when zero dates succeed.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*domain.GenerateResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	dates, err := datex.ConsecutiveDates(req.StartDate, req.Days)
	if err != nil {
		return nil, err
	}

	pool, err := g.content.GetPool(ctx, domain.PoolFilter{Type: req.ContentType, Status: domain.StatusPublished})
	if err != nil {
		return nil, fmt.Errorf("fetch content pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no published %s content available: %w", req.ContentType, ErrEmptyPool)
	}

	// one tracker for the whole run keeps usage balanced across all dates
	tracker, err := NewUsageTracker(len(pool), req.Days*req.ItemsPerDay, g.rnd)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerateResult{
		StartDate: dates[0],
		EndDate:   dates[len(dates)-1],
	}

	for _, date := range dates {
		if err := g.generateDay(ctx, date, pool, req.ItemsPerDay, tracker); err != nil {
			lgr.Printf("[WARN] schedule for %s failed: %v", date, err)
			result.Errors = append(result.Errors, domain.DateError{Date: date, Message: err.Error()})
			continue
		}
		result.DatesGenerated++
	}

	if result.DatesGenerated == 0 {
		return nil, fmt.Errorf("all %d dates failed, first error: %s", len(dates), result.Errors[0].Message)
	}

	lgr.Printf("[INFO] generated %d of %d daily schedules for %s..%s",
		result.DatesGenerated, len(dates), result.StartDate, result.EndDate)
	return result, nil
}

// generateDay selects items for a single date, derives its calendar
// metadata and upserts the schedule record
func (g *Generator) generateDay(ctx context.Context, date string, pool []domain.ContentItem, itemsPerDay int, tracker *UsageTracker) error {
	items, err := SelectWithFrequencyControl(pool, itemsPerDay, tracker)
	if err != nil {
		return fmt.Errorf("select items: %w", err)
	}

	dayName, err := datex.DayOfWeekName(date)
	if err != nil {
		return err
	}
	week, err := datex.WeekOfYear(date)
	if err != nil {
		return err
	}
	occasion, err := datex.SpecialOccasion(date)
	if err != nil {
		return err
	}
	season, err := datex.SpecialSeason(date)
	if err != nil {
		return err
	}

	sched := &domain.DailySchedule{
		PublishDate:     date,
		DayOfWeek:       dayName,
		WeekOfYear:      week,
		SpecialOccasion: occasion,
		SpecialSeason:   season,
		Items:           items,
	}

	if err := g.store.UpsertDailySchedule(ctx, sched); err != nil {
		return fmt.Errorf("upsert schedule: %w", err)
	}

	lgr.Printf("[DEBUG] scheduled %d items for %s (%s)", len(items), date, dayName)
	return nil
}
