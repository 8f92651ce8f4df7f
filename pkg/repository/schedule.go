package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/pucklab/puckdesk/pkg/domain"
)

// ScheduleRepository handles daily schedule database operations
type ScheduleRepository struct {
	db *sqlx.DB
}

// dailyScheduleSQL represents a daily schedule for SQL operations
type dailyScheduleSQL struct {
	ID              int64             `db:"id"`
	PublishDate     string            `db:"publish_date"`
	DayOfWeek       string            `db:"day_of_week"`
	WeekOfYear      int               `db:"week_of_year"`
	SpecialOccasion *string           `db:"special_occasion"`
	SpecialSeason   *string           `db:"special_season"`
	Items           scheduledItemsSQL `db:"items"`
	CreatedAt       time.Time         `db:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at"`
}

// scheduledItemsSQL is a JSON array of scheduled items for SQL operations
type scheduledItemsSQL []domain.ScheduledItem

// Value implements driver.Valuer for database storage
func (s scheduledItemsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *scheduledItemsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = scheduledItemsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), s)
	}

	return json.Unmarshal(data, s)
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(database *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: database}
}

// UpsertDailySchedule inserts or overwrites the schedule for a publish
// date. The publish_date unique key makes regeneration idempotent: the
// second writer's items replace the first's.
func (r *ScheduleRepository) UpsertDailySchedule(ctx context.Context, sched *domain.DailySchedule) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO daily_schedules (
				publish_date, day_of_week, week_of_year,
				special_occasion, special_season, items
			) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(publish_date) DO UPDATE SET
				day_of_week = excluded.day_of_week,
				week_of_year = excluded.week_of_year,
				special_occasion = excluded.special_occasion,
				special_season = excluded.special_season,
				items = excluded.items,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query,
			sched.PublishDate, sched.DayOfWeek, sched.WeekOfYear,
			sched.SpecialOccasion, sched.SpecialSeason, scheduledItemsSQL(sched.Items))
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert daily schedule: %w", err)}
		}
		return nil
	})
}

// GetDailySchedule retrieves the schedule for a publish date; returns nil
// without error when the date has no record
func (r *ScheduleRepository) GetDailySchedule(ctx context.Context, publishDate string) (*domain.DailySchedule, error) {
	var sqlSched dailyScheduleSQL
	err := r.db.GetContext(ctx, &sqlSched,
		"SELECT * FROM daily_schedules WHERE publish_date = ?", publishDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily schedule: %w", err)
	}
	return r.toDomainSchedule(&sqlSched), nil
}

// ListDailySchedules retrieves schedules within an inclusive date range,
// ascending by publish date
func (r *ScheduleRepository) ListDailySchedules(ctx context.Context, from, to string) ([]domain.DailySchedule, error) {
	query := `
		SELECT * FROM daily_schedules
		WHERE publish_date >= ? AND publish_date <= ?
		ORDER BY publish_date
	`
	var sqlScheds []dailyScheduleSQL
	if err := r.db.SelectContext(ctx, &sqlScheds, query, from, to); err != nil {
		return nil, fmt.Errorf("list daily schedules: %w", err)
	}

	scheds := make([]domain.DailySchedule, len(sqlScheds))
	for i := range sqlScheds {
		scheds[i] = *r.toDomainSchedule(&sqlScheds[i])
	}
	return scheds, nil
}

// toDomainSchedule converts a SQL schedule to a domain schedule
func (r *ScheduleRepository) toDomainSchedule(s *dailyScheduleSQL) *domain.DailySchedule {
	return &domain.DailySchedule{
		ID:              s.ID,
		PublishDate:     s.PublishDate,
		DayOfWeek:       s.DayOfWeek,
		WeekOfYear:      s.WeekOfYear,
		SpecialOccasion: s.SpecialOccasion,
		SpecialSeason:   s.SpecialSeason,
		Items:           s.Items,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
