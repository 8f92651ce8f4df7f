package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pucklab/puckdesk/pkg/domain"
	"github.com/pucklab/puckdesk/pkg/engine/mocks"
)

func TestGenerator_Generate(t *testing.T) {
	t.Run("generates one schedule per date", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makePool(10), nil
			},
		}
		store := &mocks.ScheduleStoreMock{
			UpsertDailyScheduleFunc: func(ctx context.Context, sched *domain.DailySchedule) error {
				return nil
			},
		}

		gen := NewGenerator(content, store, rand.New(rand.NewSource(1)))
		res, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        3,
			ItemsPerDay: 5,
			ContentType: domain.ContentFact,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, res.DatesGenerated)
		assert.Equal(t, "2023-06-01", res.StartDate)
		assert.Equal(t, "2023-06-03", res.EndDate)
		assert.Empty(t, res.Errors)

		require.Len(t, store.UpsertDailyScheduleCalls(), 3)
		for i, call := range store.UpsertDailyScheduleCalls() {
			assert.Equal(t, fmt.Sprintf("2023-06-0%d", i+1), call.Sched.PublishDate)
			assert.Len(t, call.Sched.Items, 5)
			assert.NotEmpty(t, call.Sched.DayOfWeek)
			assert.NotZero(t, call.Sched.WeekOfYear)
		}

		// pool fetch filters on published items of the requested type
		require.Len(t, content.GetPoolCalls(), 1)
		assert.Equal(t, domain.ContentFact, content.GetPoolCalls()[0].Filter.Type)
		assert.Equal(t, domain.StatusPublished, content.GetPoolCalls()[0].Filter.Status)
	})

	t.Run("usage balances across the whole run", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makePool(6), nil
			},
		}
		usage := map[int64]int{}
		store := &mocks.ScheduleStoreMock{
			UpsertDailyScheduleFunc: func(ctx context.Context, sched *domain.DailySchedule) error {
				for _, it := range sched.Items {
					usage[it.ID]++
				}
				return nil
			},
		}

		gen := NewGenerator(content, store, rand.New(rand.NewSource(2)))
		// 4 days x 3 items = 12 slots over 6 items: each used exactly twice
		_, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        4,
			ItemsPerDay: 3,
			ContentType: domain.ContentFact,
		})
		require.NoError(t, err)

		require.Len(t, usage, 6)
		for id, n := range usage {
			assert.Equal(t, 2, n, "item %d", id)
		}
	})

	t.Run("continues past single date failure", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makePool(5), nil
			},
		}
		store := &mocks.ScheduleStoreMock{
			UpsertDailyScheduleFunc: func(ctx context.Context, sched *domain.DailySchedule) error {
				if sched.PublishDate == "2023-06-02" {
					return errors.New("disk full")
				}
				return nil
			},
		}

		gen := NewGenerator(content, store, rand.New(rand.NewSource(3)))
		res, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        3,
			ItemsPerDay: 2,
			ContentType: domain.ContentQuote,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, res.DatesGenerated)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "2023-06-02", res.Errors[0].Date)
		assert.Contains(t, res.Errors[0].Message, "disk full")
	})

	t.Run("fails when every date fails", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makePool(5), nil
			},
		}
		store := &mocks.ScheduleStoreMock{
			UpsertDailyScheduleFunc: func(ctx context.Context, sched *domain.DailySchedule) error {
				return errors.New("database is locked")
			},
		}

		gen := NewGenerator(content, store, rand.New(rand.NewSource(4)))
		_, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        2,
			ItemsPerDay: 2,
			ContentType: domain.ContentFact,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 2 dates failed")
	})

	t.Run("empty pool fails before any persistence", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return nil, nil
			},
		}
		store := &mocks.ScheduleStoreMock{}

		gen := NewGenerator(content, store, nil)
		_, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        2,
			ItemsPerDay: 2,
			ContentType: domain.ContentStat,
		})
		require.ErrorIs(t, err, ErrEmptyPool)
		assert.Empty(t, store.UpsertDailyScheduleCalls())
	})

	t.Run("pool fetch error", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return nil, errors.New("connection refused")
			},
		}

		gen := NewGenerator(content, &mocks.ScheduleStoreMock{}, nil)
		_, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-06-01",
			Days:        1,
			ItemsPerDay: 2,
			ContentType: domain.ContentFact,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch content pool")
	})

	t.Run("validation failures", func(t *testing.T) {
		gen := NewGenerator(&mocks.ContentProviderMock{}, &mocks.ScheduleStoreMock{}, nil)

		tests := []struct {
			name string
			req  GenerateRequest
		}{
			{"invalid start date", GenerateRequest{StartDate: "2023-02-30", Days: 1, ItemsPerDay: 1, ContentType: domain.ContentFact}},
			{"zero days", GenerateRequest{StartDate: "2023-06-01", Days: 0, ItemsPerDay: 1, ContentType: domain.ContentFact}},
			{"negative days", GenerateRequest{StartDate: "2023-06-01", Days: -1, ItemsPerDay: 1, ContentType: domain.ContentFact}},
			{"zero items per day", GenerateRequest{StartDate: "2023-06-01", Days: 1, ItemsPerDay: 0, ContentType: domain.ContentFact}},
			{"unknown content type", GenerateRequest{StartDate: "2023-06-01", Days: 1, ItemsPerDay: 1, ContentType: "haiku"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := gen.Generate(context.Background(), tt.req)
				require.Error(t, err)
			})
		}
	})

	t.Run("derives calendar metadata", func(t *testing.T) {
		content := &mocks.ContentProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makePool(3), nil
			},
		}
		var captured *domain.DailySchedule
		store := &mocks.ScheduleStoreMock{
			UpsertDailyScheduleFunc: func(ctx context.Context, sched *domain.DailySchedule) error {
				captured = sched
				return nil
			},
		}

		gen := NewGenerator(content, store, rand.New(rand.NewSource(5)))
		_, err := gen.Generate(context.Background(), GenerateRequest{
			StartDate:   "2023-12-25",
			Days:        1,
			ItemsPerDay: 2,
			ContentType: domain.ContentFact,
		})
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, "Monday", captured.DayOfWeek)
		require.NotNil(t, captured.SpecialOccasion)
		assert.Equal(t, "Christmas Day", *captured.SpecialOccasion)
		require.NotNil(t, captured.SpecialSeason)
		assert.Equal(t, "Holiday Break", *captured.SpecialSeason)
	})
}
