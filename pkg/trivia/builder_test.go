package trivia_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pucklab/puckdesk/pkg/domain"
	"github.com/pucklab/puckdesk/pkg/trivia"
	"github.com/pucklab/puckdesk/pkg/trivia/mocks"
)

func makeQuestionPool(n int, contentType domain.ContentType) []domain.ContentItem {
	pool := make([]domain.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, domain.ContentItem{
			ID:      int64(i + 1),
			Type:    contentType,
			Text:    fmt.Sprintf("question %d", i+1),
			Answer:  fmt.Sprintf("answer %d", i+1),
			Options: []string{"a", "b", "c", "d"},
			Theme:   "original six",
			Status:  domain.StatusPublished,
		})
	}
	return pool
}

func TestBuilder_BuildSet(t *testing.T) {
	t.Run("successful build", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(20, domain.ContentTriviaMC), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}

		b := trivia.NewBuilder(questions, store, nil, rand.New(rand.NewSource(1)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "original six",
			QuestionCount: 10,
		})

		assert.Equal(t, domain.BuildSuccess, res.Status)
		assert.Empty(t, res.Errors)
		require.NotNil(t, res.Set)
		assert.Equal(t, 10, res.Set.QuestionCount)
		assert.Len(t, res.Set.Questions, 10)
		assert.NotEmpty(t, res.Set.SetID)
		assert.NotEmpty(t, res.Set.Slug)
		assert.Equal(t, "Multiple Choice Trivia: Original Six", res.Set.Title)
		assert.Equal(t, domain.StatusUnpublished, res.Set.Status)
		assert.GreaterOrEqual(t, res.ExecutionTime.Nanoseconds(), int64(0))

		// pool fetch maps set type to the trivia content type
		require.Len(t, questions.GetPoolCalls(), 1)
		assert.Equal(t, domain.ContentTriviaMC, questions.GetPoolCalls()[0].Filter.Type)
		assert.Equal(t, "original six", questions.GetPoolCalls()[0].Filter.Theme)
		assert.Equal(t, domain.StatusPublished, questions.GetPoolCalls()[0].Filter.Status)

		// display order is contiguous from 1
		for i, q := range res.Set.Questions {
			assert.Equal(t, i+1, q.DisplayOrder)
		}

		// all stages passed
		require.Len(t, res.Tasks, 5)
		for _, task := range res.Tasks {
			assert.True(t, task.Success, "stage %s", task.Stage)
		}
	})

	t.Run("insufficient pool without allow partial fails", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(6, domain.ContentTriviaMC), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}

		b := trivia.NewBuilder(questions, store, nil, rand.New(rand.NewSource(2)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "original six",
			QuestionCount: 10,
			AllowPartial:  false,
		})

		assert.Equal(t, domain.BuildFailed, res.Status)
		require.NotEmpty(t, res.Errors)
		assert.Equal(t, domain.ErrCodeInsufficientPool, res.Errors[0].Code)
		assert.Nil(t, res.Set)
		assert.Empty(t, store.InsertTriviaSetCalls(), "nothing should be persisted")
	})

	t.Run("insufficient pool with allow partial builds partial set", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(6, domain.ContentTriviaMC), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}

		b := trivia.NewBuilder(questions, store, nil, rand.New(rand.NewSource(3)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "original six",
			QuestionCount: 10,
			AllowPartial:  true,
		})

		assert.Equal(t, domain.BuildPartial, res.Status)
		require.NotNil(t, res.Set)
		assert.Equal(t, 6, res.Set.QuestionCount)
		assert.Len(t, res.Set.Questions, 6)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0], "partial")
		require.Len(t, store.InsertTriviaSetCalls(), 1)
	})

	t.Run("no matching content", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return nil, nil
			},
		}

		b := trivia.NewBuilder(questions, &mocks.SetStoreMock{}, nil, nil)
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaTrueFalse,
			Theme:         "hat tricks",
			QuestionCount: 5,
		})

		assert.Equal(t, domain.BuildFailed, res.Status)
		require.NotEmpty(t, res.Errors)
		assert.Equal(t, domain.ErrCodeNoContent, res.Errors[0].Code)
	})

	t.Run("pool fetch error", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return nil, errors.New("database is locked")
			},
		}

		b := trivia.NewBuilder(questions, &mocks.SetStoreMock{}, nil, nil)
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "rivalries",
			QuestionCount: 5,
		})

		assert.Equal(t, domain.BuildFailed, res.Status)
		require.NotEmpty(t, res.Errors)
		assert.Equal(t, domain.ErrCodePersistence, res.Errors[0].Code)
		assert.Equal(t, "fetch-pool", res.Errors[0].Stage)
	})

	t.Run("persistence failure", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(10, domain.ContentTriviaMC), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error {
				return errors.New("disk full")
			},
		}

		b := trivia.NewBuilder(questions, store, nil, rand.New(rand.NewSource(4)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "original six",
			QuestionCount: 5,
		})

		assert.Equal(t, domain.BuildFailed, res.Status)
		require.NotEmpty(t, res.Errors)
		assert.Equal(t, domain.ErrCodePersistence, res.Errors[0].Code)
		assert.Equal(t, "persist", res.Errors[0].Stage)
		assert.Nil(t, res.Set)
	})

	t.Run("validation failures", func(t *testing.T) {
		b := trivia.NewBuilder(&mocks.QuestionProviderMock{}, &mocks.SetStoreMock{}, nil, nil)

		tests := []struct {
			name string
			req  trivia.BuildRequest
		}{
			{"unknown type", trivia.BuildRequest{Type: "jeopardy", Theme: "x", QuestionCount: 5}},
			{"empty theme", trivia.BuildRequest{Type: domain.TriviaMultipleChoice, Theme: "  ", QuestionCount: 5}},
			{"zero count", trivia.BuildRequest{Type: domain.TriviaMultipleChoice, Theme: "x", QuestionCount: 0}},
			{"negative count", trivia.BuildRequest{Type: domain.TriviaMultipleChoice, Theme: "x", QuestionCount: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := b.BuildSet(context.Background(), tt.req)
				assert.Equal(t, domain.BuildFailed, res.Status)
				require.NotEmpty(t, res.Errors)
				assert.Equal(t, domain.ErrCodeValidation, res.Errors[0].Code)
			})
		}
	})

	t.Run("composer sets title and description", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(10, domain.ContentTriviaMC), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}
		composer := &mocks.ComposerMock{
			ComposeSetMetaFunc: func(ctx context.Context, set *domain.TriviaSet) (string, string, error) {
				return "Original Six Legends", "Ten questions on hockey's founding franchises.", nil
			},
		}

		b := trivia.NewBuilder(questions, store, composer, rand.New(rand.NewSource(5)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaMultipleChoice,
			Theme:         "original six",
			QuestionCount: 10,
		})

		assert.Equal(t, domain.BuildSuccess, res.Status)
		require.NotNil(t, res.Set)
		assert.Equal(t, "Original Six Legends", res.Set.Title)
		assert.Equal(t, "Ten questions on hockey's founding franchises.", res.Set.Description)
		require.Len(t, composer.ComposeSetMetaCalls(), 1)
	})

	t.Run("composer failure keeps derived title and warns", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(10, domain.ContentTriviaTF), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}
		composer := &mocks.ComposerMock{
			ComposeSetMetaFunc: func(ctx context.Context, set *domain.TriviaSet) (string, string, error) {
				return "", "", errors.New("model timeout")
			},
		}

		b := trivia.NewBuilder(questions, store, composer, rand.New(rand.NewSource(6)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaTrueFalse,
			Theme:         "stanley cup history",
			QuestionCount: 5,
		})

		assert.Equal(t, domain.BuildSuccess, res.Status)
		require.NotNil(t, res.Set)
		assert.Equal(t, "True Or False Trivia: Stanley Cup History", res.Set.Title)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0], "composer")
	})

	t.Run("questions selected without repeats when pool is large enough", func(t *testing.T) {
		questions := &mocks.QuestionProviderMock{
			GetPoolFunc: func(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error) {
				return makeQuestionPool(30, domain.ContentTriviaWAI), nil
			},
		}
		store := &mocks.SetStoreMock{
			InsertTriviaSetFunc: func(ctx context.Context, set *domain.TriviaSet) error { return nil },
		}

		b := trivia.NewBuilder(questions, store, nil, rand.New(rand.NewSource(7)))
		res := b.BuildSet(context.Background(), trivia.BuildRequest{
			Type:          domain.TriviaWhoAmI,
			Theme:         "goaltending greats",
			QuestionCount: 10,
		})

		require.Equal(t, domain.BuildSuccess, res.Status)
		seen := map[int64]bool{}
		for _, q := range res.Set.Questions {
			assert.False(t, seen[q.ID], "question %d repeated", q.ID)
			seen[q.ID] = true
		}
	})
}
