package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsageTracker(t *testing.T) {
	t.Run("valid tracker", func(t *testing.T) {
		tracker, err := NewUsageTracker(5, 20, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 0, tracker.Picked())
		assert.Equal(t, []int{0, 0, 0, 0, 0}, tracker.Counts())
	})

	t.Run("nil random source seeds from clock", func(t *testing.T) {
		tracker, err := NewUsageTracker(3, 9, nil)
		require.NoError(t, err)
		idx := tracker.Pick()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	})

	t.Run("empty pool rejected", func(t *testing.T) {
		_, err := NewUsageTracker(0, 10, nil)
		require.ErrorIs(t, err, ErrEmptyPool)
	})

	t.Run("negative pool rejected", func(t *testing.T) {
		_, err := NewUsageTracker(-1, 10, nil)
		require.ErrorIs(t, err, ErrEmptyPool)
	})

	t.Run("negative slots rejected", func(t *testing.T) {
		_, err := NewUsageTracker(5, -1, nil)
		require.Error(t, err)
	})
}

func TestUsageTracker_Pick(t *testing.T) {
	t.Run("picks least used index", func(t *testing.T) {
		tracker, err := NewUsageTracker(3, 3, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		// after 3 picks over 3 items every index must be used exactly once
		seen := map[int]int{}
		for i := 0; i < 3; i++ {
			seen[tracker.Pick()]++
		}
		assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, seen)
	})

	t.Run("counts never differ by more than one", func(t *testing.T) {
		tracker, err := NewUsageTracker(7, 100, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			tracker.Pick()
			counts := tracker.Counts()
			minC, maxC := counts[0], counts[0]
			for _, c := range counts[1:] {
				if c < minC {
					minC = c
				}
				if c > maxC {
					maxC = c
				}
			}
			assert.LessOrEqual(t, maxC-minC, 1, "after %d picks", i+1)
		}
		assert.Equal(t, 100, tracker.Picked())
	})

	t.Run("seeded source is deterministic", func(t *testing.T) {
		t1, err := NewUsageTracker(10, 30, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		t2, err := NewUsageTracker(10, 30, rand.New(rand.NewSource(99)))
		require.NoError(t, err)

		assert.Equal(t, t1.PickIndices(30), t2.PickIndices(30))
	})

	t.Run("single item pool always picks zero", func(t *testing.T) {
		tracker, err := NewUsageTracker(1, 5, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0, 0}, tracker.PickIndices(5))
		assert.Equal(t, []int{5}, tracker.Counts())
	})
}

func TestUsageTracker_PickIndices(t *testing.T) {
	t.Run("exact multiple distributes evenly", func(t *testing.T) {
		tracker, err := NewUsageTracker(5, 20, rand.New(rand.NewSource(3)))
		require.NoError(t, err)

		tracker.PickIndices(20)
		for i, c := range tracker.Counts() {
			assert.Equal(t, 4, c, "index %d", i)
		}
	})

	t.Run("non-multiple stays within floor and ceil", func(t *testing.T) {
		tracker, err := NewUsageTracker(6, 10, rand.New(rand.NewSource(5)))
		require.NoError(t, err)

		tracker.PickIndices(10)
		for i, c := range tracker.Counts() {
			assert.GreaterOrEqual(t, c, 1, "index %d", i)
			assert.LessOrEqual(t, c, 2, "index %d", i)
		}
	})

	t.Run("counts returns a copy", func(t *testing.T) {
		tracker, err := NewUsageTracker(3, 3, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		counts := tracker.Counts()
		counts[0] = 100
		assert.NotEqual(t, 100, tracker.Counts()[0])
	})
}
