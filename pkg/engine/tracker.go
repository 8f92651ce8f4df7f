// Package engine implements the frequency-controlled selection core: an
// in-memory usage tracker, a selector that spreads picks evenly across a
// content pool, and the daily schedule generator built on top of them.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmptyPool signals a selection request against a pool with no items
var ErrEmptyPool = errors.New("content pool is empty")

// UsageTracker records how many times each pool index has been used within
// a single generation run. It lives for one run and is discarded after;
// nothing here touches storage.
//
// Selection contract: every pick goes to an index with the current minimum
// usage count, chosen uniformly at random among the tied candidates. After
// t picks no index's count differs from another's by more than 1.
type UsageTracker struct {
	counts     []int
	totalSlots int
	picked     int
	rnd        *rand.Rand
}

// NewUsageTracker creates a tracker for a pool of poolSize items expected
// to fill totalSlots selections over the run. The random source drives
// tie-breaking; pass a seeded source for deterministic tests, nil to seed
// from the clock.
func NewUsageTracker(poolSize, totalSlots int, rnd *rand.Rand) (*UsageTracker, error) {
	if poolSize <= 0 {
		return nil, ErrEmptyPool
	}
	if totalSlots < 0 {
		return nil, fmt.Errorf("total slots must be non-negative, got %d", totalSlots)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // selection variety, not crypto
	}
	return &UsageTracker{
		counts:     make([]int, poolSize),
		totalSlots: totalSlots,
		rnd:        rnd,
	}, nil
}

// Pick selects one index with the minimum usage count, breaking ties
// uniformly at random, and increments its counter
func (t *UsageTracker) Pick() int {
	minCount := t.counts[0]
	for _, c := range t.counts[1:] {
		if c < minCount {
			minCount = c
		}
	}

	candidates := make([]int, 0, len(t.counts))
	for i, c := range t.counts {
		if c == minCount {
			candidates = append(candidates, i)
		}
	}

	idx := candidates[t.rnd.Intn(len(candidates))]
	t.counts[idx]++
	t.picked++
	return idx
}

// PickIndices selects count indices, each by the least-used rule
func (t *UsageTracker) PickIndices(count int) []int {
	indices := make([]int, 0, count)
	for i := 0; i < count; i++ {
		indices = append(indices, t.Pick())
	}
	return indices
}

// Counts returns a copy of the per-index usage counters
func (t *UsageTracker) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}

// Picked returns the number of selections made so far
func (t *UsageTracker) Picked() int { return t.picked }
