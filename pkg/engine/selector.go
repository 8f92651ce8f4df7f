package engine

import (
	"fmt"

	"github.com/pucklab/puckdesk/pkg/domain"
)

// SelectWithFrequencyControl picks count items from the pool using the
// tracker's least-used rule and tags each with a contiguous 1-based display
// order. When count exceeds the pool size items are necessarily reused; the
// minimum-usage rule spreads that reuse instead of concentrating it.
func SelectWithFrequencyControl(pool []domain.ContentItem, count int, tracker *UsageTracker) ([]domain.ScheduledItem, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if tracker == nil {
		return nil, fmt.Errorf("usage tracker is required")
	}
	if len(tracker.counts) != len(pool) {
		return nil, fmt.Errorf("tracker sized for %d items, pool has %d", len(tracker.counts), len(pool))
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", count)
	}

	selected := make([]domain.ScheduledItem, 0, count)
	for _, idx := range tracker.PickIndices(count) {
		selected = append(selected, domain.ScheduledItem{
			ContentItem:  pool[idx],
			DisplayOrder: len(selected) + 1,
		})
	}
	return selected, nil
}
