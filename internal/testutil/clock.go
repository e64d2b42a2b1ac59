package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MatchDay is the reference instant used by fixtures and clocks in tests.
var MatchDay = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// StepClock returns a clock that starts at start and advances by step on every call.
// It is safe for concurrent use, so message timestamps stay strictly increasing.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
