package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rihla/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advanceDays(n int) { c.now = c.now.AddDate(0, 0, n) }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRepo(t *testing.T) *storage.StateRepo {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewStateRepo(db)
}

func newTestClockStart() time.Time {
	return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: newTestClockStart()}
	store, err := NewStore(context.Background(), newTestRepo(t), clk)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, clk
}

// buildStreak completes n consecutive journey days, one per calendar day,
// ending on the clock's current day.
func buildStreak(t *testing.T, s *Store, clk *fakeClock, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		res := s.MarkDayComplete(s.State().CurrentDayID)
		if !res.Applied {
			t.Fatalf("completion %d not applied", i+1)
		}
		if i < n-1 {
			clk.advanceDays(1)
		}
	}
	if got := s.State().Streak; got != n {
		t.Fatalf("built streak=%d, want %d", got, n)
	}
}
