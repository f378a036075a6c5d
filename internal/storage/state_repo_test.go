package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStateRepo(db)
}

func TestStateLoadEmptyReturnsNil(t *testing.T) {
	repo := newTestDB(t)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStateSaveLoadRoundTrip(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	first := []byte(`{"xp":80,"current_day_id":2}`)
	require.NoError(t, repo.Save(ctx, first))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// saving again overwrites the single record
	second := []byte(`{"xp":105,"current_day_id":3}`)
	require.NoError(t, repo.Save(ctx, second))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestXPEventsNewestFirst(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AppendXPEvent(ctx, at, 80, "day_completion"))
	require.NoError(t, repo.AppendXPEvent(ctx, at.Add(time.Minute), 25, "badge_unlock"))
	require.NoError(t, repo.AppendXPEvent(ctx, at.Add(2*time.Minute), -100, "streak_recovery"))

	events, err := repo.RecentXPEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, -100, events[0].Amount)
	assert.Equal(t, "streak_recovery", events[0].Reason)
	assert.Equal(t, 25, events[1].Amount)
}
