package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeIDs(badges []Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.ID)
	}
	return out
}

func countBadge(ids []string, id string) int {
	n := 0
	for _, got := range ids {
		if got == id {
			n++
		}
	}
	return n
}

func TestWeekWarriorFiresOnceAtSeventhDay(t *testing.T) {
	store, clk := newTestStore(t)

	var seventh *CompleteResult
	for i := 1; i <= 7; i++ {
		res := store.MarkDayComplete(store.State().CurrentDayID)
		require.True(t, res.Applied)
		if i == 7 {
			seventh = res
		}
		clk.advanceDays(1)
	}
	assert.Contains(t, badgeIDs(seventh.NewBadges), "week_warrior")

	// idempotent replay of day 7 must not re-fire
	replay := store.MarkDayComplete(7)
	assert.False(t, replay.Applied)
	assert.Empty(t, replay.NewBadges)

	// and an eighth day must not re-fire either
	eighth := store.MarkDayComplete(store.State().CurrentDayID)
	require.True(t, eighth.Applied)
	assert.NotContains(t, badgeIDs(eighth.NewBadges), "week_warrior")

	assert.Equal(t, 1, countBadge(store.State().UnlockedBadges, "week_warrior"))
}

func TestStreakBadgeAtThreeDays(t *testing.T) {
	store, clk := newTestStore(t)

	buildStreak(t, store, clk, 3)
	assert.True(t, store.State().HasBadge("three_day_streak"))
}

func TestUnlockBadgeIdempotentAndAwardsXP(t *testing.T) {
	store, _ := newTestStore(t)

	xpBefore := store.State().XP
	require.True(t, store.UnlockBadge("week_warrior"))
	assert.Equal(t, xpBefore+BadgeBonusXP, store.State().XP)

	assert.False(t, store.UnlockBadge("week_warrior"))
	assert.Equal(t, xpBefore+BadgeBonusXP, store.State().XP)
	assert.Equal(t, 1, countBadge(store.State().UnlockedBadges, "week_warrior"))
}

func TestUnlockUnknownBadgeIsRejected(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.UnlockBadge("no_such_badge"))
	assert.Empty(t, store.State().UnlockedBadges)
}

func TestBadgeXPKeepsLevelConsistent(t *testing.T) {
	store, clk := newTestStore(t)

	buildStreak(t, store, clk, 7)
	st := store.State()
	assert.Equal(t, LevelForXP(st.XP), st.Level)
}

func TestAllBadgesHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range AllBadges() {
		assert.False(t, seen[b.ID], "duplicate badge id %q", b.ID)
		seen[b.ID] = true
	}
}
