package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstCompletionXPComposition(t *testing.T) {
	store, _ := newTestStore(t)

	res := store.MarkDayComplete(1)
	require.True(t, res.Applied)
	assert.True(t, res.FirstCompletion)

	// base 50 + first-ever 20 + streak bonus 1*10
	assert.Equal(t, 80, res.XPAwarded)
	st := store.State()
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, 2, st.CurrentDayID)
	// first_step and first day's XP land together; level stays derived
	assert.Equal(t, LevelForXP(st.XP), st.Level)
}

func TestMarkDayCompleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	first := store.MarkDayComplete(1)
	require.True(t, first.Applied)
	before := store.State()

	second := store.MarkDayComplete(1)
	assert.False(t, second.Applied)
	assert.Equal(t, 0, second.XPAwarded)

	after := store.State()
	assert.Equal(t, before.XP, after.XP)
	assert.Equal(t, before.Streak, after.Streak)
	assert.Equal(t, before.CompletedDayIDs, after.CompletedDayIDs)
	assert.Equal(t, before.UnlockedBadges, after.UnlockedBadges)
}

func TestSameDayCompletionsDoNotInflateStreak(t *testing.T) {
	store, _ := newTestStore(t)

	store.MarkDayComplete(1)
	res := store.MarkDayComplete(2)
	require.True(t, res.Applied)

	assert.Equal(t, 1, store.State().Streak)
	// no streak bonus on a same-day repeat
	assert.Equal(t, DayCompletionBaseXP, res.XPAwarded)
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	store, clk := newTestStore(t)

	store.MarkDayComplete(1)
	clk.advanceDays(1)
	res := store.MarkDayComplete(2)

	assert.Equal(t, 2, res.Streak)
	assert.Equal(t, DayCompletionBaseXP+2*StreakBonusPerDayXP, res.XPAwarded)
}

func TestGapResetsStreakToOne(t *testing.T) {
	store, clk := newTestStore(t)

	store.MarkDayComplete(1)
	clk.advanceDays(3)
	res := store.MarkDayComplete(2)

	assert.Equal(t, 1, res.Streak)
	// a reset earns no streak bonus
	assert.Equal(t, DayCompletionBaseXP, res.XPAwarded)
	assert.Equal(t, 1, store.State().LongestStreak)
}

func TestStreakBonusCap(t *testing.T) {
	store, clk := newTestStore(t)

	buildStreak(t, store, clk, 11)
	clk.advanceDays(1)
	res := store.MarkDayComplete(store.State().CurrentDayID)

	assert.Equal(t, 12, res.Streak)
	assert.Equal(t, DayCompletionBaseXP+StreakBonusCapXP, res.XPAwarded)
}

func TestOutOfRangeDayIgnored(t *testing.T) {
	store, _ := newTestStore(t)

	for _, id := range []int{0, -3, 366, 100000} {
		res := store.MarkDayComplete(id)
		assert.False(t, res.Applied, "day %d", id)
	}
	st := store.State()
	assert.Empty(t, st.CompletedDayIDs)
	assert.Equal(t, 0, st.XP)
}

func TestSetCurrentDayOverridesCursorOnly(t *testing.T) {
	store, _ := newTestStore(t)

	store.MarkDayComplete(1)
	before := store.State()

	store.SetCurrentDay(42)
	after := store.State()
	assert.Equal(t, 42, after.CurrentDayID)
	assert.Equal(t, before.XP, after.XP)
	assert.Equal(t, before.Streak, after.Streak)

	// out of range is ignored
	store.SetCurrentDay(0)
	store.SetCurrentDay(999)
	assert.Equal(t, 42, store.State().CurrentDayID)
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	store, clk := newTestStore(t)

	buildStreak(t, store, clk, 4)
	assert.Equal(t, 4, store.State().LongestStreak)

	clk.advanceDays(3)
	store.CheckAndUpdateStreak()
	assert.Equal(t, 0, store.State().Streak)
	assert.Equal(t, 4, store.State().LongestStreak)

	store.MarkDayComplete(store.State().CurrentDayID)
	assert.Equal(t, 4, store.State().LongestStreak)
}

func TestResetProgressRestoresDefaults(t *testing.T) {
	store, clk := newTestStore(t)

	buildStreak(t, store, clk, 3)
	store.LogPrayer("fajr")
	store.ResetProgress()

	st := store.State()
	assert.Empty(t, st.CompletedDayIDs)
	assert.Equal(t, 1, st.CurrentDayID)
	assert.Equal(t, 0, st.XP)
	assert.Equal(t, 0, st.Streak)
	assert.Equal(t, FreeFreezeCredits, st.FreezeDaysAvailable)
	assert.Empty(t, st.UnlockedBadges)
	assert.Equal(t, 0, st.TotalPrayersLogged)
}

func TestStateSurvivesReload(t *testing.T) {
	repo := newTestRepo(t)
	clk := &fakeClock{now: newTestClockStart()}
	ctx := context.Background()

	store, err := NewStore(ctx, repo, clk)
	require.NoError(t, err)
	store.MarkDayComplete(1)
	clk.advanceDays(1)
	store.MarkDayComplete(2)
	store.LogPrayer("fajr")
	want := store.State()

	reloaded, err := NewStore(ctx, repo, clk)
	require.NoError(t, err)
	assert.Equal(t, want, reloaded.State())
}

func TestAddXPRecomputesLevelAndClampsAtZero(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddXP(600, ReasonManual)
	st := store.State()
	assert.Equal(t, 600, st.XP)
	assert.Equal(t, LevelForXP(600), st.Level)

	store.AddXP(-10000, ReasonManual)
	st = store.State()
	assert.Equal(t, 0, st.XP)
	assert.Equal(t, LevelForXP(0), st.Level)
}
