package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPrayerIdempotentPerDay(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.LogPrayer("fajr"))
	assert.False(t, store.LogPrayer("fajr"))

	st := store.State()
	assert.Equal(t, 1, st.TotalPrayersLogged)
	assert.Equal(t, 1, st.PrayerLog.Count())
	assert.True(t, st.HasBadge("first_prayer"))
}

func TestLogPrayerAcceptsCommonSpellings(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.LogPrayer("Zuhr"))
	assert.True(t, store.State().PrayerLog.Dhuhr)
	assert.False(t, store.LogPrayer("duhr"), "alias of an already-logged prayer")
}

func TestLogPrayerRejectsUnknownNames(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.LogPrayer("tahajjud"))
	assert.False(t, store.LogPrayer(""))
	assert.Equal(t, 0, store.State().TotalPrayersLogged)
}

func TestPrayerLogResetsOnNewDay(t *testing.T) {
	store, clk := newTestStore(t)

	require.True(t, store.LogPrayer("fajr"))
	require.True(t, store.LogPrayer("dhuhr"))

	clk.advanceDays(1)
	require.True(t, store.LogPrayer("fajr"))

	st := store.State()
	assert.Equal(t, 1, st.PrayerLog.Count(), "yesterday's flags must be gone")
	assert.True(t, st.PrayerLog.Fajr)
	assert.False(t, st.PrayerLog.Dhuhr)
	assert.Equal(t, 3, st.TotalPrayersLogged, "the running total keeps counting")
}

func TestPerfectDayBadge(t *testing.T) {
	store, _ := newTestStore(t)

	for _, p := range Prayers {
		require.True(t, store.LogPrayer(string(p)))
	}

	st := store.State()
	assert.True(t, st.PrayerLog.Complete())
	assert.True(t, st.HasBadge("perfect_day"))
	assert.Equal(t, 1, countBadge(st.UnlockedBadges, "perfect_day"))
}

func TestPrayerTotalMilestone(t *testing.T) {
	store, clk := newTestStore(t)

	for day := 0; day < 7; day++ {
		for _, p := range Prayers {
			require.True(t, store.LogPrayer(string(p)))
		}
		clk.advanceDays(1)
	}

	st := store.State()
	assert.Equal(t, 35, st.TotalPrayersLogged)
	assert.True(t, st.HasBadge("week_of_prayer"))
	assert.Equal(t, LevelForXP(st.XP), st.Level)
}

func TestReconciliationResetsStalePrayerLog(t *testing.T) {
	store, clk := newTestStore(t)

	require.True(t, store.LogPrayer("isha"))
	clk.advanceDays(1)
	store.CheckAndUpdateStreak()

	st := store.State()
	assert.Equal(t, 0, st.PrayerLog.Count())
	assert.Equal(t, 1, st.TotalPrayersLogged)
}
