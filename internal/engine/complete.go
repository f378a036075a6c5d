package engine

import "rihla/internal/content"

const (
	// DayCompletionBaseXP is awarded for every newly completed journey day.
	DayCompletionBaseXP = 50

	// FirstCompletionBonusXP is a one-time bonus on the first-ever completion.
	FirstCompletionBonusXP = 20

	// StreakBonusPerDayXP scales with the new streak length, capped at
	// StreakBonusCapXP, and applies only when the completion extends the streak.
	StreakBonusPerDayXP = 10
	StreakBonusCapXP    = 100
)

// CompleteResult reports what a completion changed, for display. Applied is
// false when the day was already completed or out of range.
type CompleteResult struct {
	DayID           int
	Applied         bool
	FirstCompletion bool
	XPAwarded       int
	StreakBefore    int
	Streak          int
	LevelBefore     int
	LevelAfter      int
	LevelUp         bool
	NewBadges       []Badge
}

// MarkDayComplete records a journey day as done and runs the streak, reward,
// and badge engines as one atomic transition. Duplicate and out-of-range day
// IDs are idempotent no-ops.
func (s *Store) MarkDayComplete(dayID int) *CompleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &CompleteResult{
		DayID:        dayID,
		StreakBefore: s.state.Streak,
		Streak:       s.state.Streak,
		LevelBefore:  s.state.Level,
		LevelAfter:   s.state.Level,
	}
	if dayID < 1 || dayID > content.TotalDays {
		return res
	}
	if s.state.DayCompleted(dayID) {
		return res
	}

	today := dateOf(s.clock.Now())
	extended := s.advanceStreak(today)

	s.state.CompletedDayIDs = append(s.state.CompletedDayIDs, dayID)
	s.state.CurrentDayID = dayID + 1

	first := len(s.state.CompletedDayIDs) == 1
	xp := DayCompletionBaseXP
	if first {
		xp += FirstCompletionBonusXP
	}
	if extended {
		bonus := s.state.Streak * StreakBonusPerDayXP
		if bonus > StreakBonusCapXP {
			bonus = StreakBonusCapXP
		}
		xp += bonus
	}
	s.grantXP(xp, ReasonDayCompletion)

	res.Applied = true
	res.FirstCompletion = first
	res.XPAwarded = xp
	res.Streak = s.state.Streak
	res.NewBadges = append(res.NewBadges, s.checkCompletionBadges()...)
	res.NewBadges = append(res.NewBadges, s.checkStreakBadges()...)
	res.LevelAfter = s.state.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore

	s.persist()
	return res
}

// advanceStreak applies the completion-time continuity rules, in precedence
// order, and reports whether the completion extended (or started) the streak.
// A gap of two or more days restarts the streak at 1: the completing day
// itself begins the new streak, but earns no streak bonus.
func (s *Store) advanceStreak(today string) bool {
	st := &s.state
	extended := false
	switch {
	case st.LastCompletedDate == today:
		// Repeat completions on one day never inflate the streak.
	case st.LastCompletedDate == "":
		st.Streak = 1
		extended = true
	case daysBetween(st.LastCompletedDate, today) == 1:
		st.Streak++
		extended = true
	default:
		st.Streak = 1
	}
	if st.Streak > st.LongestStreak {
		st.LongestStreak = st.Streak
	}
	st.LastCompletedDate = today
	return extended
}
