package engine

import "time"

const (
	// RecoveryWindow is the hard deadline for restoring a lost streak,
	// measured in wall-clock hours from the moment the loss was recorded.
	RecoveryWindow = 24 * time.Hour

	// StreakRecoveryXPCost applies when no freeze credit is available.
	StreakRecoveryXPCost = 100
)

// CheckAndUpdateStreak is the daily reconciliation pass. It is invoked
// opportunistically when the app comes to the foreground, never on a timer,
// and breaks a streak only when elapsed time demands it.
func (s *Store) CheckAndUpdateStreak() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	today := dateOf(now)
	changed := s.resetPrayerLogIfStale(today)

	if s.state.ActiveFreeze {
		// The freeze absorbs the gap entirely. After a full day it expires
		// and the missed day is written off: pinning the last-completed date
		// to yesterday makes a completion today score as consecutive.
		if s.state.FreezeStartDate != "" && daysBetween(s.state.FreezeStartDate, today) >= 1 {
			s.state.ActiveFreeze = false
			s.state.FreezeStartDate = ""
			s.state.LastCompletedDate = yesterdayOf(now)
			changed = true
		}
		if changed {
			s.persist()
		}
		return
	}

	last := s.state.LastCompletedDate
	if s.state.Streak > 0 && last != "" && last != today && last != yesterdayOf(now) {
		s.state.LastStreakLostAt = now.Format(time.RFC3339)
		s.state.LastStreakValue = s.state.Streak
		s.state.Streak = 0
		changed = true
	}
	if changed {
		s.persist()
	}
}

// UseStreakFreeze spends one freeze credit to protect the current streak.
// It fails when no credit is available, a freeze is already active, or there
// is no streak to protect.
func (s *Store) UseStreakFreeze() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &s.state
	if st.FreezeDaysAvailable <= 0 || st.ActiveFreeze || st.Streak <= 0 {
		return false
	}
	st.FreezeDaysAvailable--
	st.FreezeDaysUsed++
	st.ActiveFreeze = true
	st.FreezeStartDate = dateOf(s.clock.Now())
	s.persist()
	return true
}

// EndStreakFreeze releases an active freeze early. Like auto-expiry, it pins
// the last-completed date to yesterday so the next completion continues the
// streak instead of restarting it.
func (s *Store) EndStreakFreeze() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.ActiveFreeze {
		return
	}
	s.state.ActiveFreeze = false
	s.state.FreezeStartDate = ""
	s.state.LastCompletedDate = yesterdayOf(s.clock.Now())
	s.persist()
}

// canRecoverLocked is the recovery eligibility check. Caller holds the lock.
func (s *Store) canRecoverLocked() bool {
	st := s.state
	if st.LastStreakLostAt == "" || st.LastStreakValue <= 0 {
		return false
	}
	lost, err := time.Parse(time.RFC3339, st.LastStreakLostAt)
	if err != nil {
		return false
	}
	if s.clock.Now().Sub(lost) >= RecoveryWindow {
		return false
	}
	return st.FreezeDaysAvailable > 0 || st.XP >= StreakRecoveryXPCost
}

// CanRecoverStreak reports whether RecoverStreak would succeed right now,
// with no side effects. The UI uses it to gate the recovery prompt.
func (s *Store) CanRecoverStreak() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canRecoverLocked()
}

// RecoverStreak restores the streak lost within the last 24 hours, spending
// one freeze credit if available and 100 XP otherwise.
func (s *Store) RecoverStreak() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canRecoverLocked() {
		return false
	}

	st := &s.state
	if st.FreezeDaysAvailable > 0 {
		st.FreezeDaysAvailable--
		st.FreezeDaysUsed++
	} else {
		s.grantXP(-StreakRecoveryXPCost, ReasonStreakRecovery)
	}

	st.Streak = st.LastStreakValue
	if st.Streak > st.LongestStreak {
		st.LongestStreak = st.Streak
	}
	// Keep the restored streak alive past the next reconciliation; if a day
	// was already completed today, leave the newer date in place.
	y := yesterdayOf(s.clock.Now())
	if st.LastCompletedDate == "" || daysBetween(st.LastCompletedDate, y) > 0 {
		st.LastCompletedDate = y
	}
	st.LastStreakLostAt = ""
	st.LastStreakValue = 0
	s.persist()
	return true
}
