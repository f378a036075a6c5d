package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"rihla/internal/content"
)

// XP grant reasons recorded in the audit trail.
const (
	ReasonDayCompletion  = "day_completion"
	ReasonBadgeUnlock    = "badge_unlock"
	ReasonStreakRecovery = "streak_recovery"
	ReasonManual         = "manual"
)

// Persister is the durable home of the aggregate. Writes are write-behind:
// the in-memory state is authoritative for the session and a failed save is
// simply retried by the next action's save.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	AppendXPEvent(ctx context.Context, at time.Time, amount int, reason string) error
}

// Store is the progression engine: a single-writer state container whose only
// mutation paths are the action methods below. UI layers hold a *Store and
// read through the derived getters.
type Store struct {
	mu     sync.Mutex
	state  ProgressState
	states Persister
	clock  Clock
}

// NewStore loads the persisted aggregate (or starts a fresh one) from states.
// A nil clock selects the system clock; a nil persister keeps the store purely
// in memory.
func NewStore(ctx context.Context, states Persister, clock Clock) (*Store, error) {
	if clock == nil {
		clock = SystemClock()
	}
	s := &Store{states: states, clock: clock, state: defaultState()}
	if states == nil {
		return s, nil
	}

	raw, err := states.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}

	// Decode over the defaults so fields added after a profile was written
	// fall back to safe values (the record carries no schema version).
	st := defaultState()
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if st.CurrentDayID < 1 {
		st.CurrentDayID = 1
	}
	if st.CompletedDayIDs == nil {
		st.CompletedDayIDs = []int{}
	}
	if st.UnlockedBadges == nil {
		st.UnlockedBadges = []string{}
	}
	st.Level = LevelForXP(st.XP)
	s.state = st
	return s, nil
}

// persist flushes the aggregate. Failures are delegated entirely to the
// storage layer; the action that triggered the write has already succeeded.
func (s *Store) persist() {
	if s.states == nil {
		return
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return
	}
	_ = s.states.Save(context.Background(), raw)
}

// grantXP is the single XP mutation primitive: every engine component funnels
// grants and debits through here so the level projection and the audit trail
// can never drift. Caller holds the lock.
func (s *Store) grantXP(amount int, reason string) {
	if amount == 0 {
		return
	}
	s.state.XP += amount
	if s.state.XP < 0 {
		s.state.XP = 0
	}
	s.state.Level = LevelForXP(s.state.XP)
	if s.states != nil {
		_ = s.states.AppendXPEvent(context.Background(), s.clock.Now(), amount, reason)
	}
}

// AddXP grants (or, with a negative amount, debits) XP and recomputes the
// level. XP never goes below zero.
func (s *Store) AddXP(amount int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reason == "" {
		reason = ReasonManual
	}
	s.grantXP(amount, reason)
	s.persist()
}

// SetCurrentDay overrides the day cursor for manual navigation. It performs
// no reward or streak computation. Out-of-range days are ignored.
func (s *Store) SetCurrentDay(dayID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dayID < 1 || dayID > content.TotalDays {
		return
	}
	s.state.CurrentDayID = dayID
	s.persist()
}

// AddFreezeDays credits n streak-freeze days. Non-positive n is ignored.
func (s *Store) AddFreezeDays(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		return
	}
	s.state.FreezeDaysAvailable += n
	s.persist()
}

// ResetProgress restores the aggregate to first-launch defaults.
func (s *Store) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = defaultState()
	s.persist()
}

// State returns a snapshot of the aggregate for rendering.
func (s *Store) State() ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.CompletedDayIDs = append([]int(nil), s.state.CompletedDayIDs...)
	st.UnlockedBadges = append([]string(nil), s.state.UnlockedBadges...)
	return st
}

// CurrentLevel returns the level descriptor for the current XP total.
func (s *Store) CurrentLevel() LevelInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return levelInfoForXP(s.state.XP)
}

// LevelProgress returns percent progress from the current level's threshold
// toward the next one. The top level reports 100.
func (s *Store) LevelProgress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := levelInfoForXP(s.state.XP)
	if info.NextMinXP <= info.MinXP {
		return 100
	}
	return float64(s.state.XP-info.MinXP) / float64(info.NextMinXP-info.MinXP) * 100
}

// JourneyProgress returns percent progress through the 365-day curriculum.
func (s *Store) JourneyProgress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(len(s.state.CompletedDayIDs)) / float64(content.TotalDays) * 100
}

// CompletedCount returns the number of distinct completed days.
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.CompletedDayIDs)
}
