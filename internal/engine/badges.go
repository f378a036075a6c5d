package engine

// Badge is a one-time, non-revocable achievement tied to a milestone.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// BadgeBonusXP is granted once per unlock, through the same XP path as day
// completions so leveling stays consistent regardless of source.
const BadgeBonusXP = 25

type completionMilestone struct {
	Count int
	Badge Badge
}

type streakMilestone struct {
	Streak int
	Badge  Badge
}

type prayerMilestone struct {
	Total int
	Badge Badge
}

// Milestone predicates are equality tests: counters only ever move by one, so
// each badge fires exactly once, at the moment its counter lands on the mark.
var completionMilestones = []completionMilestone{
	{1, Badge{"first_step", "First Step", "Complete your first day", "🌱"}},
	{7, Badge{"week_warrior", "Week Warrior", "Complete 7 days of the journey", "🗓️"}},
	{30, Badge{"month_of_light", "Month of Light", "Complete 30 days of the journey", "🌙"}},
	{100, Badge{"hundred_days", "Hundred Days", "Complete 100 days of the journey", "💯"}},
	{365, Badge{"journey_complete", "Journey Complete", "Complete all 365 days", "🏆"}},
}

var streakMilestones = []streakMilestone{
	{3, Badge{"three_day_streak", "Taking Root", "Reach a 3-day streak", "🌿"}},
	{7, Badge{"seven_day_streak", "Consistent", "Reach a 7-day streak", "🔥"}},
	{30, Badge{"thirty_day_streak", "Unshakeable", "Reach a 30-day streak", "⛰️"}},
	{100, Badge{"hundred_day_streak", "Mountain Firm", "Reach a 100-day streak", "🌟"}},
}

var prayerMilestones = []prayerMilestone{
	{1, Badge{"first_prayer", "First Prayer", "Log your first prayer", "🤲"}},
	{35, Badge{"week_of_prayer", "Week of Prayer", "Log 35 prayers", "🕌"}},
	{150, Badge{"prayer_constant", "Constant in Prayer", "Log 150 prayers", "📿"}},
}

var perfectDayBadge = Badge{"perfect_day", "Perfect Day", "Log all five prayers in one day", "✨"}

// AllBadges returns every defined badge, for display.
func AllBadges() []Badge {
	var out []Badge
	for _, m := range completionMilestones {
		out = append(out, m.Badge)
	}
	for _, m := range streakMilestones {
		out = append(out, m.Badge)
	}
	for _, m := range prayerMilestones {
		out = append(out, m.Badge)
	}
	out = append(out, perfectDayBadge)
	return out
}

func badgeByID(id string) (Badge, bool) {
	for _, b := range AllBadges() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// unlock appends the badge and grants its bonus. Already-unlocked badges are
// a no-op. Caller holds the lock.
func (s *Store) unlock(b Badge) bool {
	if s.state.HasBadge(b.ID) {
		return false
	}
	s.state.UnlockedBadges = append(s.state.UnlockedBadges, b.ID)
	s.grantXP(BadgeBonusXP, ReasonBadgeUnlock)
	return true
}

func (s *Store) checkCompletionBadges() []Badge {
	var out []Badge
	n := len(s.state.CompletedDayIDs)
	for _, m := range completionMilestones {
		if n == m.Count && s.unlock(m.Badge) {
			out = append(out, m.Badge)
		}
	}
	return out
}

func (s *Store) checkStreakBadges() []Badge {
	var out []Badge
	for _, m := range streakMilestones {
		if s.state.Streak == m.Streak && s.unlock(m.Badge) {
			out = append(out, m.Badge)
		}
	}
	return out
}

func (s *Store) checkPrayerBadges() []Badge {
	var out []Badge
	for _, m := range prayerMilestones {
		if s.state.TotalPrayersLogged == m.Total && s.unlock(m.Badge) {
			out = append(out, m.Badge)
		}
	}
	return out
}

// UnlockBadge unlocks a badge by ID, awarding the badge bonus. Unknown IDs
// and repeat unlocks return false with no state change.
func (s *Store) UnlockBadge(badgeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := badgeByID(badgeID)
	if !ok {
		return false
	}
	if !s.unlock(b) {
		return false
	}
	s.persist()
	return true
}
