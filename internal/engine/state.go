package engine

// FreeFreezeCredits is the number of streak-freeze credits a fresh profile
// starts with.
const FreeFreezeCredits = 2

// PrayerLog is the per-day record of the five daily prayers. It is reset
// lazily whenever the wall-clock date moves past Date.
type PrayerLog struct {
	Date    string `json:"date"`
	Fajr    bool   `json:"fajr"`
	Dhuhr   bool   `json:"dhuhr"`
	Asr     bool   `json:"asr"`
	Maghrib bool   `json:"maghrib"`
	Isha    bool   `json:"isha"`
}

func (p PrayerLog) logged(pr Prayer) bool {
	switch pr {
	case PrayerFajr:
		return p.Fajr
	case PrayerDhuhr:
		return p.Dhuhr
	case PrayerAsr:
		return p.Asr
	case PrayerMaghrib:
		return p.Maghrib
	case PrayerIsha:
		return p.Isha
	default:
		return false
	}
}

func (p *PrayerLog) mark(pr Prayer) {
	switch pr {
	case PrayerFajr:
		p.Fajr = true
	case PrayerDhuhr:
		p.Dhuhr = true
	case PrayerAsr:
		p.Asr = true
	case PrayerMaghrib:
		p.Maghrib = true
	case PrayerIsha:
		p.Isha = true
	}
}

// Count returns how many of today's prayers are logged.
func (p PrayerLog) Count() int {
	n := 0
	for _, done := range []bool{p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha} {
		if done {
			n++
		}
	}
	return n
}

// Complete reports whether all five prayers are logged for the day.
func (p PrayerLog) Complete() bool { return p.Count() == 5 }

// ProgressState is the single persisted aggregate: completion ledger, streak
// and freeze sub-state, XP/level, badges, and the prayer log. It is mutated
// only through Store actions and serialized as one flat JSON record.
//
// Dates are ISO calendar-date strings ("" means null). LastStreakLostAt keeps
// full timestamp precision because the recovery window is a hard 24-hour
// deadline rather than a calendar-day boundary.
type ProgressState struct {
	CompletedDayIDs   []int  `json:"completed_day_ids"`
	CurrentDayID      int    `json:"current_day_id"`
	XP                int    `json:"xp"`
	Level             int    `json:"level"`
	Streak            int    `json:"streak"`
	LongestStreak     int    `json:"longest_streak"`
	LastCompletedDate string `json:"last_completed_date"`

	FreezeDaysAvailable int    `json:"freeze_days_available"`
	FreezeDaysUsed      int    `json:"freeze_days_used"`
	ActiveFreeze        bool   `json:"active_freeze"`
	FreezeStartDate     string `json:"freeze_start_date"`

	LastStreakLostAt string `json:"last_streak_lost_at"`
	LastStreakValue  int    `json:"last_streak_value"`

	UnlockedBadges     []string  `json:"unlocked_badges"`
	TotalPrayersLogged int       `json:"total_prayers_logged"`
	PrayerLog          PrayerLog `json:"prayer_log"`
}

func defaultState() ProgressState {
	return ProgressState{
		CompletedDayIDs:     []int{},
		CurrentDayID:        1,
		Level:               LevelForXP(0),
		FreezeDaysAvailable: FreeFreezeCredits,
		UnlockedBadges:      []string{},
	}
}

// DayCompleted reports whether the given journey day is in the ledger.
func (s ProgressState) DayCompleted(dayID int) bool {
	for _, id := range s.CompletedDayIDs {
		if id == dayID {
			return true
		}
	}
	return false
}

// HasBadge reports whether a badge has been unlocked.
func (s ProgressState) HasBadge(badgeID string) bool {
	for _, id := range s.UnlockedBadges {
		if id == badgeID {
			return true
		}
	}
	return false
}
