package engine

import "strings"

// Prayer identifies one of the five daily prayers.
type Prayer string

const (
	PrayerFajr    Prayer = "fajr"
	PrayerDhuhr   Prayer = "dhuhr"
	PrayerAsr     Prayer = "asr"
	PrayerMaghrib Prayer = "maghrib"
	PrayerIsha    Prayer = "isha"
)

// Prayers lists the five daily prayers in their daily order.
var Prayers = []Prayer{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

func (p Prayer) IsValid() bool {
	switch p {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	default:
		return false
	}
}

// ParsePrayer parses user input to a Prayer, accepting common spellings.
// Unrecognized input yields an invalid Prayer.
func ParsePrayer(input string) Prayer {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "fajr", "fajar":
		return PrayerFajr
	case "dhuhr", "duhr", "zuhr", "dhur":
		return PrayerDhuhr
	case "asr", "asar":
		return PrayerAsr
	case "maghrib", "magrib":
		return PrayerMaghrib
	case "isha", "ishaa", "esha":
		return PrayerIsha
	default:
		return Prayer(s)
	}
}

// resetPrayerLogIfStale clears the prayer log when the date has advanced past
// its own date field. Caller holds the lock.
func (s *Store) resetPrayerLogIfStale(today string) bool {
	if s.state.PrayerLog.Date == today {
		return false
	}
	s.state.PrayerLog = PrayerLog{Date: today}
	return true
}

// LogPrayer marks one of today's prayers as prayed. Logging the same prayer
// twice on one day is a no-op; the boolean reports whether anything changed.
func (s *Store) LogPrayer(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := ParsePrayer(name)
	if !p.IsValid() {
		return false
	}

	today := dateOf(s.clock.Now())
	s.resetPrayerLogIfStale(today)
	if s.state.PrayerLog.logged(p) {
		return false
	}

	s.state.PrayerLog.mark(p)
	s.state.TotalPrayersLogged++
	s.checkPrayerBadges()
	if s.state.PrayerLog.Complete() {
		s.unlock(perfectDayBadge)
	}
	s.persist()
	return true
}
