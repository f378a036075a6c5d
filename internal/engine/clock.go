package engine

import "time"

// Clock supplies "now" to the engine. The device clock is an untrusted,
// non-monotonic input (users change it, travel, sleep through DST); all
// continuity math works at date granularity except the recovery deadline.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock backed Clock used outside tests.
func SystemClock() Clock { return systemClock{} }

const dateLayout = "2006-01-02"

func dateOf(t time.Time) string { return t.Format(dateLayout) }

func yesterdayOf(t time.Time) string { return t.AddDate(0, 0, -1).Format(dateLayout) }

// daysBetween returns whole calendar days from a to b. Unparseable inputs
// count as zero days, which keeps malformed stored dates from breaking streaks.
func daysBetween(a, b string) int {
	ta, err := time.Parse(dateLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(dateLayout, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}
