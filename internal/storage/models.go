package storage

import "time"

// XPEvent is one row of the append-only XP audit trail.
type XPEvent struct {
	ID        int64
	CreatedAt time.Time
	Amount    int
	Reason    string
}
