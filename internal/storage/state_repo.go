package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MainStateKey is the key of the single progress record. The app is
// single-profile; the key exists so the table shape allows more later.
const MainStateKey = "main_user"

// StateRepo persists the progression aggregate as one JSON record, plus the
// XP event audit trail. It satisfies engine.Persister.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load returns the stored state record, or nil when none exists yet.
func (r *StateRepo) Load(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM progress_state WHERE key = ?`, MainStateKey)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}
	return data, nil
}

// Save upserts the state record.
func (r *StateRepo) Save(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress_state (key, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, MainStateKey, data)
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// AppendXPEvent records one XP grant or debit.
func (r *StateRepo) AppendXPEvent(ctx context.Context, at time.Time, amount int, reason string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO xp_events (created_at, amount, reason)
		VALUES (?, ?, ?)
	`, at, amount, reason)
	if err != nil {
		return fmt.Errorf("xp event insert: %w", err)
	}
	return nil
}

// RecentXPEvents returns the newest events first.
func (r *StateRepo) RecentXPEvents(ctx context.Context, limit int) ([]XPEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, amount, reason
		FROM xp_events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("xp events query: %w", err)
	}
	defer rows.Close()

	var out []XPEvent
	for rows.Next() {
		var e XPEvent
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Amount, &e.Reason); err != nil {
			return nil, fmt.Errorf("xp events scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("xp events rows: %w", err)
	}
	return out, nil
}
