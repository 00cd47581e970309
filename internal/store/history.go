package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Nutrient identifies what a completed activity feeds the tree.
type Nutrient struct {
	Type   string
	Emoji  string
	Amount int
}

// Nutrient awards per activity, matching the healing-suite model:
// breathing feeds sunlight, the altruistic exercise feeds water, a completed
// behavioral-activation task feeds fertilizer.
var nutrients = map[string]Nutrient{
	"breathing":  {Type: "sunlight", Emoji: "☀", Amount: 10},
	"altruistic": {Type: "water", Emoji: "💧", Amount: 15},
	"task":       {Type: "fertilizer", Emoji: "🌱", Amount: 25},
}

// NutrientFor returns the award for an activity name; ok is false for
// activities that feed nothing (history review, chat).
func NutrientFor(activity string) (Nutrient, bool) {
	n, ok := nutrients[activity]
	return n, ok
}

// Record is one completed activity.
type Record struct {
	ID          string
	SessionID   string
	Activity    string
	Nutrient    string
	Amount      int
	CompletedAt time.Time
}

// HistoryRepo persists completed activities in sqlite.
type HistoryRepo struct {
	db *sql.DB
}

// OpenHistory opens (and creates, if needed) the history database.
func OpenHistory(path string) (*HistoryRepo, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS activity_history (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		activity TEXT NOT NULL,
		nutrient TEXT NOT NULL,
		amount INTEGER NOT NULL,
		completed_at TIMESTAMP NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &HistoryRepo{db: db}, nil
}

// Close releases the underlying database handle.
func (r *HistoryRepo) Close() error { return r.db.Close() }

// Insert stores one completed activity.
func (r *HistoryRepo) Insert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO activity_history(id, session_id, activity, nutrient, amount, completed_at)
	VALUES(?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SessionID, rec.Activity, rec.Nutrient, rec.Amount, rec.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

// Recent lists the newest records first, capped at limit.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, activity, nutrient, amount, completed_at
	FROM activity_history
	ORDER BY completed_at DESC, id DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Activity, &rec.Nutrient, &rec.Amount, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TotalNutrients sums every award ever recorded; the tree's growth value.
func (r *HistoryRepo) TotalNutrients(ctx context.Context) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(amount) FROM activity_history`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum nutrients: %w", err)
	}
	return int(total.Int64), nil
}
