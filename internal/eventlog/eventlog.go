// Package eventlog is an append-only journal of player progression events.
// It is audit data only; players are never rebuilt from it.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypePlayerCreated       = "PlayerCreated"
	TypePlayerDeleted       = "PlayerDeleted"
	TypeTaskCompleted       = "TaskCompleted"
	TypeLevelCompleted      = "LevelCompleted"
	TypeAchievementUnlocked = "AchievementUnlocked"
)

type Event struct {
	Seq       int64
	Type      string
	PlayerID  string
	DataJSON  string
	CreatedAt int64
}

// NewEvent marshals data into an Event payload.
func NewEvent(typ, playerID string, data any) (Event, error) {
	buf, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return Event{Type: typ, PlayerID: playerID, DataJSON: string(buf)}, nil
}

// Recorder receives progression events from the API layer.
type Recorder interface {
	Append(ctx context.Context, e Event) error
}

// Discard is the Recorder used when no journal is configured.
type Discard struct{}

func (Discard) Append(context.Context, Event) error { return nil }

type EventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db, now: time.Now} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	createdAt := e.CreatedAt
	if createdAt == 0 {
		createdAt = r.now().Unix()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, player_id, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.PlayerID, e.DataJSON, createdAt)
	if err != nil {
		return fmt.Errorf("append %s: %w", e.Type, err)
	}
	return nil
}

// Recent returns up to limit events for playerID, newest first.
func (r *EventRepo) Recent(ctx context.Context, playerID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, typ, player_id, data, created_at FROM event_log
		 WHERE player_id=$1 ORDER BY seq DESC LIMIT $2`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.Type, &e.PlayerID, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
