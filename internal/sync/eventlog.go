package syncx

import (
	"context"
	"database/sql"
	"time"
)

type Event struct {
	Seq       int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// EventRepo appends state-machine events to the append-only event_log table.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Record satisfies the interview service's Auditor.
func (r *EventRepo) Record(ctx context.Context, typ, key, dataJSON string) error {
	return r.Append(ctx, Event{Type: typ, Key: key, DataJSON: dataJSON})
}
