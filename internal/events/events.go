package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one completed play, kept for external analytics. The betting
// path writes it once and never reads it back.
type Event struct {
	PlayID    string
	AccountID uuid.UUID
	TS        time.Time
	Bet       int64
	Payout    int64
	Slot      int
}

// Writer persists events to the analytics store.
type Writer interface {
	Write(ctx context.Context, ev Event) error
}

// Sink accepts events without blocking the caller. Delivery is
// at-most-once; a lost event never surfaces to the betting path.
type Sink interface {
	Record(ev Event)
}
