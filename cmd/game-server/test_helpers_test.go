package main

import (
	"context"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"plinko-casino/internal/app/betting"
	"plinko-casino/internal/events"
	"plinko-casino/internal/store"
)

const demoID = "00000000-0000-0000-0000-000000000001"

// fakeLedger keeps balances in memory so router tests need no database.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int64
	failWith error
}

func newFakeLedger(balance int64) *fakeLedger {
	return &fakeLedger{
		balances: map[uuid.UUID]int64{uuid.MustParse(demoID): balance},
	}
}

func (l *fakeLedger) GetBalance(_ context.Context, accountID uuid.UUID) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failWith != nil {
		return 0, l.failWith
	}
	bal, ok := l.balances[accountID]
	if !ok {
		return 0, store.ErrNotFound
	}
	return bal, nil
}

func (l *fakeLedger) PlaceBet(_ context.Context, accountID uuid.UUID, bet int64, outcome store.OutcomeFunc) (store.PlayOutcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failWith != nil {
		return store.PlayOutcome{}, l.failWith
	}
	bal, ok := l.balances[accountID]
	if !ok {
		return store.PlayOutcome{}, store.ErrNotFound
	}
	if bet > bal {
		return store.PlayOutcome{}, store.ErrInsufficientFunds
	}
	payout, slot := outcome(bet)
	newBal := bal - bet + payout
	l.balances[accountID] = newBal
	return store.PlayOutcome{Payout: payout, Slot: slot, NewBalance: newBal}, nil
}

type nopSink struct{}

func (nopSink) Record(events.Event) {}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newTestRouter(ledger betting.Ledger, draw float64) *chi.Mux {
	return newRouter(betting.NewService(ledger, nopSink{}, fixedSource(draw)))
}
