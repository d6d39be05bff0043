package betting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"plinko-casino/internal/events"
	"plinko-casino/internal/game"
	"plinko-casino/internal/store"
)

// Ledger is the transactional balance store bets settle against.
type Ledger interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error)
	PlaceBet(ctx context.Context, accountID uuid.UUID, bet int64, outcome store.OutcomeFunc) (store.PlayOutcome, error)
}

// PlayResult is what a settled play returns to the caller.
type PlayResult struct {
	PlayID     string
	Payout     int64
	Slot       int
	NewBalance int64
}

// Service validates requests, runs the simulator inside the ledger
// transaction and schedules the analytics event. It owns no state and is
// the only layer translating internal errors into caller-visible kinds.
type Service struct {
	ledger Ledger
	sink   events.Sink
	src    game.Source
	now    func() time.Time
}

func NewService(ledger Ledger, sink events.Sink, src game.Source) *Service {
	return &Service{
		ledger: ledger,
		sink:   sink,
		src:    src,
		now:    time.Now,
	}
}

// Play settles one bet. The simulator runs inside the ledger transaction,
// strictly after the funds check, so the payout is always computed against
// a balance known to cover the bet. The event sink write is scheduled
// after commit and never awaited.
func (s *Service) Play(ctx context.Context, accountIDText string, bet int64, modeCode int32) (*PlayResult, error) {
	accountID, err := uuid.Parse(accountIDText)
	if err != nil {
		return nil, ErrInvalidAccountID
	}
	mode, ok := game.ModeFromCode(modeCode)
	if !ok {
		return nil, ErrInvalidMode
	}
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	out, err := s.ledger.PlaceBet(ctx, accountID, bet, func(bet int64) (int64, int) {
		return game.Simulate(mode, bet, s.src)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, store.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		}
		log.Error().Err(err).Str("account_id", accountIDText).Msg("place bet failed")
		return nil, ErrInternal
	}

	playID := newPlayID()
	s.sink.Record(events.Event{
		PlayID:    playID,
		AccountID: accountID,
		TS:        s.now().UTC(),
		Bet:       bet,
		Payout:    out.Payout,
		Slot:      out.Slot,
	})
	log.Info().
		Str("play_id", playID).
		Str("account_id", accountIDText).
		Str("mode", mode.String()).
		Int64("bet", bet).
		Int64("payout", out.Payout).
		Int("slot", out.Slot).
		Msg("play settled")

	return &PlayResult{
		PlayID:     playID,
		Payout:     out.Payout,
		Slot:       out.Slot,
		NewBalance: out.NewBalance,
	}, nil
}

// GetBalance reads the account's current balance.
func (s *Service) GetBalance(ctx context.Context, accountIDText string) (int64, error) {
	accountID, err := uuid.Parse(accountIDText)
	if err != nil {
		return 0, ErrInvalidAccountID
	}
	bal, err := s.ledger.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrAccountNotFound
		}
		log.Error().Err(err).Str("account_id", accountIDText).Msg("get balance failed")
		return 0, ErrInternal
	}
	return bal, nil
}
