package store

import (
	"context"
	"errors"
	"math"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	accountsTable = "accounts"
	colID         = "id"
	colUsername   = "username"
	colBalance    = "balance"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// OutcomeFunc computes the payout for a bet that has already passed the
// funds check. It is invoked inside the ledger transaction, after the
// locking balance read and before the balance write.
type OutcomeFunc func(bet int64) (payout int64, slot int)

// PlayOutcome is the committed result of one settled bet.
type PlayOutcome struct {
	Payout     int64
	Slot       int
	NewBalance int64
}

// GetBalance reads the current balance with a single consistent read.
func (s *Store) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	sqlStr, args, err := psql.Select(colBalance).
		From(accountsTable).
		Where(sq.Eq{colID: accountID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var bal int64
	if err := s.Pool.QueryRow(ctx, sqlStr, args...).Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

// PlaceBet settles one bet atomically: it locks the account row, checks
// funds, asks outcome for the payout, writes the new balance and commits.
// The row lock serializes concurrent bets on the same account, so two
// callers can never both spend the same pre-debit balance. On any error
// the transaction is rolled back and the balance is untouched.
func (s *Store) PlaceBet(ctx context.Context, accountID uuid.UUID, bet int64, outcome OutcomeFunc) (PlayOutcome, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return PlayOutcome{}, err
	}
	defer tx.Rollback(ctx)

	sqlStr, args, err := psql.Select(colBalance).
		From(accountsTable).
		Where(sq.Eq{colID: accountID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return PlayOutcome{}, err
	}
	var bal int64
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PlayOutcome{}, ErrNotFound
		}
		return PlayOutcome{}, err
	}
	if bet > bal {
		return PlayOutcome{}, ErrInsufficientFunds
	}

	payout, slot := outcome(bet)
	newBal := addSat(bal-bet, payout)

	sqlStr, args, err = psql.Update(accountsTable).
		Set(colBalance, newBal).
		Where(sq.Eq{colID: accountID}).
		ToSql()
	if err != nil {
		return PlayOutcome{}, err
	}
	if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
		return PlayOutcome{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return PlayOutcome{}, err
	}
	return PlayOutcome{Payout: payout, Slot: slot, NewBalance: newBal}, nil
}

// addSat adds two non-negative int64 values, saturating to
// math.MaxInt64 instead of wrapping. A saturated payout must never turn
// the settled balance negative.
func addSat(a, b int64) int64 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxInt64
}

// EnsureAccount inserts an account if it does not exist yet.
func (s *Store) EnsureAccount(ctx context.Context, accountID uuid.UUID, username string, balance int64) error {
	sqlStr, args, err := psql.Insert(accountsTable).
		Columns(colID, colUsername, colBalance).
		Values(accountID, username, balance).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.Pool.Exec(ctx, sqlStr, args...)
	return err
}
