package betting

import "errors"

var (
	ErrInvalidAccountID  = errors.New("invalid_account_id")
	ErrInvalidMode       = errors.New("invalid_mode")
	ErrInvalidBet        = errors.New("invalid_bet")
	ErrAccountNotFound   = errors.New("account_not_found")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrInternal          = errors.New("internal_error")
)
