package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"plinko-casino/internal/app/betting"
)

type playRequest struct {
	AccountID string `json:"account_id"`
	Bet       int64  `json:"bet"`
	Mode      int32  `json:"mode"`
}

func playHandler(svc *betting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := svc.Play(r.Context(), req.AccountID, req.Bet, req.Mode)
		if err != nil {
			writeBettingError(w, err)
			return
		}
		writeJSON(w, map[string]any{
			"payout":      res.Payout,
			"slot":        res.Slot,
			"new_balance": res.NewBalance,
		})
	}
}

func balanceHandler(svc *betting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bal, err := svc.GetBalance(r.Context(), chi.URLParam(r, "account_id"))
		if err != nil {
			writeBettingError(w, err)
			return
		}
		writeJSON(w, map[string]any{"balance": bal})
	}
}

func readyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
