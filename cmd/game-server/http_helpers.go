package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	"plinko-casino/internal/app/betting"
	"plinko-casino/internal/logging"
)

func apiLogMiddleware() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), &slog.HandlerOptions{})),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				rc := chi.RouteContext(req.Context())
				route := req.URL.Path
				if rc != nil && rc.RoutePattern() != "" {
					route = rc.RoutePattern()
				}
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("method", req.Method),
					slog.String("route", route),
					slog.String("path", req.URL.Path),
				}
			},
		},
	)
}

// writeBettingError maps service error kinds onto transport statuses:
// invalid-argument 400, not-found 404, failed-precondition 412, internal 500.
func writeBettingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, betting.ErrInvalidAccountID),
		errors.Is(err, betting.ErrInvalidMode),
		errors.Is(err, betting.ErrInvalidBet):
		writeHTTPError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, betting.ErrAccountNotFound):
		writeHTTPError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, betting.ErrInsufficientFunds):
		writeHTTPError(w, http.StatusPreconditionFailed, err.Error())
	default:
		writeHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}

func writeHTTPError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": code})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
