package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"plinko-casino/internal/app/betting"
	"plinko-casino/internal/config"
	"plinko-casino/internal/events"
	"plinko-casino/internal/game"
	"plinko-casino/internal/logging"
	"plinko-casino/internal/store"
)

var demoAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const demoAccountBalance = 100000

func main() {
	app, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(app.Log)
	cfg := app.Server

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(ctx, cfg.CockroachURL)
	if err != nil {
		log.Fatal().Err(err).Msg("ledger store init failed")
	}
	defer st.Close()
	if err := st.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ledger ping failed")
	}
	if cfg.BootstrapSchema {
		if err := st.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure schema failed")
		}
	}
	if cfg.SeedDemoAccount {
		if err := st.EnsureAccount(ctx, demoAccountID, "demo", demoAccountBalance); err != nil {
			log.Fatal().Err(err).Msg("seed demo account failed")
		}
	}

	writer, err := events.NewScyllaWriter(cfg.ScyllaNodes)
	if err != nil {
		log.Fatal().Err(err).Msg("event store init failed")
	}
	defer writer.Close()
	rec := events.NewRecorder(writer, cfg.EventQueueSize)
	rec.Start(context.Background())

	svc := betting.NewService(st, rec, game.SystemSource())

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	// Drain queued analytics events before the writer goes away; anything
	// still in flight past this point is acceptably lost.
	rec.Stop()
}
