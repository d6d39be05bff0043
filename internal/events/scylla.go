package events

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

const (
	createKeyspaceCQL = `CREATE KEYSPACE IF NOT EXISTS casino
	WITH replication = {'class': 'SimpleStrategy', 'replication_factor': '1'}`

	createEventsTableCQL = `CREATE TABLE IF NOT EXISTS casino.plinko_events (
	account_id uuid,
	ts         timestamp,
	play_id    text,
	bet        bigint,
	payout     bigint,
	slot       int,
	PRIMARY KEY (account_id, ts)
) WITH CLUSTERING ORDER BY (ts DESC)`

	insertEventCQL = `INSERT INTO casino.plinko_events (account_id, ts, play_id, bet, payout, slot)
	VALUES (?, ?, ?, ?, ?, ?)`
)

// ScyllaWriter appends play events to the analytics store. The table is
// clustered per account in descending time order so consumers can read
// "most recent plays" cheaply; this service only ever inserts.
type ScyllaWriter struct {
	session *gocql.Session
}

func NewScyllaWriter(nodes []string) (*ScyllaWriter, error) {
	cluster := gocql.NewCluster(nodes...)
	cluster.Timeout = 5 * time.Second
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect event store: %w", err)
	}
	for _, stmt := range []string{createKeyspaceCQL, createEventsTableCQL} {
		if err := session.Query(stmt).Exec(); err != nil {
			session.Close()
			return nil, fmt.Errorf("bootstrap event store: %w", err)
		}
	}
	return &ScyllaWriter{session: session}, nil
}

func (w *ScyllaWriter) Write(ctx context.Context, ev Event) error {
	return w.session.Query(insertEventCQL,
		gocql.UUID(ev.AccountID), ev.TS, ev.PlayID, ev.Bet, ev.Payout, ev.Slot).
		WithContext(ctx).
		Exec()
}

func (w *ScyllaWriter) Close() {
	w.session.Close()
}
