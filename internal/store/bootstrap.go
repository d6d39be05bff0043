package store

import "context"

const accountsDDL = `
CREATE TABLE IF NOT EXISTS accounts (
	id       UUID PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	balance  BIGINT NOT NULL DEFAULT 0
)`

// EnsureSchema creates the accounts table if missing. Deployments that
// run migrations out of band can skip this; it is idempotent either way.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, accountsDDL)
	return err
}
