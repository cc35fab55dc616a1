package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/storefront/internal/credentials"
)

// Credentials returns a credentials.Store backed by the system_settings table.
func (s *PostgresStore) Credentials() credentials.Store {
	return &settingsStore{pool: s.pool}
}

// settingsStore persists credentials as one row per key.
type settingsStore struct {
	pool Pool
}

func (s *settingsStore) Get(ctx context.Context, key credentials.Key) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, queryGetSetting, string(key)).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *settingsStore) Set(ctx context.Context, key credentials.Key, value string) error {
	if _, err := s.pool.Exec(ctx, queryUpsertSetting, string(key), value); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// SetPair writes both tokens in one transaction.
func (s *settingsStore) SetPair(ctx context.Context, pair credentials.TokenPair) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryUpsertSetting, string(credentials.AccessToken), pair.AccessToken); err != nil {
		return fmt.Errorf("writing access token: %w", err)
	}
	if _, err := tx.Exec(ctx, queryUpsertSetting, string(credentials.RefreshToken), pair.RefreshToken); err != nil {
		return fmt.Errorf("writing refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing token pair: %w", err)
	}
	return nil
}
