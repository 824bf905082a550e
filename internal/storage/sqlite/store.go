// Package sqlite provides a GameStore on a private in-memory SQLite
// database. State lives only as long as the process.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ynizan/clicker-game/internal/economy"
	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
	sqlitemigrate "github.com/ynizan/clicker-game/internal/platform/storage/sqlitemigrate"
	"github.com/ynizan/clicker-game/internal/storage"
	"github.com/ynizan/clicker-game/internal/storage/sqlite/migrations"
)

// Store persists game state in SQLite. The pool holds exactly one
// connection, which both keeps the in-memory database alive and makes every
// transaction the sole writer.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.GameStore = (*Store)(nil)

// Open creates the database and applies embedded migrations. A nil clock
// uses time.Now.
func Open(ctx context.Context, now func() time.Time) (*Store, error) {
	if now == nil {
		now = time.Now
	}
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: now}, nil
}

// Close closes the SQLite handle, discarding all state.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the user's state, inserting a default on first access.
func (s *Store) Get(ctx context.Context, userID string) (economy.GameState, error) {
	var state economy.GameState
	err := s.withTx(ctx, userID, func(tx *sql.Tx, id string) error {
		var err error
		state, err = s.loadOrCreate(ctx, tx, id)
		return err
	})
	return state, err
}

// Update runs fn inside a transaction that holds the only connection.
func (s *Store) Update(ctx context.Context, userID string, fn storage.UpdateFunc) (economy.GameState, error) {
	var state economy.GameState
	var fnErr error
	err := s.withTx(ctx, userID, func(tx *sql.Tx, id string) error {
		current, err := s.loadOrCreate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			state = current
			fnErr = err
			return err
		}
		if err := save(ctx, tx, id, next); err != nil {
			return err
		}
		state = next
		return nil
	})
	if fnErr != nil {
		return state, fnErr
	}
	return state, err
}

// Reset overwrites the user's row with a fresh default.
func (s *Store) Reset(ctx context.Context, userID string) (economy.GameState, error) {
	state := economy.DefaultState(s.now())
	err := s.withTx(ctx, userID, func(tx *sql.Tx, id string) error {
		return save(ctx, tx, id, state)
	})
	if err != nil {
		return economy.GameState{}, err
	}
	return state, nil
}

func (s *Store) withTx(ctx context.Context, userID string, fn func(*sql.Tx, string) error) (err error) {
	userID, err = storage.NormalizeUserID(userID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return apperrors.New(apperrors.CodeStorageFailure, "storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storageFailure("begin transaction", userID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx, userID); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return storageFailure("commit transaction", userID, err)
	}
	return nil
}

func (s *Store) loadOrCreate(ctx context.Context, tx *sql.Tx, userID string) (economy.GameState, error) {
	var state economy.GameState
	err := tx.QueryRowContext(
		ctx,
		`SELECT clicks, multiplier, auto_clicker_level, last_updated
		 FROM game_states WHERE user_id = ?`,
		userID,
	).Scan(&state.Clicks, &state.Multiplier, &state.AutoClickerLevel, &state.LastUpdated)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return economy.GameState{}, storageFailure("load game state", userID, err)
	}
	state = economy.DefaultState(s.now())
	if err := save(ctx, tx, userID, state); err != nil {
		return economy.GameState{}, err
	}
	return state, nil
}

func save(ctx context.Context, tx *sql.Tx, userID string, state economy.GameState) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO game_states (user_id, clicks, multiplier, auto_clicker_level, last_updated)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   clicks = excluded.clicks,
		   multiplier = excluded.multiplier,
		   auto_clicker_level = excluded.auto_clicker_level,
		   last_updated = excluded.last_updated`,
		userID,
		state.Clicks,
		state.Multiplier,
		state.AutoClickerLevel,
		state.LastUpdated,
	)
	if err != nil {
		return storageFailure("save game state", userID, err)
	}
	return nil
}

func storageFailure(op, userID string, err error) error {
	return &apperrors.Error{
		Code:     apperrors.CodeStorageFailure,
		Message:  op,
		Metadata: map[string]string{"user_id": userID},
		Cause:    err,
	}
}
