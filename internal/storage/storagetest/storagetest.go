// Package storagetest holds the behavior suite every GameStore backend must
// pass.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ynizan/clicker-game/internal/economy"
	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
	"github.com/ynizan/clicker-game/internal/storage"
)

// Clock is the fixed time handed to stores under test.
var Clock = time.Date(2026, time.February, 22, 16, 40, 0, 0, time.UTC)

// OpenFunc builds a fresh, empty store that stamps defaults with now.
type OpenFunc func(t *testing.T, now func() time.Time) storage.GameStore

// Run exercises the GameStore contract against open.
func Run(t *testing.T, open OpenFunc) {
	t.Helper()
	fixed := func() time.Time { return Clock }

	t.Run("get creates default", func(t *testing.T) {
		store := open(t, fixed)
		got, err := store.Get(context.Background(), "alice")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != economy.DefaultState(Clock) {
			t.Fatalf("expected default state, got %+v", got)
		}
	})

	t.Run("rejects empty user", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		if _, err := store.Get(ctx, " "); apperrors.GetCode(err) != apperrors.CodeInvalidArgument {
			t.Fatalf("get: expected invalid argument, got %v", err)
		}
		if _, err := store.Reset(ctx, ""); apperrors.GetCode(err) != apperrors.CodeInvalidArgument {
			t.Fatalf("reset: expected invalid argument, got %v", err)
		}
		_, err := store.Update(ctx, "", func(s economy.GameState) (economy.GameState, error) { return s, nil })
		if apperrors.GetCode(err) != apperrors.CodeInvalidArgument {
			t.Fatalf("update: expected invalid argument, got %v", err)
		}
	})

	t.Run("update persists result", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		updated, err := store.Update(ctx, "alice", func(s economy.GameState) (economy.GameState, error) {
			s.Clicks = 42
			s.Multiplier = 3
			return s, nil
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := store.Get(ctx, "alice")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != updated || got.Clicks != 42 || got.Multiplier != 3 {
			t.Fatalf("expected stored update, got %+v", got)
		}
	})

	t.Run("failed update leaves state", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		sentinel := errors.New("boom")
		_, err := store.Update(ctx, "alice", func(s economy.GameState) (economy.GameState, error) {
			s.Clicks = 99
			return s, sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel error, got %v", err)
		}
		got, err := store.Get(ctx, "alice")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Clicks != 0 {
			t.Fatalf("expected clicks 0, got %d", got.Clicks)
		}
	})

	t.Run("reset restores default", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		if _, err := store.Update(ctx, "alice", func(s economy.GameState) (economy.GameState, error) {
			s.Clicks = 10
			s.AutoClickerLevel = 2
			return s, nil
		}); err != nil {
			t.Fatalf("update: %v", err)
		}
		reset, err := store.Reset(ctx, "alice")
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		got, _ := store.Get(ctx, "alice")
		if reset != economy.DefaultState(Clock) || got != reset {
			t.Fatalf("expected default after reset, got %+v / %+v", reset, got)
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		if _, err := store.Update(ctx, "alice", func(s economy.GameState) (economy.GameState, error) {
			s.Clicks = 7
			return s, nil
		}); err != nil {
			t.Fatalf("update: %v", err)
		}
		bob, err := store.Get(ctx, "bob")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if bob.Clicks != 0 {
			t.Fatalf("expected bob untouched, got %+v", bob)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		store := open(t, fixed)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := store.Get(ctx, "alice"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		store := open(t, fixed)
		ctx := context.Background()
		const workers, perWorker = 8, 25
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					if _, err := store.Update(ctx, "alice", func(s economy.GameState) (economy.GameState, error) {
						s.Clicks += s.Multiplier
						return s, nil
					}); err != nil {
						errs <- err
						return
					}
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("update: %v", err)
		}
		got, err := store.Get(ctx, "alice")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Clicks != workers*perWorker {
			t.Fatalf("expected %d clicks, got %d", workers*perWorker, got.Clicks)
		}
	})
}
