package domain

import (
	"testing"
	"time"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/storage/memory"
)

var testNow = time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

func newTestDispatcher(t *testing.T, b economy.Balance) (*Dispatcher, *memory.Store) {
	t.Helper()
	clock := func() time.Time { return testNow }
	engine, err := economy.NewEngine(b, economy.WithClock(clock))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	store := memory.New(clock)
	dispatcher, err := NewDispatcher(engine, store)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	return dispatcher, store
}
