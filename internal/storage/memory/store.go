// Package memory provides the default in-process GameStore.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/storage"
)

// Store keeps game states in a map. Each user gets a dedicated mutex that
// spans a whole Update, so writers for different users never contend.
type Store struct {
	now func() time.Time

	mu     sync.Mutex
	states map[string]economy.GameState
	locks  map[string]*sync.Mutex
}

var _ storage.GameStore = (*Store)(nil)

// New returns an empty store. A nil clock uses time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:    now,
		states: make(map[string]economy.GameState),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Get returns the user's state, creating a default on first access.
func (s *Store) Get(ctx context.Context, userID string) (economy.GameState, error) {
	userID, err := storage.NormalizeUserID(userID)
	if err != nil {
		return economy.GameState{}, err
	}
	if err := ctx.Err(); err != nil {
		return economy.GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(userID), nil
}

// Update applies fn while holding the user's lock.
func (s *Store) Update(ctx context.Context, userID string, fn storage.UpdateFunc) (economy.GameState, error) {
	userID, err := storage.NormalizeUserID(userID)
	if err != nil {
		return economy.GameState{}, err
	}
	if err := ctx.Err(); err != nil {
		return economy.GameState{}, err
	}
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	current := s.loadLocked(userID)
	s.mu.Unlock()

	next, err := fn(current)
	if err != nil {
		return current, err
	}

	s.mu.Lock()
	s.states[userID] = next
	s.mu.Unlock()
	return next, nil
}

// Reset stores a fresh default for the user.
func (s *Store) Reset(ctx context.Context, userID string) (economy.GameState, error) {
	userID, err := storage.NormalizeUserID(userID)
	if err != nil {
		return economy.GameState{}, err
	}
	if err := ctx.Err(); err != nil {
		return economy.GameState{}, err
	}
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := economy.DefaultState(s.now())
	s.mu.Lock()
	s.states[userID] = state
	s.mu.Unlock()
	return state, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// Len reports how many users have state.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *Store) loadLocked(userID string) economy.GameState {
	state, ok := s.states[userID]
	if !ok {
		state = economy.DefaultState(s.now())
		s.states[userID] = state
	}
	return state
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
