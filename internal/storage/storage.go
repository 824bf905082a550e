// Package storage defines the per-user game state contract shared by the
// memory and sqlite backends.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ynizan/clicker-game/internal/economy"
	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
)

// UpdateFunc transforms one user's state. Returning an error aborts the
// update and leaves the stored state untouched.
type UpdateFunc func(economy.GameState) (economy.GameState, error)

// GameStore keeps one GameState per user. Implementations serialize Update
// and Reset per user so read-modify-write cycles never lose updates, and
// always hand out copies.
type GameStore interface {
	// Get returns the user's state, creating and storing a default first.
	Get(ctx context.Context, userID string) (economy.GameState, error)
	// Update runs fn inside the user's single-writer region and stores its result.
	Update(ctx context.Context, userID string, fn UpdateFunc) (economy.GameState, error)
	// Reset replaces the user's state with a fresh default and returns it.
	Reset(ctx context.Context, userID string) (economy.GameState, error)
	Close() error
}

// Backend selects a GameStore implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend resolves a backend name. Empty selects memory.
func ParseBackend(value string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(BackendMemory):
		return BackendMemory, nil
	case string(BackendSQLite):
		return BackendSQLite, nil
	default:
		return "", apperrors.WithMetadata(
			apperrors.CodeInvalidArgument,
			fmt.Sprintf("unknown store backend %q", value),
			map[string]string{"backend": value},
		)
	}
}

// NormalizeUserID trims the id and rejects empty values.
func NormalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "user id is required")
	}
	return userID, nil
}
