package domain

import (
	"context"
	"fmt"

	"github.com/ynizan/clicker-game/internal/economy"
	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
	"github.com/ynizan/clicker-game/internal/storage"
)

// Result is what one invocation produced.
type Result struct {
	Narrative string
	State     economy.GameState
	Changed   bool
}

// Dispatcher routes actions to the engine and the store.
type Dispatcher struct {
	engine *economy.Engine
	store  storage.GameStore
}

// NewDispatcher wires an engine to a store.
func NewDispatcher(engine *economy.Engine, store storage.GameStore) (*Dispatcher, error) {
	if engine == nil {
		return nil, fmt.Errorf("economy engine is required")
	}
	if store == nil {
		return nil, fmt.Errorf("game store is required")
	}
	return &Dispatcher{engine: engine, store: store}, nil
}

// Invoke runs action for userID. Mutating actions run inside the store's
// single-writer region, so concurrent calls for one user serialize.
func (d *Dispatcher) Invoke(ctx context.Context, userID string, action economy.Action) (Result, error) {
	if _, ok := LookupOperation(string(action)); !ok {
		return Result{}, apperrors.WithMetadata(
			apperrors.CodeUnknownTool,
			fmt.Sprintf("unknown tool %q", action),
			map[string]string{"tool": string(action)},
		)
	}

	switch action {
	case economy.ActionGetGameState:
		state, err := d.store.Get(ctx, userID)
		if err != nil {
			return Result{}, err
		}
		return Result{Narrative: d.engine.Describe(state), State: state}, nil

	case economy.ActionResetGame:
		state, err := d.store.Reset(ctx, userID)
		if err != nil {
			return Result{}, err
		}
		return Result{Narrative: d.engine.ResetNarrative(), State: state, Changed: true}, nil
	}

	var outcome economy.Outcome
	state, err := d.store.Update(ctx, userID, func(current economy.GameState) (economy.GameState, error) {
		var next economy.GameState
		next, outcome = d.engine.Apply(action, current)
		return next, nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Narrative: outcome.Narrative, State: state, Changed: outcome.Changed}, nil
}
