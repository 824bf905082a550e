package economy

import "time"

// GameState is one user's progress. JSON names are the wire contract read by
// the widget.
type GameState struct {
	Clicks           int64 `json:"clicks" jsonschema:"currency earned and not yet spent"`
	Multiplier       int64 `json:"multiplier" jsonschema:"currency earned per manual click"`
	AutoClickerLevel int64 `json:"autoClickerLevel" jsonschema:"currency earned per passive tick"`
	LastUpdated      int64 `json:"lastUpdated" jsonschema:"Unix milliseconds of the last mutating action"`
}

// DefaultState returns the starting state stamped with now.
func DefaultState(now time.Time) GameState {
	return GameState{
		Clicks:           0,
		Multiplier:       1,
		AutoClickerLevel: 0,
		LastUpdated:      now.UnixMilli(),
	}
}

// Valid reports whether s satisfies the economy invariants.
func (s GameState) Valid() bool {
	return s.Clicks >= 0 && s.Multiplier >= 1 && s.AutoClickerLevel >= 0
}

// MultiplierTier is the tier index priced by the next multiplier purchase.
func (s GameState) MultiplierTier() int64 {
	return s.Multiplier - 1
}

// AutoClickerTier is the tier index priced by the next auto-clicker purchase.
func (s GameState) AutoClickerTier() int64 {
	return s.AutoClickerLevel
}
