package economy

// Action names one of the six economy operations.
type Action string

const (
	ActionClick          Action = "click"
	ActionAutoClick      Action = "auto_click"
	ActionBuyMultiplier  Action = "buy_multiplier"
	ActionBuyAutoClicker Action = "buy_auto_clicker"
	ActionGetGameState   Action = "get_game_state"
	ActionResetGame      Action = "reset_game"
)

var allActions = []Action{
	ActionClick,
	ActionAutoClick,
	ActionBuyMultiplier,
	ActionBuyAutoClicker,
	ActionGetGameState,
	ActionResetGame,
}

// Actions returns every action in a stable order.
func Actions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// ParseAction resolves an operation name.
func ParseAction(name string) (Action, bool) {
	for _, action := range allActions {
		if string(action) == name {
			return action, true
		}
	}
	return "", false
}

// ReadOnly reports whether the action never changes state.
func (a Action) ReadOnly() bool {
	return a == ActionGetGameState
}
