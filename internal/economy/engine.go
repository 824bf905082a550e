package economy

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Outcome describes what an action did.
type Outcome struct {
	Action    Action
	Narrative string
	// Changed is false for read-only actions and refused purchases.
	Changed bool
	// Cost is the price paid, or the price that could not be met.
	Cost int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp lastUpdated.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine applies actions under one Balance. It holds no per-user state and
// is safe for concurrent use.
type Engine struct {
	balance Balance
	now     func() time.Time
	printer *message.Printer
}

// NewEngine validates b and returns an engine for it.
func NewEngine(b Balance, opts ...Option) (*Engine, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		balance: b,
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Balance returns the engine's balance.
func (e *Engine) Balance() Balance {
	return e.balance
}

// Now returns the engine clock reading.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Apply runs action against s. Refused purchases are reported through the
// outcome and leave s untouched. An unrecognized action is an identity.
func (e *Engine) Apply(action Action, s GameState) (GameState, Outcome) {
	switch action {
	case ActionClick:
		s.Clicks = addSaturating(s.Clicks, s.Multiplier)
		s.LastUpdated = e.stamp()
		return s, Outcome{Action: action, Changed: true, Narrative: "Hustled! Total: " + e.money(s.Clicks)}

	case ActionAutoClick:
		if s.AutoClickerLevel <= 0 {
			return s, Outcome{Action: action, Narrative: "No team yet. Hire someone first!"}
		}
		s.Clicks = addSaturating(s.Clicks, s.AutoClickerLevel)
		s.LastUpdated = e.stamp()
		return s, Outcome{Action: action, Changed: true, Narrative: "Team earned! Total: " + e.money(s.Clicks)}

	case ActionBuyMultiplier:
		cost := e.balance.MultiplierCost(s)
		if s.Clicks < cost {
			return s, Outcome{Action: action, Cost: cost, Narrative: "Not enough funding! Need " + e.money(cost)}
		}
		s.Clicks -= cost
		s.Multiplier = addSaturating(s.Multiplier, 1)
		s.LastUpdated = e.stamp()
		return s, Outcome{Action: action, Changed: true, Cost: cost, Narrative: fmt.Sprintf("Upgraded! Multiplier is now %sx", e.number(s.Multiplier))}

	case ActionBuyAutoClicker:
		cost := e.balance.AutoClickerCost(s)
		if s.Clicks < cost {
			return s, Outcome{Action: action, Cost: cost, Narrative: "Not enough funding! Need " + e.money(cost)}
		}
		s.Clicks -= cost
		s.AutoClickerLevel = addSaturating(s.AutoClickerLevel, 1)
		s.LastUpdated = e.stamp()
		return s, Outcome{Action: action, Changed: true, Cost: cost, Narrative: "New hire! Team size: " + e.number(s.AutoClickerLevel)}

	case ActionGetGameState:
		return s, Outcome{Action: action, Narrative: e.Describe(s)}

	case ActionResetGame:
		return DefaultState(e.now()), Outcome{Action: action, Changed: true, Narrative: e.ResetNarrative()}
	}
	return s, Outcome{Action: action}
}

// ResetNarrative is the message reported when a user starts over.
func (e *Engine) ResetNarrative() string {
	return "Pivoted! Starting a new venture from the garage."
}

// Describe summarizes s the way get_game_state reports it.
func (e *Engine) Describe(s GameState) string {
	summary := fmt.Sprintf("Funding: %s, Multiplier: %sx, Team: %s",
		e.money(s.Clicks), e.number(s.Multiplier), e.number(s.AutoClickerLevel))
	if stage := e.balance.StageFor(s.Clicks); stage != "" {
		summary += ", Stage: " + stage
	}
	return summary
}

func (e *Engine) stamp() int64 {
	return e.now().UnixMilli()
}

func (e *Engine) number(n int64) string {
	return e.printer.Sprintf("%d", n)
}

func (e *Engine) money(n int64) string {
	return e.balance.Currency + e.number(n)
}
