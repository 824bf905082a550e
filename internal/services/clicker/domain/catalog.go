package domain

import "github.com/ynizan/clicker-game/internal/economy"

// Operation describes one tool in the catalog.
type Operation struct {
	Action      economy.Action
	Title       string
	Description string
}

// Name is the MCP tool name.
func (o Operation) Name() string {
	return string(o.Action)
}

var catalog = []Operation{
	{
		Action:      economy.ActionClick,
		Title:       "Hustle to earn startup dollars",
		Description: "Work hard and earn startup dollars based on your current multiplier",
	},
	{
		Action:      economy.ActionAutoClick,
		Title:       "Passive income from team members",
		Description: "Passive income from your startup team members",
	},
	{
		Action:      economy.ActionBuyMultiplier,
		Title:       "Purchase startup upgrades",
		Description: "Purchase startup upgrades to increase earnings per hustle",
	},
	{
		Action:      economy.ActionBuyAutoClicker,
		Title:       "Hire team members",
		Description: "Hire employees who generate passive income for your startup",
	},
	{
		Action:      economy.ActionGetGameState,
		Title:       "Check startup status",
		Description: "View current funding, team size, and startup stage",
	},
	{
		Action:      economy.ActionResetGame,
		Title:       "Pivot and start over",
		Description: "Pivot! Abandon current startup and begin a new venture from scratch",
	},
}

// Catalog returns the six operations in their advertised order.
func Catalog() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	return out
}

// LookupOperation finds a catalog entry by tool name.
func LookupOperation(name string) (Operation, bool) {
	action, ok := economy.ParseAction(name)
	if !ok {
		return Operation{}, false
	}
	for _, op := range catalog {
		if op.Action == action {
			return op, true
		}
	}
	return Operation{}, false
}
