// Package domain maps MCP tool calls onto the clicker economy.
//
// Each of the six tools resolves the caller, runs one economy action against
// the caller's stored state, and returns a short narrative together with the
// full GameState as structured content for the widget.
package domain
