package domain

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ynizan/clicker-game/internal/platform/id"
)

const (
	// InvocationIDMetaKey carries the per-call correlation id on tool results.
	InvocationIDMetaKey = "x-clicker-invocation-id"
	// OutputTemplateMetaKey points hosts at the widget that renders results.
	OutputTemplateMetaKey = "openai/outputTemplate"
)

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result carrying the invocation id
// and a single text block.
func CallToolResultWithMetadata(invocationID, text string) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		Meta:    map[string]any{},
	}
	if invocationID != "" {
		result.Meta[InvocationIDMetaKey] = invocationID
	}
	return result
}
