package domain

import (
	"context"
	"fmt"
	"log"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/platform/timeouts"
)

const tracerName = "github.com/ynizan/clicker-game/internal/services/clicker/domain"

// GameToolInput is the empty argument object every game tool accepts.
type GameToolInput struct{}

// emptyInputSchema accepts any object; game tools take no arguments.
func emptyInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
}

// GameTool defines the MCP tool for one catalog operation.
func GameTool(op Operation) *mcp.Tool {
	return &mcp.Tool{
		Name:        op.Name(),
		Title:       op.Title,
		Description: op.Description,
		InputSchema: emptyInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: op.Action.ReadOnly(),
		},
		Meta: map[string]any{
			OutputTemplateMetaKey: WidgetURI,
		},
	}
}

// GameToolHandler executes one game action for the resolving caller.
// defaultUser is used when the call names no user.
func GameToolHandler(dispatcher *Dispatcher, action economy.Action, defaultUser string) mcp.ToolHandlerFor[GameToolInput, economy.GameState] {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ GameToolInput) (*mcp.CallToolResult, economy.GameState, error) {
		if dispatcher == nil {
			return nil, economy.GameState{}, fmt.Errorf("dispatcher is not configured")
		}
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, economy.GameState{}, fmt.Errorf("generate invocation id: %w", err)
		}
		userID := ResolveUserID(req, defaultUser)

		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()
		runCtx, span := otel.Tracer(tracerName).Start(runCtx, "clicker.tool/"+string(action),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("clicker.tool", string(action)),
				attribute.String("clicker.user_id", userID),
				attribute.String("clicker.invocation_id", invocationID),
			),
		)
		defer span.End()

		result, err := dispatcher.Invoke(runCtx, userID, action)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Printf("tool=%s user=%s invocation=%s err=%v", action, userID, invocationID, err)
			return nil, economy.GameState{}, fmt.Errorf("%s: %w", action, err)
		}
		span.SetAttributes(
			attribute.Bool("clicker.changed", result.Changed),
			attribute.Int64("clicker.clicks", result.State.Clicks),
		)

		traceID := ""
		if sc := span.SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		log.Printf("tool=%s user=%s invocation=%s changed=%t clicks=%d trace=%s",
			action, userID, invocationID, result.Changed, result.State.Clicks, traceID)

		return CallToolResultWithMetadata(invocationID, result.Narrative), result.State, nil
	}
}
