package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/services/clicker/domain"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

func (k mcpRegistrationKind) String() string {
	switch k {
	case mcpRegistrationKindTools:
		return "tools"
	case mcpRegistrationKindResources:
		return "resources"
	default:
		return "unknown"
	}
}

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpEconomyToolsModuleName   = "economy-tools"
	mcpWidgetResourceModuleName = "widget-resources"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.GameToolInput, economy.GameState](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

// registerMCPModules applies each module in order, stopping at the first failure.
func registerMCPModules(target mcpRegistrationTarget, modules []mcpRegistrationModule) error {
	for _, module := range modules {
		if err := module.register(target); err != nil {
			return fmt.Errorf("register MCP %s module %q: %w", module.kind, module.name, err)
		}
	}
	return nil
}

func newMCPRegistrationModules(deps Deps) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpEconomyToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerEconomyTools(registrar, deps.Dispatcher, deps.DefaultUser)
			},
		},
		{
			name: mcpWidgetResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registrar.AddResource(domain.WidgetResource(), domain.WidgetResourceHandler(deps.WidgetMarkup))
				return nil
			},
		},
	}
}

func registerEconomyTools(registrar mcpRegistrationTarget, dispatcher *domain.Dispatcher, defaultUser string) error {
	for _, op := range domain.Catalog() {
		if err := registrar.AddTool(domain.GameTool(op), domain.GameToolHandler(dispatcher, op.Action, defaultUser)); err != nil {
			return fmt.Errorf("register tool %q: %w", op.Name(), err)
		}
	}
	return nil
}
