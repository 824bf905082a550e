package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// WidgetURI addresses the embedded game widget.
	WidgetURI = "ui://widget/clicker.html"
	// WidgetMIMEType marks the markup as a host-rendered widget.
	WidgetMIMEType = "text/html+skybridge"
	widgetName     = "clicker-widget"
)

// WidgetResource defines the MCP resource serving the widget markup.
func WidgetResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        widgetName,
		Title:       "Startup Hustle widget",
		Description: "Interactive game board rendered by the host",
		URI:         WidgetURI,
		MIMEType:    WidgetMIMEType,
	}
}

// WidgetResourceHandler returns the pre-rendered widget markup.
func WidgetResourceHandler(markup string) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if markup == "" {
			return nil, fmt.Errorf("widget markup is not configured")
		}
		uri := WidgetURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != WidgetURI {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      WidgetURI,
					MIMEType: WidgetMIMEType,
					Text:     markup,
				},
			},
		}, nil
	}
}
