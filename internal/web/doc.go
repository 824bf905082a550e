// Package web serves the HTTP surface around the MCP endpoint: widget
// preview, legal pages, app verification, demo redirect, health, and banner.
package web
