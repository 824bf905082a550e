// Package service hosts the clicker MCP server over stdio or streamable HTTP.
package service
