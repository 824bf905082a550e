// Package branding holds the product names shown to MCP hosts and browsers.
package branding

const (
	// AppName is the product name.
	AppName = "Startup Hustle"
	// Tagline accompanies AppName on the banner and in the widget header.
	Tagline = "Click your way from garage to unicorn!"
	// ServerName identifies the MCP implementation to clients.
	ServerName = "startup-hustle"
)

// Banner is the plaintext body served for unrouted paths.
func Banner() string {
	return AppName + " - " + Tagline
}
