package domain

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// SubjectMetaKey is the call metadata key hosts use to name the end user.
	SubjectMetaKey = "openai/subject"
	// UserHeader names the caller on plain HTTP clients.
	UserHeader = "X-Clicker-User"
	// DefaultUserID is the single-tenant fallback identity.
	DefaultUserID = "default"
)

// ResolveUserID picks the caller identity: the subject in call metadata,
// then the user header, then fallback (or DefaultUserID when fallback is
// blank).
func ResolveUserID(req *mcp.CallToolRequest, fallback string) string {
	if req != nil {
		if req.Params != nil {
			if subject, ok := req.Params.Meta[SubjectMetaKey].(string); ok {
				if subject = strings.TrimSpace(subject); subject != "" {
					return subject
				}
			}
		}
		if req.Extra != nil && req.Extra.Header != nil {
			if user := strings.TrimSpace(req.Extra.Header.Get(UserHeader)); user != "" {
				return user
			}
		}
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return DefaultUserID
}
