package domain

import (
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestResolveUserID(t *testing.T) {
	tests := []struct {
		name     string
		req      *mcp.CallToolRequest
		fallback string
		want     string
	}{
		{name: "nil request", req: nil, want: DefaultUserID},
		{name: "configured fallback", req: &mcp.CallToolRequest{}, fallback: "solo", want: "solo"},
		{
			name: "subject meta wins",
			req: &mcp.CallToolRequest{
				Params: &mcp.CallToolParamsRaw{Meta: map[string]any{SubjectMetaKey: "subj-1"}},
				Extra:  &mcp.RequestExtra{Header: http.Header{UserHeader: []string{"header-user"}}},
			},
			want: "subj-1",
		},
		{
			name: "blank subject falls through to header",
			req: &mcp.CallToolRequest{
				Params: &mcp.CallToolParamsRaw{Meta: map[string]any{SubjectMetaKey: "  "}},
				Extra:  &mcp.RequestExtra{Header: http.Header{UserHeader: []string{"header-user"}}},
			},
			want: "header-user",
		},
		{
			name: "non-string subject ignored",
			req: &mcp.CallToolRequest{
				Params: &mcp.CallToolParamsRaw{Meta: map[string]any{SubjectMetaKey: 42}},
			},
			fallback: "solo",
			want:     "solo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveUserID(tt.req, tt.fallback); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
