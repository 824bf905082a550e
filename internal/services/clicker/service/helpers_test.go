package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/services/clicker/domain"
	"github.com/ynizan/clicker-game/internal/storage/memory"
)

const testWidgetMarkup = "<html><body>board</body></html>"

var testNow = time.Date(2026, time.April, 2, 8, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, b economy.Balance) (*Server, *memory.Store) {
	t.Helper()
	clock := func() time.Time { return testNow }
	engine, err := economy.NewEngine(b, economy.WithClock(clock))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	store := memory.New(clock)
	dispatcher, err := domain.NewDispatcher(engine, store)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	server, err := New(Deps{Dispatcher: dispatcher, WidgetMarkup: testWidgetMarkup, DefaultUser: "solo"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server, store
}

// connectClient runs server over in-memory transports and returns a client session.
func connectClient(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		select {
		case <-serveErr:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop after cancel")
		}
	})
	return session
}

func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var output T
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return output
}

// jsonValue re-decodes value with json.Number so schema checks see exact integers.
func jsonValue(t *testing.T, value any) any {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return out
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected content in tool result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}
