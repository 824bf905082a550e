package clicker

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ynizan/clicker-game/internal/storage/memory"
	"github.com/ynizan/clicker-game/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("clicker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected stdio transport, got %q", cfg.Transport)
	}
	if cfg.HTTPAddr != "localhost:8787" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Store != "memory" || cfg.Balance != "hustle" || cfg.DefaultUser != "default" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.AllowedHosts) != 0 {
		t.Fatalf("expected no allowed hosts, got %v", cfg.AllowedHosts)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CLICKER_TRANSPORT", "http")
	t.Setenv("CLICKER_ALLOWED_HOSTS", "clicker.example.com, apps.example.com")
	t.Setenv("CLICKER_STORE", "sqlite")
	t.Setenv("OPENAI_APPS_VERIFICATION_TOKEN", "token-123")

	fs := flag.NewFlagSet("clicker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "0.0.0.0:9000", "-balance", "classic"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "http" || cfg.Store != "sqlite" || cfg.VerificationToken != "token-123" {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" || cfg.Balance != "classic" {
		t.Fatalf("flag values not applied: %+v", cfg)
	}
	want := []string{"clicker.example.com", "apps.example.com"}
	if !reflect.DeepEqual(cfg.AllowedHosts, want) {
		t.Fatalf("allowed hosts = %v, want %v", cfg.AllowedHosts, want)
	}
}

func TestParseConfigAllowedHostsFlag(t *testing.T) {
	fs := flag.NewFlagSet("clicker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-allowed-hosts", "*"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !reflect.DeepEqual(cfg.AllowedHosts, []string{"*"}) {
		t.Fatalf("allowed hosts = %v", cfg.AllowedHosts)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("clicker", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestResolveBalance(t *testing.T) {
	b, err := resolveBalance(Config{Balance: "classic"})
	if err != nil {
		t.Fatalf("resolve preset: %v", err)
	}
	if b.Name != "classic" {
		t.Fatalf("expected classic, got %q", b.Name)
	}

	path := filepath.Join(t.TempDir(), "balance.yaml")
	data := []byte("name: bootstrap\ngrowth: 2\nmultiplier_costs: [5]\nauto_clicker_costs: [7]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write balance: %v", err)
	}
	b, err = resolveBalance(Config{Balance: "classic", BalanceFile: path})
	if err != nil {
		t.Fatalf("resolve file: %v", err)
	}
	if b.Name != "bootstrap" {
		t.Fatalf("expected file balance to win, got %q", b.Name)
	}

	if _, err := resolveBalance(Config{Balance: "unicorn"}); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return time.Unix(1_700_000_000, 0) }

	store, err := openStore(ctx, "memory", now)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	store, err = openStore(ctx, "sqlite", now)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	if _, ok := store.(*sqlite.Store); !ok {
		t.Fatalf("expected sqlite store, got %T", store)
	}

	if _, err := openStore(ctx, "redis", now); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestSplitHosts(t *testing.T) {
	got := splitHosts(" a.example.com,, b.example.com ,")
	want := []string{"a.example.com", "b.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitHosts = %v, want %v", got, want)
	}
	if hosts := splitHosts(""); hosts != nil {
		t.Fatalf("expected nil for empty input, got %v", hosts)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "transport", cfg: Config{Transport: "carrier-pigeon"}},
		{name: "balance", cfg: Config{Transport: "stdio", Balance: "unicorn"}},
		{name: "store", cfg: Config{Transport: "stdio", Balance: "hustle", Store: "redis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Run(context.Background(), tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunHTTPStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{
			Transport:   "http",
			HTTPAddr:    "127.0.0.1:0",
			Store:       "sqlite",
			Balance:     "hustle",
			DefaultUser: "default",
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
