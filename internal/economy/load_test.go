package economy

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
)

func TestLoadBalance(t *testing.T) {
	b, err := LoadBalance(filepath.Join("testdata", "balance.yaml"))
	if err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if b.Name != "seed-round" || b.Growth != 1.25 || b.Currency != "€" {
		t.Fatalf("unexpected balance header %+v", b)
	}
	if len(b.MultiplierCosts) != 3 || b.AutoClickerCosts[1] != 125 {
		t.Fatalf("unexpected tables %+v", b)
	}
	if got := b.StageFor(600); got != "Seed" {
		t.Fatalf("expected Seed, got %q", got)
	}
}

func TestLoadBalanceMissingFile(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeInvalidBalance {
		t.Fatalf("expected %s, got %s", apperrors.CodeInvalidBalance, code)
	}
}

func TestParseBalanceDefaultsName(t *testing.T) {
	b, err := ParseBalance([]byte("growth: 2\nmultiplier_costs: [5]\nauto_clicker_costs: [7]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Name != "custom" {
		t.Fatalf("expected name custom, got %q", b.Name)
	}
}

func TestParseBalanceRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty document", data: ""},
		{name: "not yaml", data: "growth: [1"},
		{name: "missing tables", data: "growth: 2\n"},
		{name: "unknown field", data: "growth: 2\nmultiplier_costs: [5]\nauto_clicker_costs: [7]\nprestige: true\n"},
		{name: "fractional cost", data: "growth: 2\nmultiplier_costs: [5.5]\nauto_clicker_costs: [7]\n"},
		{name: "growth below one", data: "growth: 0.9\nmultiplier_costs: [5]\nauto_clicker_costs: [7]\n"},
		{name: "descending table", data: "growth: 2\nmultiplier_costs: [9, 3]\nauto_clicker_costs: [7]\n"},
		{name: "stage without zero", data: "growth: 2\nmultiplier_costs: [5]\nauto_clicker_costs: [7]\nstages:\n  - name: Late\n    threshold: 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBalance([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := apperrors.GetCode(err); code != apperrors.CodeInvalidBalance {
				t.Fatalf("expected %s, got %s (%v)", apperrors.CodeInvalidBalance, code, err)
			}
		})
	}
}

func TestParseBalanceOfWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte("name: tiny\ngrowth: 3\nmultiplier_costs: [1]\nauto_clicker_costs: [2]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := Cost(b.MultiplierCosts, 2, b.Growth); got != 9 {
		t.Fatalf("expected cost 9, got %d", got)
	}
}
