package economy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
)

const (
	// PresetHustle is the startup-themed default balance.
	PresetHustle = "hustle"
	// PresetClassic is the plain doubling balance.
	PresetClassic = "classic"
)

// Stage is a named progress milestone reached once clicks meet Threshold.
type Stage struct {
	Name      string `yaml:"name" json:"name"`
	Threshold int64  `yaml:"threshold" json:"threshold"`
}

// Balance holds the tunable numbers of one economy.
type Balance struct {
	Name             string  `yaml:"name" json:"name"`
	Growth           float64 `yaml:"growth" json:"growth"`
	Currency         string  `yaml:"currency" json:"currency"`
	MultiplierCosts  []int64 `yaml:"multiplier_costs" json:"multiplierCosts"`
	AutoClickerCosts []int64 `yaml:"auto_clicker_costs" json:"autoClickerCosts"`
	Stages           []Stage `yaml:"stages,omitempty" json:"stages,omitempty"`
}

// Hustle returns the startup-themed balance.
func Hustle() Balance {
	return Balance{
		Name:             PresetHustle,
		Growth:           1.5,
		Currency:         "$",
		MultiplierCosts:  []int64{15, 75, 300, 1000, 5000, 25000, 100000, 500000},
		AutoClickerCosts: []int64{20, 150, 800, 4000, 20000, 100000},
		Stages: []Stage{
			{Name: "The Garage", Threshold: 0},
			{Name: "Coworking", Threshold: 1000},
			{Name: "Small Office", Threshold: 50000},
			{Name: "HQ Campus", Threshold: 500000},
			{Name: "Unicorn!", Threshold: 10000000},
			{Name: "To The Moon", Threshold: 100000000},
		},
	}
}

// Classic returns the doubling balance: multipliers cost 50, 100, 200, ...
// and auto-clickers cost 100, 200, 400, ...
func Classic() Balance {
	return Balance{
		Name:             PresetClassic,
		Growth:           2,
		MultiplierCosts:  []int64{50},
		AutoClickerCosts: []int64{100},
	}
}

var presets = map[string]func() Balance{
	PresetHustle:  Hustle,
	PresetClassic: Classic,
}

// PresetNames lists the built-in balances in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset resolves a built-in balance by name. An empty name selects hustle.
func Preset(name string) (Balance, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = PresetHustle
	}
	build, ok := presets[name]
	if !ok {
		return Balance{}, apperrors.WithMetadata(
			apperrors.CodeInvalidBalance,
			fmt.Sprintf("unknown balance preset %q (want one of %s)", name, strings.Join(PresetNames(), ", ")),
			map[string]string{"preset": name},
		)
	}
	return build(), nil
}

// Validate checks the invariants the cost curve relies on.
func (b Balance) Validate() error {
	if math.IsNaN(b.Growth) || math.IsInf(b.Growth, 0) || b.Growth < 1 {
		return invalidBalance("growth must be a finite number >= 1, got %v", b.Growth)
	}
	if err := validateTable("multiplier_costs", b.MultiplierCosts); err != nil {
		return err
	}
	if err := validateTable("auto_clicker_costs", b.AutoClickerCosts); err != nil {
		return err
	}
	for i, stage := range b.Stages {
		if strings.TrimSpace(stage.Name) == "" {
			return invalidBalance("stages[%d]: name is required", i)
		}
		if i == 0 {
			if stage.Threshold != 0 {
				return invalidBalance("stages[0]: threshold must be 0, got %d", stage.Threshold)
			}
			continue
		}
		if stage.Threshold <= b.Stages[i-1].Threshold {
			return invalidBalance("stages[%d]: threshold %d must exceed %d", i, stage.Threshold, b.Stages[i-1].Threshold)
		}
	}
	return nil
}

// StageFor returns the highest stage whose threshold is at most clicks, or ""
// when the balance defines no stages.
func (b Balance) StageFor(clicks int64) string {
	name := ""
	for _, stage := range b.Stages {
		if clicks < stage.Threshold {
			break
		}
		name = stage.Name
	}
	return name
}

func validateTable(field string, table []int64) error {
	if len(table) == 0 {
		return invalidBalance("%s: at least one entry is required", field)
	}
	for i, v := range table {
		if v <= 0 {
			return invalidBalance("%s[%d]: cost must be positive, got %d", field, i, v)
		}
		if i > 0 && v <= table[i-1] {
			return invalidBalance("%s[%d]: cost %d must exceed %d", field, i, v, table[i-1])
		}
	}
	return nil
}

func invalidBalance(format string, args ...any) error {
	return apperrors.New(apperrors.CodeInvalidBalance, fmt.Sprintf("invalid balance: "+format, args...))
}
