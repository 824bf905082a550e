package economy

import "math"

// maxCostFloat is the first float64 that no longer fits an int64.
const maxCostFloat = float64(math.MaxInt64)

// Cost prices tier i of a track: table[min(i, len-1)] * growth^i, floored.
// Past the last table entry the final base keeps growing geometrically.
// The result saturates at math.MaxInt64, so Cost is total for every tier.
func Cost(table []int64, tier int64, growth float64) int64 {
	if len(table) == 0 {
		return math.MaxInt64
	}
	if tier < 0 {
		tier = 0
	}
	idx := tier
	if last := int64(len(table) - 1); idx > last {
		idx = last
	}
	v := math.Floor(float64(table[idx]) * math.Pow(growth, float64(tier)))
	if math.IsNaN(v) || v >= maxCostFloat {
		return math.MaxInt64
	}
	return int64(v)
}

// MultiplierCost is the price of the next multiplier upgrade for s.
func (b Balance) MultiplierCost(s GameState) int64 {
	return Cost(b.MultiplierCosts, s.MultiplierTier(), b.Growth)
}

// AutoClickerCost is the price of the next auto-clicker for s.
func (b Balance) AutoClickerCost(s GameState) int64 {
	return Cost(b.AutoClickerCosts, s.AutoClickerTier(), b.Growth)
}

func addSaturating(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
