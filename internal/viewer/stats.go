package viewer

import "math"

// MaxBaseStat is the scale of a full stat bar.
const MaxBaseStat = 255

// BarPercent returns the bar width for a base stat as a percentage of
// MaxBaseStat, clamped to [0, 100].
func BarPercent(base int) float64 {
	if base <= 0 {
		return 0
	}
	return math.Min(100, float64(base)/MaxBaseStat*100)
}

// BarCells converts BarPercent into filled cells of a bar that is width cells wide.
func BarCells(base, width int) int {
	if width <= 0 {
		return 0
	}
	return int(math.Round(BarPercent(base) / 100 * float64(width)))
}
