package game

import (
	"fmt"
	"math"
)

const (
	DefaultCurveBase   = 100
	DefaultCurveGrowth = 1.15
	DefaultCurveLevels = 99
)

// LevelCurve builds levels thresholds, each growth times the previous one,
// rounded to whole experience points.
func LevelCurve(base uint64, growth float64, levels int) []uint64 {
	if levels <= 0 || base == 0 {
		return nil
	}
	if growth < 1 {
		growth = 1
	}
	curve := make([]uint64, levels)
	value := float64(base)
	for i := range curve {
		if value >= math.MaxUint64/2 {
			value = math.MaxUint64 / 2
		}
		curve[i] = uint64(math.Round(value))
		value *= growth
	}
	return curve
}

func DefaultLevelCurve() []uint64 {
	return LevelCurve(DefaultCurveBase, DefaultCurveGrowth, DefaultCurveLevels)
}

func ValidateLevelCurve(curve []uint64) error {
	if len(curve) == 0 {
		return fmt.Errorf("level curve is empty")
	}
	for i, threshold := range curve {
		if threshold == 0 {
			return fmt.Errorf("level curve threshold %d must be positive", i+1)
		}
	}
	return nil
}
