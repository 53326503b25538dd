// Package wcag classifies contrast ratios against the WCAG 2.1 AA and
// AAA success criteria.
package wcag

import "github.com/sitescore/sitescore/internal/domain"

// Level is the highest WCAG conformance level a ratio satisfies.
type Level string

const (
	LevelFail Level = "fail"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// Minimum contrast ratios per level and text size. Boundaries are
// inclusive: a ratio of exactly 4.5 passes AA for normal text.
const (
	aaNormal  = 4.5
	aaLarge   = 3.0
	aaaNormal = 7.0
	aaaLarge  = 4.5
)

// MinRatio returns the threshold a ratio must reach for the given
// level and text size. LevelFail has no threshold and returns 0.
func MinRatio(level Level, size domain.TextSize) float64 {
	large := size == domain.TextSizeLarge
	switch level {
	case LevelAA:
		if large {
			return aaLarge
		}
		return aaNormal
	case LevelAAA:
		if large {
			return aaaLarge
		}
		return aaaNormal
	}
	return 0
}

// Meets reports whether a ratio satisfies the given level for the given
// text size.
func Meets(ratio float64, level Level, size domain.TextSize) bool {
	if level == LevelFail {
		return true
	}
	return ratio >= MinRatio(level, size)
}

// Classify returns the highest level the ratio satisfies. AAA implies
// AA for every text size.
func Classify(ratio float64, size domain.TextSize) Level {
	switch {
	case Meets(ratio, LevelAAA, size):
		return LevelAAA
	case Meets(ratio, LevelAA, size):
		return LevelAA
	default:
		return LevelFail
	}
}
