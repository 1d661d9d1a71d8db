package model

import (
	"strings"
)

type RoastLevel string

const (
	RoastLight       RoastLevel = "Light"
	RoastMediumLight RoastLevel = "Medium-Light"
	RoastMedium      RoastLevel = "Medium"
	RoastMediumDark  RoastLevel = "Medium-Dark"
	RoastDark        RoastLevel = "Dark"
)

var RoastLevels = []RoastLevel{RoastLight, RoastMediumLight, RoastMedium, RoastMediumDark, RoastDark}

func (r RoastLevel) Valid() bool {
	for _, level := range RoastLevels {
		if r == level {
			return true
		}
	}

	return false
}

// ParseRoastLevel matches loosely written roast levels ("medium light", "MEDIUM_DARK",
// "Medium-Light roast") against the fixed set.
func ParseRoastLevel(value string) (RoastLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimSuffix(normalized, "roast")
	normalized = strings.TrimSpace(normalized)
	normalized = strings.NewReplacer("_", "-", " ", "-", "–", "-").Replace(normalized)

	for strings.Contains(normalized, "--") {
		normalized = strings.ReplaceAll(normalized, "--", "-")
	}

	for _, level := range RoastLevels {
		if strings.ToLower(string(level)) == normalized {
			return level, true
		}
	}

	return "", false
}
