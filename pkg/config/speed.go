// pkg/config/speed.go
package config

import (
	"fmt"
	"strings"
)

// SpeedLevel selects a game speed multiplier
type SpeedLevel string

// Supported game speeds
const (
	SpeedSlow   SpeedLevel = "slow"
	SpeedNormal SpeedLevel = "normal"
	SpeedFast   SpeedLevel = "fast"
)

var speedFactors = map[SpeedLevel]float64{
	SpeedSlow:   0.45,
	SpeedNormal: 1.0,
	SpeedFast:   1.2,
}

// Factor returns the time-step multiplier for the level. Aliases accepted by
// ParseSpeedLevel resolve to their level; unknown levels run at normal speed.
func (s SpeedLevel) Factor() float64 {
	level, err := ParseSpeedLevel(string(s))
	if err != nil {
		return 1.0
	}
	return speedFactors[level]
}

// ParseSpeedLevel converts user input such as "Fast" or "2" to a SpeedLevel.
// The empty string maps to normal.
func ParseSpeedLevel(value string) (SpeedLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "slow", "1":
		return SpeedSlow, nil
	case "", "normal", "2":
		return SpeedNormal, nil
	case "fast", "3":
		return SpeedFast, nil
	default:
		return "", fmt.Errorf("unknown speed level %q (want slow, normal or fast)", value)
	}
}
