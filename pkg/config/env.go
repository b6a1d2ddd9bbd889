// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognised by ApplyEnvironmentOverrides
const (
	EnvWinningScore  = "DINOBALL_WINNING_SCORE"
	EnvSpeed         = "DINOBALL_SPEED"
	EnvCeilingBounce = "DINOBALL_CEILING_BOUNCE"
	EnvWindowWidth   = "DINOBALL_WIDTH"
	EnvWindowHeight  = "DINOBALL_HEIGHT"
	EnvFullscreen    = "DINOBALL_FULLSCREEN"
	EnvHitMinSpeed   = "DINOBALL_HIT_MIN_SPEED"
	EnvHitBoost      = "DINOBALL_HIT_BOOST"
	EnvBallMaxSpeed  = "DINOBALL_BALL_MAX_SPEED"
	EnvPlayerSpeed   = "DINOBALL_PLAYER_SPEED_RATIO"
)

// ApplyEnvironmentOverrides overlays DINOBALL_* environment variables onto
// config and re-validates the result. Unset variables leave fields untouched.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if err := overrideInt(EnvWinningScore, &config.Rules.WinningScore); err != nil {
		return err
	}
	if value, ok := lookup(EnvSpeed); ok {
		level, err := ParseSpeedLevel(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpeed, err)
		}
		config.Rules.Speed = level
	}
	if err := overrideBool(EnvCeilingBounce, &config.Ball.CeilingBounce); err != nil {
		return err
	}
	if err := overrideInt(EnvWindowWidth, &config.Display.Width); err != nil {
		return err
	}
	if err := overrideInt(EnvWindowHeight, &config.Display.Height); err != nil {
		return err
	}
	if err := overrideBool(EnvFullscreen, &config.Display.Fullscreen); err != nil {
		return err
	}
	if err := overrideFloat(EnvHitMinSpeed, &config.Ball.PlayerHit.MinSpeed); err != nil {
		return err
	}
	if err := overrideFloat(EnvHitBoost, &config.Ball.PlayerHit.Boost); err != nil {
		return err
	}
	if err := overrideFloat(EnvBallMaxSpeed, &config.Ball.MaxSpeed); err != nil {
		return err
	}
	if err := overrideFloat(EnvPlayerSpeed, &config.Player.SpeedRatio); err != nil {
		return err
	}

	return config.Validate()
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func overrideInt(key string, target *int) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}

func overrideFloat(key string, target *float64) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}

func overrideBool(key string, target *bool) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}
