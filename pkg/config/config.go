// pkg/config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains configuration for a Dino Ball match.
// Ratios are relative to the viewport so the court scales with the window.
type GameConfig struct {
	Court   CourtConfig   `json:"court" toml:"court"`
	Player  PlayerConfig  `json:"player" toml:"player"`
	Ball    BallConfig    `json:"ball" toml:"ball"`
	Rules   GameRules     `json:"gameRules" toml:"gameRules"`
	Display DisplayConfig `json:"display" toml:"display"`
}

// CourtConfig contains the court layout ratios
type CourtConfig struct {
	GroundOffsetRatio float64 `json:"groundOffsetRatio" toml:"groundOffsetRatio"`
	NetHeightRatio    float64 `json:"netHeightRatio" toml:"netHeightRatio"`
	NetWidthRatio     float64 `json:"netWidthRatio" toml:"netWidthRatio"`
	NetHalfThickness  float64 `json:"netHalfThickness" toml:"netHalfThickness"`
}

// PlayerConfig contains player body and movement tuning
type PlayerConfig struct {
	HeightRatio           float64 `json:"heightRatio" toml:"heightRatio"`
	AspectRatio           float64 `json:"aspectRatio" toml:"aspectRatio"`
	SpeedRatio            float64 `json:"speedRatio" toml:"speedRatio"`
	Gravity               float64 `json:"gravity" toml:"gravity"`
	JumpHeightRatioOfPole float64 `json:"jumpHeightRatioOfPole" toml:"jumpHeightRatioOfPole"`
	GroundTolerance       float64 `json:"groundTolerance" toml:"groundTolerance"`
	HomeX                 float64 `json:"homeX" toml:"homeX"`
}

// BallConfig contains ball flight, spin and collision tuning
type BallConfig struct {
	SizeRatio          float64 `json:"sizeRatio" toml:"sizeRatio"`
	Bounce             float64 `json:"bounce" toml:"bounce"`
	Gravity            float64 `json:"gravity" toml:"gravity"`
	MaxSpeed           float64 `json:"maxSpeed" toml:"maxSpeed"`
	HorizontalFriction float64 `json:"horizontalFriction" toml:"horizontalFriction"`
	RotationFactor     float64 `json:"rotationFactor" toml:"rotationFactor"`
	MaxSpin            float64 `json:"maxSpin" toml:"maxSpin"`
	SpinDecay          float64 `json:"spinDecay" toml:"spinDecay"`
	StartHeight        float64 `json:"startHeight" toml:"startHeight"`
	CeilingBounce      bool    `json:"ceilingBounce" toml:"ceilingBounce"`

	Serve     ServeConfig     `json:"serve" toml:"serve"`
	Pole      ImpactConfig    `json:"pole" toml:"pole"`
	PlayerHit PlayerHitConfig `json:"playerHit" toml:"playerHit"`
}

// ServeConfig contains the serve attachment and launch tuning
type ServeConfig struct {
	Height           float64 `json:"height" toml:"height"`
	HorizontalFactor float64 `json:"horizontalFactor" toml:"horizontalFactor"`
	SpinFactor       float64 `json:"spinFactor" toml:"spinFactor"`
	LiftThreshold    float64 `json:"liftThreshold" toml:"liftThreshold"`
}

// ImpactConfig describes a speed floor plus boost applied on a bounce
type ImpactConfig struct {
	MinSpeed  float64 `json:"minSpeed" toml:"minSpeed"`
	Boost     float64 `json:"boost" toml:"boost"`
	TipMargin float64 `json:"tipMargin,omitempty" toml:"tipMargin,omitempty"`
}

// PlayerHitConfig contains the response of the ball to a player body
type PlayerHitConfig struct {
	MinSpeed   float64 `json:"minSpeed" toml:"minSpeed"`
	Boost      float64 `json:"boost" toml:"boost"`
	SpinFactor float64 `json:"spinFactor" toml:"spinFactor"`
}

// GameRules contains match rules configuration
type GameRules struct {
	WinningScore int        `json:"winningScore" toml:"winningScore"`
	Speed        SpeedLevel `json:"speed" toml:"speed"`
}

// DisplayConfig contains window settings used by graphical frontends
type DisplayConfig struct {
	Title      string `json:"title" toml:"title"`
	Width      int    `json:"width" toml:"width"`
	Height     int    `json:"height" toml:"height"`
	Fullscreen bool   `json:"fullscreen" toml:"fullscreen"`
	VSync      bool   `json:"vsync" toml:"vsync"`
}

// LoadConfig loads a configuration from a file. Files ending in .toml are
// decoded as TOML, everything else as JSON. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Rules.Speed, _ = ParseSpeedLevel(string(config.Rules.Speed))

	return config, nil
}

// SaveConfig saves a configuration to a file, in TOML when the path ends in
// .toml and JSON otherwise
func SaveConfig(config *GameConfig, path string) error {
	var data []byte
	var err error
	if isTOML(path) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// DefaultConfig returns the canonical tuning for a Dino Ball match
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Court: CourtConfig{
			GroundOffsetRatio: 0.12,
			NetHeightRatio:    0.45,
			NetWidthRatio:     0.03,
			NetHalfThickness:  5,
		},
		Player: PlayerConfig{
			HeightRatio:           0.2,
			AspectRatio:           0.8,
			SpeedRatio:            0.35,
			Gravity:               2310,
			JumpHeightRatioOfPole: 0.8,
			GroundTolerance:       1,
			HomeX:                 300,
		},
		Ball: BallConfig{
			SizeRatio:          0.1,
			Bounce:             1.25,
			Gravity:            1050,
			MaxSpeed:           840,
			HorizontalFriction: 0.99,
			RotationFactor:     0.05,
			MaxSpin:            5,
			SpinDecay:          0.98,
			StartHeight:        200,
			CeilingBounce:      true,
			Serve: ServeConfig{
				Height:           150,
				HorizontalFactor: 15,
				SpinFactor:       30,
				LiftThreshold:    10,
			},
			Pole: ImpactConfig{
				MinSpeed:  300,
				Boost:     50,
				TipMargin: 10,
			},
			PlayerHit: PlayerHitConfig{
				MinSpeed:   650,
				Boost:      300,
				SpinFactor: 50,
			},
		},
		Rules: GameRules{
			WinningScore: 5,
			Speed:        SpeedNormal,
		},
		Display: DisplayConfig{
			Title:  "Dino Ball",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
	}
}

// Validate checks that the configuration describes a playable match.
// All problems are reported together.
func (c *GameConfig) Validate() error {
	var errs []error

	positive := map[string]float64{
		"court.netHeightRatio":         c.Court.NetHeightRatio,
		"player.heightRatio":           c.Player.HeightRatio,
		"player.aspectRatio":           c.Player.AspectRatio,
		"player.speedRatio":            c.Player.SpeedRatio,
		"player.gravity":               c.Player.Gravity,
		"player.jumpHeightRatioOfPole": c.Player.JumpHeightRatioOfPole,
		"ball.sizeRatio":               c.Ball.SizeRatio,
		"ball.gravity":                 c.Ball.Gravity,
		"ball.maxSpeed":                c.Ball.MaxSpeed,
	}
	for _, name := range sortedKeys(positive) {
		if positive[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, positive[name]))
		}
	}

	if c.Court.NetHalfThickness < 0 {
		errs = append(errs, fmt.Errorf("court.netHalfThickness must not be negative, got %v", c.Court.NetHalfThickness))
	}
	if c.Ball.MaxSpin < 0 {
		errs = append(errs, fmt.Errorf("ball.maxSpin must not be negative, got %v", c.Ball.MaxSpin))
	}
	if c.Rules.WinningScore < 1 {
		errs = append(errs, fmt.Errorf("gameRules.winningScore must be at least 1, got %d", c.Rules.WinningScore))
	}
	if _, err := ParseSpeedLevel(string(c.Rules.Speed)); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
