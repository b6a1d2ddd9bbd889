// pkg/config/config_test.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_CanonicalValues(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"speed_ratio", cfg.Player.SpeedRatio, 0.35},
		{"player_gravity", cfg.Player.Gravity, 2310},
		{"jump_ratio_of_pole", cfg.Player.JumpHeightRatioOfPole, 0.8},
		{"net_height_ratio", cfg.Court.NetHeightRatio, 0.45},
		{"net_half_thickness", cfg.Court.NetHalfThickness, 5},
		{"ground_offset_ratio", cfg.Court.GroundOffsetRatio, 0.12},
		{"player_height_ratio", cfg.Player.HeightRatio, 0.2},
		{"player_aspect_ratio", cfg.Player.AspectRatio, 0.8},
		{"ball_size_ratio", cfg.Ball.SizeRatio, 0.1},
		{"ball_bounce", cfg.Ball.Bounce, 1.25},
		{"ball_gravity", cfg.Ball.Gravity, 1050},
		{"ball_max_speed", cfg.Ball.MaxSpeed, 840},
		{"ball_friction", cfg.Ball.HorizontalFriction, 0.99},
		{"ball_rotation_factor", cfg.Ball.RotationFactor, 0.05},
		{"ball_max_spin", cfg.Ball.MaxSpin, 5},
		{"spin_decay", cfg.Ball.SpinDecay, 0.98},
		{"serve_height", cfg.Ball.Serve.Height, 150},
		{"pole_min_speed", cfg.Ball.Pole.MinSpeed, 300},
		{"pole_boost", cfg.Ball.Pole.Boost, 50},
		{"player_hit_min_speed", cfg.Ball.PlayerHit.MinSpeed, 650},
		{"player_hit_boost", cfg.Ball.PlayerHit.Boost, 300},
		{"player_hit_spin_factor", cfg.Ball.PlayerHit.SpinFactor, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	if cfg.Rules.WinningScore != 5 {
		t.Errorf("WinningScore = %d, want 5", cfg.Rules.WinningScore)
	}
	if !cfg.Ball.CeilingBounce {
		t.Error("CeilingBounce should default to enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.WinningScore = 0
	cfg.Player.HeightRatio = 0
	cfg.Rules.Speed = "warp"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
	}
	for _, fragment := range []string{"winningScore", "player.heightRatio", "warp"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q should mention %q", err.Error(), fragment)
		}
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dinoball.json")

	cfg := DefaultConfig()
	cfg.Rules.WinningScore = 11
	cfg.Ball.CeilingBounce = false
	cfg.Rules.Speed = SpeedFast

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if loaded.Rules.WinningScore != 11 {
		t.Errorf("WinningScore = %d, want 11", loaded.Rules.WinningScore)
	}
	if loaded.Ball.CeilingBounce {
		t.Error("CeilingBounce should round-trip as false")
	}
	if loaded.Rules.Speed != SpeedFast {
		t.Errorf("Speed = %q, want %q", loaded.Rules.Speed, SpeedFast)
	}
}

func TestSaveAndLoadConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dinoball.toml")

	cfg := DefaultConfig()
	cfg.Rules.WinningScore = 9
	cfg.Rules.Speed = SpeedSlow
	cfg.Display.Title = "Beach Court"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[gameRules]") {
		t.Errorf("saved TOML should contain a [gameRules] table, got:\n%s", data)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if loaded.Rules.WinningScore != 9 {
		t.Errorf("WinningScore = %d, want 9", loaded.Rules.WinningScore)
	}
	if loaded.Rules.Speed != SpeedSlow {
		t.Errorf("Speed = %q, want %q", loaded.Rules.Speed, SpeedSlow)
	}
	if loaded.Display.Title != "Beach Court" {
		t.Errorf("Title = %q, want %q", loaded.Display.Title, "Beach Court")
	}
}

func TestLoadConfig_PartialTOMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := "[gameRules]\nwinningScore = 3\n\n[ball]\nceilingBounce = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Rules.WinningScore != 3 {
		t.Errorf("WinningScore = %d, want 3", cfg.Rules.WinningScore)
	}
	if cfg.Ball.CeilingBounce {
		t.Error("CeilingBounce should be false")
	}
	if cfg.Ball.MaxSpeed != 840 {
		t.Errorf("Ball.MaxSpeed = %v, want default 840", cfg.Ball.MaxSpeed)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"gameRules":{"winningScore":7}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Rules.WinningScore != 7 {
		t.Errorf("WinningScore = %d, want 7", cfg.Rules.WinningScore)
	}
	if cfg.Ball.Gravity != 1050 {
		t.Errorf("Ball.Gravity = %v, want default 1050", cfg.Ball.Gravity)
	}
}

func TestLoadConfig_CanonicalisesSpeedAliases(t *testing.T) {
	tests := []struct {
		input  string
		level  SpeedLevel
		factor float64
	}{
		{"Fast", SpeedFast, 1.2},
		{"3", SpeedFast, 1.2},
		{"1", SpeedSlow, 0.45},
		{" SLOW ", SpeedSlow, 0.45},
		{"", SpeedNormal, 1.0},
	}

	dir := t.TempDir()
	for i, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("speed%d.json", i))
			content := fmt.Sprintf(`{"gameRules":{"speed":%q}}`, tt.input)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}
			if cfg.Rules.Speed != tt.level {
				t.Errorf("Speed = %q, want %q", cfg.Rules.Speed, tt.level)
			}
			if got := cfg.Rules.Speed.Factor(); got != tt.factor {
				t.Errorf("Factor() = %v, want %v", got, tt.factor)
			}
		})
	}
}

func TestSpeedLevel_FactorResolvesAliases(t *testing.T) {
	tests := []struct {
		level  SpeedLevel
		factor float64
	}{
		{"Fast", 1.2},
		{"2", 1.0},
		{"slow", 0.45},
		{"warp", 1.0},
	}
	for _, tt := range tests {
		if got := tt.level.Factor(); got != tt.factor {
			t.Errorf("SpeedLevel(%q).Factor() = %v, want %v", tt.level, got, tt.factor)
		}
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("LoadConfig() should fail for a missing file")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() should fail for malformed JSON")
		}
	})

	t.Run("invalid_values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		if err := os.WriteFile(path, []byte(`{"gameRules":{"winningScore":-1}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
		}
	})
}
