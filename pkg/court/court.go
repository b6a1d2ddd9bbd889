// Package court resolves the resolution-independent playfield into concrete
// dimensions for the current viewport. The origin is the viewport centre and
// y grows upwards.
package court

import (
	"math"

	"github.com/opd-ai/go-dinoball/pkg/config"
)

// Side identifies a court half and the player who defends it
type Side int

const (
	// Left is Player 1's half (x < 0)
	Left Side = iota
	// Right is Player 2's half (x >= 0)
	Right
)

// Sides lists both court halves in player order
var Sides = [2]Side{Left, Right}

// Number returns the player number (1 or 2) defending the side
func (s Side) Number() int {
	return int(s) + 1
}

// Opposite returns the other court half
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// String returns "player1" or "player2"
func (s Side) String() string {
	if s == Left {
		return "player1"
	}
	return "player2"
}

// SideOf returns the half a horizontal position belongs to. The centre line
// belongs to the right half.
func SideOf(x float64) Side {
	if x < 0 {
		return Left
	}
	return Right
}

// Court holds the concrete layout for one frame. It is derived from the
// viewport every frame and never cached across frames.
type Court struct {
	Width  float64
	Height float64

	HalfWidth  float64
	HalfHeight float64
	GroundY    float64

	NetHalfThickness float64
	NetHeight        float64
	NetTopY          float64
	NetVisualWidth   float64

	PlayerWidth  float64
	PlayerHeight float64
	BallRadius   float64

	PlayerSpeed  float64
	JumpVelocity float64
}

// Resolve computes the court for a viewport of width x height. Degenerate
// viewports are not rejected; the resulting geometry is simply degenerate.
func Resolve(cfg *config.GameConfig, width, height float64) Court {
	netHeight := height * cfg.Court.NetHeightRatio
	playerHeight := height * cfg.Player.HeightRatio

	return Court{
		Width:      width,
		Height:     height,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		GroundY:    -height/2 + height*cfg.Court.GroundOffsetRatio,

		NetHalfThickness: cfg.Court.NetHalfThickness,
		NetHeight:        netHeight,
		NetTopY:          -height/2 + netHeight,
		NetVisualWidth:   width * cfg.Court.NetWidthRatio,

		PlayerWidth:  playerHeight * cfg.Player.AspectRatio,
		PlayerHeight: playerHeight,
		BallRadius:   height * cfg.Ball.SizeRatio / 2,

		PlayerSpeed:  width * cfg.Player.SpeedRatio,
		JumpVelocity: math.Sqrt(2 * cfg.Player.Gravity * netHeight * cfg.Player.JumpHeightRatioOfPole),
	}
}

// HalfPlayerWidth returns half the player body width
func (c Court) HalfPlayerWidth() float64 {
	return c.PlayerWidth / 2
}

// PlayerRadius is the circle radius used for ball/player contact: the
// average of the player's half-width and half-height.
func (c Court) PlayerRadius() float64 {
	return (c.PlayerWidth + c.PlayerHeight) / 4
}

// PlayerBounds returns the horizontal range a player's centre may occupy on
// the given side. Players can never cross the net.
func (c Court) PlayerBounds(side Side) (lo, hi float64) {
	half := c.HalfPlayerWidth()
	if side == Left {
		return -c.HalfWidth + half, -c.NetHalfThickness - half
	}
	return c.NetHalfThickness + half, c.HalfWidth - half
}
