// pkg/entity/player.go
package entity

import (
	"math"

	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// MovementState drives animation selection
type MovementState int

const (
	Idle MovementState = iota
	Running
	Jumping
)

func (s MovementState) String() string {
	switch s {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	default:
		return "idle"
	}
}

// Facing is the direction a player sprite looks
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// runThreshold is the minimum horizontal intent that counts as running
const runThreshold = 0.1

// Player is one of the two dinosaurs. It is created once per session and
// reused across points and restarts.
type Player struct {
	BaseEntity
	Side   court.Side
	Home   physics.Vector2D
	State  MovementState
	Facing Facing
}

// NewPlayer creates a player on the given side, facing the net
func NewPlayer(side court.Side, home physics.Vector2D) *Player {
	facing := FacingRight
	if side == court.Right {
		facing = FacingLeft
	}
	return &Player{
		BaseEntity: BaseEntity{Position: home},
		Side:       side,
		Home:       home,
		State:      Idle,
		Facing:     facing,
	}
}

// Grounded reports whether the player stands on (or within tolerance of) the ground
func (p *Player) Grounded(c court.Court, cfg config.PlayerConfig) bool {
	return p.Position.Y <= c.GroundY+cfg.GroundTolerance
}

// Update advances the player by dt seconds. It only touches this player's
// own state.
func (p *Player) Update(in Controls, dt float64, c court.Court, cfg config.PlayerConfig) {
	direction := in.Direction()

	if in.JumpPressed && p.Grounded(c, cfg) {
		p.Velocity.Y = c.JumpVelocity
	}

	p.Position.X += direction * c.PlayerSpeed * dt

	if direction < 0 {
		p.Facing = FacingLeft
	} else if direction > 0 {
		p.Facing = FacingRight
	}

	// Gravity applies even on the ground; the clamp below absorbs it.
	p.Velocity.Y -= cfg.Gravity * dt
	p.Position.Y += p.Velocity.Y * dt

	if p.Position.Y < c.GroundY {
		p.Position.Y = c.GroundY
		p.Velocity.Y = 0
	}

	switch {
	case p.Position.Y > c.GroundY+cfg.GroundTolerance:
		p.State = Jumping
	case math.Abs(direction) > runThreshold:
		p.State = Running
	default:
		p.State = Idle
	}

	lo, hi := c.PlayerBounds(p.Side)
	p.Position.X = physics.Clamp(p.Position.X, lo, hi)
}

// Bounds returns the player's axis-aligned body box
func (p *Player) Bounds(c court.Court) physics.Rect {
	return physics.Rect{Center: p.Position, Width: c.PlayerWidth, Height: c.PlayerHeight}
}

// GetCollider returns the circle used for ball contact
func (p *Player) GetCollider(c court.Court) physics.Circle {
	return physics.Circle{Center: p.Position, Radius: c.PlayerRadius()}
}

// Reset returns the player to its home position at rest
func (p *Player) Reset() {
	p.Position = p.Home
	p.Velocity = physics.Vector2D{}
	p.State = Idle
	if p.Side == court.Right {
		p.Facing = FacingLeft
	} else {
		p.Facing = FacingRight
	}
}
