// pkg/ai/autopilot.go
// Package ai provides computer-controlled players. An Autopilot reads the
// latest engine.Frame and produces the same Controls a keyboard would.
package ai

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// Behavior selects how the autopilot positions itself
type Behavior int

const (
	BehaviorChaser   Behavior = iota // Follows the ball anywhere along its half
	BehaviorDefender                 // Waits mid-half until the ball is on its side
)

// String returns the behavior name
func (b Behavior) String() string {
	switch b {
	case BehaviorChaser:
		return "chaser"
	case BehaviorDefender:
		return "defender"
	default:
		return "unknown"
	}
}

// ParseBehavior returns the behavior for name. The empty string means
// BehaviorChaser.
func ParseBehavior(name string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chaser":
		return BehaviorChaser, nil
	case "defender":
		return BehaviorDefender, nil
	default:
		return BehaviorChaser, fmt.Errorf("unknown behavior %q (want chaser or defender)", name)
	}
}

const (
	defaultServeDelay = 45   // frames
	lookahead         = 0.25 // seconds of ball travel to anticipate
)

// Autopilot drives one player
type Autopilot struct {
	side        court.Side
	behavior    Behavior
	serveDelay  int
	mistakeRate float64
	random      *rand.Rand

	waited   int
	lastJump bool
}

// Option configures an Autopilot
type Option func(*Autopilot)

// WithBehavior sets the positioning behavior
func WithBehavior(b Behavior) Option {
	return func(a *Autopilot) { a.behavior = b }
}

// WithServeDelay sets how many frames the autopilot waits before serving
func WithServeDelay(frames int) Option {
	return func(a *Autopilot) { a.serveDelay = frames }
}

// WithMistakes makes the autopilot skip a fraction of its jumps, using a
// deterministic random source seeded with seed.
func WithMistakes(rate float64, seed uint64) Option {
	return func(a *Autopilot) {
		a.mistakeRate = rate
		a.random = rand.New(rand.NewPCG(seed, uint64(a.side)))
	}
}

// NewAutopilot creates an autopilot for the player on side
func NewAutopilot(side court.Side, opts ...Option) *Autopilot {
	a := &Autopilot{
		side:       side,
		behavior:   BehaviorChaser,
		serveDelay: defaultServeDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.random == nil {
		a.random = rand.New(rand.NewPCG(1, uint64(side)))
	}
	return a
}

// Side returns the court half this autopilot plays
func (a *Autopilot) Side() court.Side {
	return a.side
}

// Decide returns the controls for the next step given the latest frame
func (a *Autopilot) Decide(f engine.Frame) entity.Controls {
	var controls entity.Controls
	if f.GameOver {
		a.lastJump = false
		a.waited = 0
		return controls
	}

	me := f.Player(a.side)
	jump := false

	if f.BallActive {
		a.waited = 0
		target := a.target(f)
		deadzone := f.Court.PlayerWidth * 0.1
		switch dx := target - me.Position.X; {
		case dx < -deadzone:
			controls.Left = true
		case dx > deadzone:
			controls.Right = true
		}
		jump = a.shouldJump(f, me)
	} else if f.ServingPlayer == a.side {
		// Stand still under the ball and pulse jump until it is released.
		a.waited++
		jump = a.waited > a.serveDelay && !a.lastJump
	}

	controls.Jump = jump
	controls.JumpPressed = jump && !a.lastJump
	a.lastJump = jump
	return controls
}

// target returns the x the player should stand on. It leans slightly away
// from the net so contacts push the ball toward the opponent.
func (a *Autopilot) target(f engine.Frame) float64 {
	c := f.Court
	lo, hi := c.PlayerBounds(a.side)
	ball := f.Ball

	if a.behavior == BehaviorDefender && court.SideOf(ball.Position.X) != a.side {
		return (lo + hi) / 2
	}

	predicted := ball.Position.X + ball.Velocity.X*lookahead
	lean := c.HalfPlayerWidth() * 0.5
	if a.side == court.Left {
		predicted -= lean
	} else {
		predicted += lean
	}
	return physics.Clamp(predicted, lo, hi)
}

func (a *Autopilot) shouldJump(f engine.Frame, me engine.PlayerFrame) bool {
	c := f.Court
	ball := f.Ball

	if court.SideOf(ball.Position.X) != a.side || ball.Velocity.Y > 0 {
		return false
	}
	if math.Abs(ball.Position.X-me.Position.X) > c.PlayerWidth {
		return false
	}
	if ball.Position.Y-me.Position.Y > c.PlayerHeight*1.5 {
		return false
	}
	if a.mistakeRate > 0 && a.random.Float64() < a.mistakeRate {
		return false
	}
	return true
}
