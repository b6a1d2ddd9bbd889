// pkg/engine/frame.go
package engine

import (
	"fmt"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// PlayerFrame is the renderable state of one player
type PlayerFrame struct {
	Side     court.Side
	Position physics.Vector2D
	Velocity physics.Vector2D
	Facing   entity.Facing
	State    entity.MovementState
}

// BallFrame is the renderable state of the ball
type BallFrame struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
}

// Frame is the output of one simulation step. It is a copy and stays valid
// after later steps.
type Frame struct {
	Tick          uint64
	Court         court.Court
	Players       [2]PlayerFrame
	Ball          BallFrame
	Player1Score  int
	Player2Score  int
	ServingPlayer court.Side
	BallActive    bool
	GameOver      bool
	Winner        int
	Quit          bool
}

// Player returns the frame of the player on side
func (f Frame) Player(side court.Side) PlayerFrame {
	return f.Players[side]
}

// ScoreText returns both scores formatted for display
func (f Frame) ScoreText() (string, string) {
	return FormatScore(f.Player1Score), FormatScore(f.Player2Score)
}

// FormatScore zero-pads a score to two digits
func FormatScore(score int) string {
	return fmt.Sprintf("%02d", score)
}

func snapshotPlayer(p *entity.Player) PlayerFrame {
	return PlayerFrame{
		Side:     p.Side,
		Position: p.Position,
		Velocity: p.Velocity,
		Facing:   p.Facing,
		State:    p.State,
	}
}
