// pkg/engine/input.go
package engine

import (
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
)

// Input is everything the frontend reports for one frame.
// Restart and Quit are edge events: true only on the frame they fire.
type Input struct {
	Players [2]entity.Controls
	Restart bool
	Quit    bool
}

// For returns the controls of the player on side
func (in Input) For(side court.Side) entity.Controls {
	return in.Players[side]
}

// Viewport is the drawable area in pixels
type Viewport struct {
	Width  float64
	Height float64
}
