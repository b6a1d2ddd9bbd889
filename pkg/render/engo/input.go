// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/entity"
)

// Button names registered with engo.Input
const (
	ButtonP1Left  = "p1Left"
	ButtonP1Right = "p1Right"
	ButtonP1Jump  = "p1Jump"
	ButtonP2Left  = "p2Left"
	ButtonP2Right = "p2Right"
	ButtonP2Jump  = "p2Jump"
	ButtonServe   = "serve"
	ButtonRestart = "restart"
	ButtonConfirm = "confirm"
	ButtonQuit    = "quit"
)

type playerButtons struct {
	left, right, jump string
}

var sideButtons = [2]playerButtons{
	court.Left:  {left: ButtonP1Left, right: ButtonP1Right, jump: ButtonP1Jump},
	court.Right: {left: ButtonP2Left, right: ButtonP2Right, jump: ButtonP2Jump},
}

// ButtonReader reports the state of named buttons
type ButtonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads the live engo input state
type engoButtons struct{}

func (engoButtons) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }

// SetupInputBindings registers the keyboard layout: A/D/W for player 1,
// the arrow keys for player 2, Space to serve, R to restart, Escape to quit.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonP1Left, engo.KeyA)
	engo.Input.RegisterButton(ButtonP1Right, engo.KeyD)
	engo.Input.RegisterButton(ButtonP1Jump, engo.KeyW)

	engo.Input.RegisterButton(ButtonP2Left, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonP2Right, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonP2Jump, engo.KeyArrowUp)

	engo.Input.RegisterButton(ButtonServe, engo.KeySpace)
	engo.Input.RegisterButton(ButtonRestart, engo.KeyR)
	engo.Input.RegisterButton(ButtonConfirm, engo.KeyEnter, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}

// ReadInput converts button state into a frame of engine input. Confirm
// only restarts once the match is over.
func ReadInput(b ButtonReader, gameOver bool) engine.Input {
	var in engine.Input
	serve := b.Down(ButtonServe)

	for _, side := range court.Sides {
		keys := sideButtons[side]
		in.Players[side] = entity.Controls{
			Left:        b.Down(keys.left),
			Right:       b.Down(keys.right),
			Jump:        b.Down(keys.jump),
			JumpPressed: b.JustPressed(keys.jump),
			Serve:       serve,
		}
	}

	in.Restart = b.JustPressed(ButtonRestart) || (gameOver && b.JustPressed(ButtonConfirm))
	in.Quit = b.JustPressed(ButtonQuit)
	return in
}
