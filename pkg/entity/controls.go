// pkg/entity/controls.go
package entity

// Controls is one player's input for a frame. Left, Right and Jump report
// held keys; JumpPressed is true only on the frame the jump key went down.
type Controls struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	// Serve is an extra serve-only key (space) shared by both players.
	Serve bool
}

// Direction returns the horizontal intent in {-1, 0, 1}. Opposite keys cancel.
func (c Controls) Direction() float64 {
	direction := 0.0
	if c.Left {
		direction--
	}
	if c.Right {
		direction++
	}
	return direction
}

// ServeHeld reports whether any of the player's serve trigger keys is held
func (c Controls) ServeHeld() bool {
	return c.Left || c.Right || c.Jump || c.JumpPressed || c.Serve
}
