// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// Entity is the base interface for the bodies on the court
type Entity interface {
	GetPosition() physics.Vector2D
	GetCollider(c court.Court) physics.Circle
	Render(r Renderer)
}

// BaseEntity contains the kinematic state shared by players and the ball
type BaseEntity struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// integrate advances the position by velocity over dt
func (e *BaseEntity) integrate(dt float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
}

// Render draws the player through the renderer
func (p *Player) Render(r Renderer) {
	r.RenderPlayer(p)
}

// Render draws the ball through the renderer
func (b *Ball) Render(r Renderer) {
	r.RenderBall(b)
}
