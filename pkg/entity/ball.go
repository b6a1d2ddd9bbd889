// pkg/entity/ball.go
package entity

import (
	"math"

	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// ContactKind identifies what the ball bounced off
type ContactKind string

const (
	ContactWall     ContactKind = "wall"
	ContactCeiling  ContactKind = "ceiling"
	ContactPoleTip  ContactKind = "pole_tip"
	ContactPoleSide ContactKind = "pole_side"
	ContactPlayer   ContactKind = "player"
)

// Contact records one collision resolved during a ball step
type Contact struct {
	Kind ContactKind
	// Side is the player hit for ContactPlayer, otherwise the half of the
	// court the ball was on.
	Side court.Side
}

// Ball is the volleyball. Spin is angular velocity in radians per second;
// Rotation is the visual angle and never feeds back into the physics.
type Ball struct {
	BaseEntity
	Spin     float64
	Rotation float64
}

// NewBall creates a ball at rest
func NewBall(position physics.Vector2D) *Ball {
	return &Ball{BaseEntity: BaseEntity{Position: position}}
}

// GetCollider returns the ball's collision circle
func (b *Ball) GetCollider(c court.Court) physics.Circle {
	return physics.Circle{Center: b.Position, Radius: c.BallRadius}
}

// Bounds returns the ball's axis-aligned bounding box
func (b *Ball) Bounds(c court.Court) physics.Rect {
	return b.GetCollider(c).Bounds()
}

// Stop zeroes linear velocity
func (b *Ball) Stop() {
	b.Velocity = physics.Vector2D{}
}

// Attach holds the ball above the serving player, at rest
func (b *Ball) Attach(server *Player, c court.Court, cfg config.BallConfig) {
	b.Position = physics.Vector2D{X: server.Position.X, Y: c.GroundY + cfg.Serve.Height}
	b.Rotation = 0
	b.Velocity = physics.Vector2D{}
	b.Spin = 0
}

// TryServe launches an attached ball when the server is pressing a serve
// key or rising, and the two bounding boxes overlap. It reports whether the
// ball was released.
func (b *Ball) TryServe(server *Player, serveHeld bool, c court.Court, cfg config.BallConfig) bool {
	lifting := server.Velocity.Y > cfg.Serve.LiftThreshold
	if !serveHeld && !lifting {
		return false
	}
	if !b.Bounds(c).Overlaps(server.Bounds(c)) {
		return false
	}

	offset := b.Position.X - server.Position.X
	b.Velocity.Y = c.JumpVelocity
	b.Velocity.X = offset * cfg.Serve.HorizontalFactor
	b.Spin = hitSpin(offset, c, cfg.Serve.SpinFactor, cfg.MaxSpin)
	return true
}

// Step integrates a ball in free flight and resolves collisions against the
// walls, the net and each player, in that order. Collisions compound: each
// one sees the state left by the previous one.
func (b *Ball) Step(dt float64, players []*Player, c court.Court, cfg config.BallConfig) []Contact {
	b.Velocity.Y -= cfg.Gravity * dt
	b.Velocity.X *= cfg.HorizontalFriction

	b.integrate(dt)

	b.Rotation = physics.WrapAngle(b.Rotation + b.Spin*dt - b.Velocity.X*cfg.RotationFactor*dt)
	b.Spin *= cfg.SpinDecay

	var contacts []Contact
	contacts = b.collideWalls(c, cfg, contacts)
	contacts = b.collideNet(c, cfg, contacts)
	for _, player := range players {
		if b.collidePlayer(player, c, cfg) {
			contacts = append(contacts, Contact{Kind: ContactPlayer, Side: player.Side})
		}
	}
	return contacts
}

func (b *Ball) collideWalls(c court.Court, cfg config.BallConfig, contacts []Contact) []Contact {
	r := c.BallRadius

	if b.Position.X-r < -c.HalfWidth {
		b.Position.X = -c.HalfWidth + r
		b.Velocity.X *= -cfg.Bounce
		contacts = append(contacts, Contact{Kind: ContactWall, Side: court.Left})
	}
	if b.Position.X+r > c.HalfWidth {
		b.Position.X = c.HalfWidth - r
		b.Velocity.X *= -cfg.Bounce
		contacts = append(contacts, Contact{Kind: ContactWall, Side: court.Right})
	}
	if cfg.CeilingBounce && b.Position.Y+r > c.HalfHeight {
		b.Position.Y = c.HalfHeight - r
		b.Velocity.Y *= -cfg.Bounce
		contacts = append(contacts, Contact{Kind: ContactCeiling, Side: court.SideOf(b.Position.X)})
	}
	return contacts
}

func (b *Ball) collideNet(c court.Court, cfg config.BallConfig, contacts []Contact) []Contact {
	r := c.BallRadius
	if b.Position.Y >= c.NetTopY+r || math.Abs(b.Position.X) >= c.NetHalfThickness+r {
		return contacts
	}

	side := court.SideOf(b.Position.X)

	if b.Position.Y > c.NetTopY-cfg.Pole.TipMargin {
		// Round pole tip: deflect radially away from the tip point.
		tip := physics.Vector2D{X: 0, Y: c.NetTopY}
		offset := b.Position.Sub(tip)
		normal := offset.Normalize()

		speed := math.Max(b.Velocity.Length(), cfg.Pole.MinSpeed)
		b.Velocity = normal.Scale(speed + cfg.Pole.Boost)

		if overlap := r - offset.Length(); overlap > 0 {
			b.Position = b.Position.Add(normal.Scale(overlap))
		}
		return append(contacts, Contact{Kind: ContactPoleTip, Side: side})
	}

	b.Velocity.X *= -cfg.Bounce
	b.Position.X = physics.Signum(b.Position.X) * (c.NetHalfThickness + r + 1)
	return append(contacts, Contact{Kind: ContactPoleSide, Side: side})
}

func (b *Ball) collidePlayer(player *Player, c court.Court, cfg config.BallConfig) bool {
	hit := physics.CheckCollision(player.GetCollider(c), b.GetCollider(c))
	if !hit.Collided {
		return false
	}

	speed := math.Max(b.Velocity.Length(), cfg.PlayerHit.MinSpeed)
	b.Velocity = hit.Normal.Scale(speed + cfg.PlayerHit.Boost).ClampLength(cfg.MaxSpeed)
	b.Spin = hitSpin(b.Position.X-player.Position.X, c, cfg.PlayerHit.SpinFactor, cfg.MaxSpin)
	b.Position = b.Position.Add(hit.Normal.Scale(hit.Penetration))
	return true
}

// hitSpin converts a horizontal contact offset into spin: hitting the ball
// off-centre to the right spins it clockwise.
func hitSpin(offset float64, c court.Court, factor, maxSpin float64) float64 {
	direction := offset / c.HalfPlayerWidth()
	return physics.Clamp(-direction*factor, -maxSpin, maxSpin)
}
