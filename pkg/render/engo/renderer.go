// pkg/render/engo/renderer.go
package engo

import (
	"errors"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

var (
	skyColor    = color.RGBA{135, 206, 235, 255}
	groundColor = color.RGBA{194, 178, 128, 255}
	netColor    = color.RGBA{60, 60, 60, 255}
)

// Drawing order
const (
	zCourt  = 0
	zPlayer = 1
	zBall   = 2
	zHUD    = 10
)

// shape is one drawable entity owned by the renderer
type shape struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	z float32
}

func newShape(drawable common.Drawable, c color.Color, z float32) *shape {
	s := &shape{BasicEntity: ecs.NewBasic(), z: z}
	s.RenderComponent = common.RenderComponent{
		Drawable: drawable,
		Color:    c,
		Scale:    engo.Point{X: 1, Y: 1},
	}
	return s
}

// addShape registers s with rs. The z-index is applied once engo is running.
func addShape(rs *common.RenderSystem, s *shape) {
	rs.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	s.SetZIndex(s.z)
}

// EngoRenderer implements entity.Renderer by moving a fixed set of ECS
// entities: ground, net, two players, ball and the HUD.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	assets       *AssetManager
	hud          *HUD

	court     court.Court
	frameTime float64
	animators [2]RunAnimator

	ground  *shape
	net     *shape
	netTip  *shape
	players [2]*shape
	ball    *shape
}

// NewEngoRenderer creates a renderer drawing into world
func NewEngoRenderer(world *ecs.World, assets *AssetManager) *EngoRenderer {
	return &EngoRenderer{
		world:  world,
		assets: assets,
	}
}

// Initialize finds the world's render system and registers every shape
func (r *EngoRenderer) Initialize() error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
		}
	}
	if r.renderSystem == nil {
		return errors.New("engo renderer: world has no RenderSystem")
	}

	r.ground = newShape(common.Rectangle{}, groundColor, zCourt)
	r.net = newShape(common.Rectangle{}, netColor, zCourt)
	r.netTip = newShape(common.Circle{}, netColor, zCourt)
	for _, side := range court.Sides {
		r.players[side] = newShape(r.assets.PlayerSprite(side, PoseStand, entity.FacingRight), color.White, zPlayer)
	}
	r.ball = newShape(r.assets.BallSprite(), color.White, zBall)

	for _, s := range r.shapes() {
		addShape(r.renderSystem, s)
	}

	r.hud = NewHUD(r.assets.Font())
	r.hud.AddTo(r.renderSystem)
	return nil
}

func (r *EngoRenderer) shapes() []*shape {
	return []*shape{r.ground, r.net, r.netTip, r.players[court.Left], r.players[court.Right], r.ball}
}

// SetFrameTime sets the elapsed time used to advance animations on the
// next RenderPlayer calls
func (r *EngoRenderer) SetFrameTime(dt float64) {
	r.frameTime = dt
}

// worldToScreen converts court coordinates (origin centre, y up) to engo
// screen coordinates (origin top-left, y down).
func worldToScreen(c court.Court, p physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(p.X + c.HalfWidth),
		Y: float32(c.HalfHeight - p.Y),
	}
}

// screenDegrees converts a counter-clockwise angle in radians to engo's
// clockwise degrees.
func screenDegrees(angle float64) float32 {
	return float32(-angle * 180 / math.Pi)
}

// place sizes s to w x h and centres it on the world point center
func (r *EngoRenderer) place(s *shape, center physics.Vector2D, w, h float64) {
	s.Width = float32(w)
	s.Height = float32(h)
	s.SetCenter(worldToScreen(r.court, center))
}

// fitTexture scales a texture drawable to w x h pixels
func fitTexture(s *shape, w, h float64) {
	tw, th := s.Drawable.Width(), s.Drawable.Height()
	if tw <= 0 || th <= 0 {
		return
	}
	s.Scale = engo.Point{X: float32(w) / tw, Y: float32(h) / th}
}

// Clear implements entity.Renderer. Engo redraws every entity each frame,
// so there is nothing to clear.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer.
func (r *EngoRenderer) Present() {}

// RenderCourt implements entity.Renderer. The ground is drawn from the
// players' feet down to the bottom edge.
func (r *EngoRenderer) RenderCourt(c court.Court) {
	r.court = c

	groundTop := c.GroundY - c.PlayerHeight/2
	groundHeight := math.Max(groundTop+c.HalfHeight, 0)
	r.place(r.ground, physics.Vector2D{X: 0, Y: groundTop - groundHeight/2}, c.Width, groundHeight)

	netHeight := math.Max(c.NetTopY-groundTop, 0)
	r.place(r.net, physics.Vector2D{X: 0, Y: groundTop + netHeight/2}, c.NetVisualWidth, netHeight)
	r.place(r.netTip, physics.Vector2D{X: 0, Y: c.NetTopY}, c.NetVisualWidth, c.NetVisualWidth)
}

// RenderPlayer implements entity.Renderer
func (r *EngoRenderer) RenderPlayer(player *entity.Player) {
	s := r.players[player.Side]
	pose := r.animators[player.Side].Advance(r.frameTime, player.State)

	s.Drawable = r.assets.PlayerSprite(player.Side, pose, player.Facing)
	fitTexture(s, r.court.PlayerWidth, r.court.PlayerHeight)
	r.place(s, player.Position, r.court.PlayerWidth, r.court.PlayerHeight)
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball *entity.Ball) {
	size := 2 * r.court.BallRadius
	fitTexture(r.ball, size, size)
	r.ball.Rotation = screenDegrees(ball.Rotation)
	r.place(r.ball, ball.Position, size, size)
}

// RenderScore implements entity.Renderer
func (r *EngoRenderer) RenderScore(player1, player2, winner int) {
	r.hud.Update(r.court, player1, player2, winner)
}

// Remove drops every entity from the render system
func (r *EngoRenderer) Remove() {
	if r.renderSystem == nil {
		return
	}
	for _, s := range r.shapes() {
		r.renderSystem.Remove(s.BasicEntity)
	}
	r.hud.RemoveFrom(r.renderSystem)
}
