// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/logging"
)

// NullRenderer is an entity.Renderer that only writes debug log entries.
// It backs headless runs.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
}

// NewNullRenderer creates a NullRenderer with the default logger
func NewNullRenderer() *NullRenderer {
	return NewNullRendererWithLogger(logging.NewLogger())
}

// NewNullRendererWithLogger creates a NullRenderer writing to logger
func NewNullRendererWithLogger(logger *logging.Logger) *NullRenderer {
	return &NullRenderer{logger: logger, ctx: context.Background()}
}

// WithContext returns a copy that logs with ctx, typically carrying a match ID
func (d *NullRenderer) WithContext(ctx context.Context) *NullRenderer {
	return &NullRenderer{logger: d.logger, ctx: ctx}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(d.ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(d.ctx, "Present called")
}

// RenderCourt implements entity.Renderer.
func (d *NullRenderer) RenderCourt(c court.Court) {
	d.logger.Debug(d.ctx, "RenderCourt called",
		"width", c.Width,
		"height", c.Height,
		"ground_y", c.GroundY,
		"net_top_y", c.NetTopY,
	)
}

// RenderPlayer implements entity.Renderer.
func (d *NullRenderer) RenderPlayer(player *entity.Player) {
	if player == nil {
		d.logger.Debug(d.ctx, "RenderPlayer called with nil player")
		return
	}
	d.logger.Debug(d.ctx, "RenderPlayer called",
		"player", player.Side.Number(),
		"x", player.Position.X,
		"y", player.Position.Y,
		"state", player.State.String(),
		"facing", player.Facing.String(),
	)
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball *entity.Ball) {
	if ball == nil {
		d.logger.Debug(d.ctx, "RenderBall called with nil ball")
		return
	}
	d.logger.Debug(d.ctx, "RenderBall called",
		"x", ball.Position.X,
		"y", ball.Position.Y,
		"rotation", ball.Rotation,
	)
}

// RenderScore implements entity.Renderer.
func (d *NullRenderer) RenderScore(player1, player2, winner int) {
	d.logger.Debug(d.ctx, "RenderScore called",
		"player1_score", player1,
		"player2_score", player2,
		"winner", winner,
	)
}
