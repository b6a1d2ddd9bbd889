// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/entity"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

const clearScreen = "\033[H\033[2J"

// TerminalRenderer draws the court as ASCII art. The whole court is scaled
// to fit cols x rows character cells.
type TerminalRenderer struct {
	cols   int
	rows   int
	buffer [][]rune
	court  court.Court
	status string

	out         io.Writer
	clearScreen bool
}

// Rows and columns taken by the status line and border around the court
const (
	TerminalChromeCols = 2
	TerminalChromeRows = 3
)

// FitTerminal returns the court size in cells that fits a terminal of
// width x height characters once the status line and border are drawn.
func FitTerminal(width, height int) (cols, rows int) {
	return max(width-TerminalChromeCols, 1), max(height-TerminalChromeRows, 1)
}

// NewTerminalRenderer creates a renderer of cols x rows cells writing to stdout
func NewTerminalRenderer(cols, rows int) *TerminalRenderer {
	cols = max(cols, 1)
	rows = max(rows, 1)
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, cols)
	}

	r := &TerminalRenderer{
		cols:        cols,
		rows:        rows,
		buffer:      buffer,
		out:         os.Stdout,
		clearScreen: true,
	}
	r.Clear()
	return r
}

// SetOutput redirects Present. ansi controls the clear-screen prefix.
func (r *TerminalRenderer) SetOutput(w io.Writer, ansi bool) {
	r.out = w
	r.clearScreen = ansi
}

// worldToScreen maps court coordinates (origin centre, y up) to a cell.
// ok is false for points outside the court or a degenerate court.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (x, y int, ok bool) {
	if r.court.Width <= 0 || r.court.Height <= 0 {
		return 0, 0, false
	}
	fx := (pos.X + r.court.HalfWidth) / r.court.Width * float64(r.cols)
	fy := (r.court.HalfHeight - pos.Y) / r.court.Height * float64(r.rows)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < r.cols && y >= 0 && y < r.rows
}

func (r *TerminalRenderer) set(pos physics.Vector2D, ch rune) {
	if x, y, ok := r.worldToScreen(pos); ok {
		r.buffer[y][x] = ch
	}
}

// fill paints every cell whose centre lies inside rect
func (r *TerminalRenderer) fill(rect physics.Rect, ch rune) {
	cellW := r.court.Width / float64(r.cols)
	cellH := r.court.Height / float64(r.rows)
	lo, hi := rect.Min(), rect.Max()
	for y := 0; y < r.rows; y++ {
		cy := r.court.HalfHeight - (float64(y)+0.5)*cellH
		if cy < lo.Y || cy > hi.Y {
			continue
		}
		for x := 0; x < r.cols; x++ {
			cx := (float64(x)+0.5)*cellW - r.court.HalfWidth
			if cx >= lo.X && cx <= hi.X {
				r.buffer[y][x] = ch
			}
		}
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.status = ""
}

// RenderCourt implements entity.Renderer. It draws the ground line and the net.
func (r *TerminalRenderer) RenderCourt(c court.Court) {
	r.court = c
	if _, groundRow, ok := r.worldToScreen(physics.Vector2D{Y: c.GroundY}); ok {
		for x := range r.buffer[groundRow] {
			r.buffer[groundRow][x] = '='
		}
	}
	r.fill(physics.Rect{
		Center: physics.Vector2D{X: 0, Y: (c.GroundY + c.NetTopY) / 2},
		Width:  math.Max(c.NetVisualWidth, c.Width/float64(r.cols)),
		Height: c.NetTopY - c.GroundY,
	}, '|')
	r.set(physics.Vector2D{Y: c.NetTopY}, '^')
}

// RenderPlayer implements entity.Renderer. The body is filled with the
// player number and the head cell shows the facing direction.
func (r *TerminalRenderer) RenderPlayer(player *entity.Player) {
	r.fill(player.Bounds(r.court), rune('0'+player.Side.Number()))

	head := player.Position
	head.Y += r.court.PlayerHeight/2 - r.court.Height/float64(r.rows)/2
	if player.Facing == entity.FacingLeft {
		head.X -= r.court.HalfPlayerWidth() / 2
		r.set(head, '<')
	} else {
		head.X += r.court.HalfPlayerWidth() / 2
		r.set(head, '>')
	}
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball *entity.Ball) {
	r.fill(ball.Bounds(r.court), 'o')
	r.set(ball.Position, 'O')
}

// RenderScore implements entity.Renderer
func (r *TerminalRenderer) RenderScore(player1, player2, winner int) {
	r.status = fmt.Sprintf("P1 %s : %s P2", engine.FormatScore(player1), engine.FormatScore(player2))
	if winner != engine.NoWinner {
		r.status += fmt.Sprintf("   PLAYER %d WINS! (R to restart)", winner)
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	if r.clearScreen {
		fmt.Fprint(r.out, clearScreen)
	}
	fmt.Fprint(r.out, r.String())
}

// Draw renders a frame snapshot
func (r *TerminalRenderer) Draw(f engine.Frame) {
	r.Clear()
	r.RenderCourt(f.Court)
	for _, pf := range f.Players {
		r.RenderPlayer(&entity.Player{
			BaseEntity: entity.BaseEntity{Position: pf.Position, Velocity: pf.Velocity},
			Side:       pf.Side,
			State:      pf.State,
			Facing:     pf.Facing,
		})
	}
	ball := entity.NewBall(f.Ball.Position)
	ball.Rotation = f.Ball.Rotation
	r.RenderBall(ball)
	r.RenderScore(f.Player1Score, f.Player2Score, f.Winner)
	r.Present()
}

// String returns the current buffer with the status line and a border
func (r *TerminalRenderer) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.cols) + "+\n"

	sb.WriteString(r.status)
	sb.WriteByte('\n')
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
