// pkg/render/terminal_test.go
package render

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/go-dinoball/pkg/config"
	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/logging"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

func TestNewTerminalRenderer_CreatesValidRenderer_WithCorrectDimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{name: "standard terminal", cols: 80, rows: 24, wantCols: 80, wantRows: 24},
		{name: "wide terminal", cols: 120, rows: 40, wantCols: 120, wantRows: 40},
		{name: "degenerate size", cols: 0, rows: -3, wantCols: 1, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(tt.cols, tt.rows)

			if r.cols != tt.wantCols || r.rows != tt.wantRows {
				t.Errorf("got %dx%d, want %dx%d", r.cols, r.rows, tt.wantCols, tt.wantRows)
			}
			if len(r.buffer) != tt.wantRows {
				t.Fatalf("expected buffer height %d, got %d", tt.wantRows, len(r.buffer))
			}
			for i, row := range r.buffer {
				if len(row) != tt.wantCols {
					t.Errorf("row %d: expected width %d, got %d", i, tt.wantCols, len(row))
				}
				for _, ch := range row {
					if ch != ' ' {
						t.Fatalf("buffer not cleared, found %q", ch)
					}
				}
			}
		})
	}
}

func TestTerminalRenderer_WorldToScreen(t *testing.T) {
	r := NewTerminalRenderer(100, 40)
	r.court = court.Resolve(config.DefaultConfig(), 1000, 800)

	tests := []struct {
		name string
		pos  physics.Vector2D
		x, y int
		ok   bool
	}{
		{name: "top left corner", pos: physics.Vector2D{X: -500, Y: 400}, x: 0, y: 0, ok: true},
		{name: "centre", pos: physics.Vector2D{X: 0, Y: 0}, x: 50, y: 20, ok: true},
		{name: "bottom right inside", pos: physics.Vector2D{X: 499, Y: -399}, x: 99, y: 39, ok: true},
		{name: "right edge outside", pos: physics.Vector2D{X: 500, Y: 0}, x: 100, y: 20, ok: false},
		{name: "above ceiling", pos: physics.Vector2D{X: 0, Y: 420}, x: 50, y: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := r.worldToScreen(tt.pos)
			if x != tt.x || y != tt.y || ok != tt.ok {
				t.Errorf("worldToScreen(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.pos, x, y, ok, tt.x, tt.y, tt.ok)
			}
		})
	}
}

func TestTerminalRenderer_WorldToScreen_DegenerateCourt(t *testing.T) {
	r := NewTerminalRenderer(10, 10)

	if _, _, ok := r.worldToScreen(physics.Vector2D{}); ok {
		t.Error("expected no cell for a zero-size court")
	}

	// Drawing on a degenerate court must not panic
	r.RenderCourt(court.Court{})
	r.RenderScore(0, 0, 0)
	_ = r.String()
}

func TestTerminalRenderer_DrawFrame(t *testing.T) {
	cfg := config.DefaultConfig()
	g := engine.NewGame(cfg)
	g.SetLogger(logging.NewLoggerWithWriter(io.Discard, slog.LevelError))
	f := g.Step(1.0/60.0, engine.Input{}, engine.Viewport{Width: 1000, Height: 800})

	var buf bytes.Buffer
	r := NewTerminalRenderer(100, 40)
	r.SetOutput(&buf, false)
	r.Draw(f)
	out := buf.String()

	if !strings.HasPrefix(out, "P1 00 : 00 P2\n") {
		t.Errorf("expected score line first, got %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "|"+strings.Repeat("=", 100)+"|") {
		t.Error("expected a full ground line")
	}
	for _, want := range []string{"1", "2", "O", "^", ">", "<"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, clearScreen) {
		t.Error("clear-screen escape written although disabled")
	}
	if lines := strings.Count(out, "\n"); lines != 40+3 {
		t.Errorf("expected %d lines, got %d", 43, lines)
	}
}

func TestTerminalRenderer_PresentClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(4, 2)
	r.SetOutput(&buf, true)

	r.Present()

	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Errorf("expected clear-screen prefix, got %q", buf.String())
	}
}

func TestTerminalRenderer_RenderScore(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  int
		winner  int
		want    string
		wantWin bool
	}{
		{name: "in play", p1: 3, p2: 4, want: "P1 03 : 04 P2"},
		{name: "player one won", p1: 5, p2: 2, winner: 1, want: "P1 05 : 02 P2", wantWin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(10, 5)
			r.RenderScore(tt.p1, tt.p2, tt.winner)

			if !strings.HasPrefix(r.status, tt.want) {
				t.Errorf("status = %q, want prefix %q", r.status, tt.want)
			}
			if got := strings.Contains(r.status, "WINS"); got != tt.wantWin {
				t.Errorf("winner text present = %v, want %v", got, tt.wantWin)
			}
		})
	}
}

func TestTerminalRenderer_ClearResetsStatus(t *testing.T) {
	r := NewTerminalRenderer(10, 5)
	r.RenderScore(1, 2, 0)
	r.Clear()

	if r.status != "" {
		t.Errorf("expected empty status after Clear, got %q", r.status)
	}
}

func TestFitTerminal(t *testing.T) {
	tests := []struct {
		name               string
		width, height      int
		wantCols, wantRows int
	}{
		{"standard_terminal", 80, 24, 78, 21},
		{"wide_terminal", 200, 50, 198, 47},
		{"too_small", 1, 2, 1, 1},
		{"unknown_size", 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := FitTerminal(tt.width, tt.height)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("FitTerminal(%d, %d) = %d x %d, want %d x %d",
					tt.width, tt.height, cols, rows, tt.wantCols, tt.wantRows)
			}

			r := NewTerminalRenderer(cols, rows)
			lines := strings.Split(strings.TrimSuffix(r.String(), "\n"), "\n")
			if len(lines) != rows+TerminalChromeRows {
				t.Errorf("rendered %d lines, want %d", len(lines), rows+TerminalChromeRows)
			}
		})
	}
}
