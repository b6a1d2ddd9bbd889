// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/engine"
	"github.com/opd-ai/go-dinoball/pkg/physics"
)

// HUD shows both scores and the end-of-match banner
type HUD struct {
	font *common.Font

	scores [2]*shape
	banner *shape
	text   [3]string
}

// NewHUD creates the score and banner text entities. A nil font hides the HUD.
func NewHUD(font *common.Font) *HUD {
	hud := &HUD{font: font}
	for i := range hud.scores {
		hud.scores[i] = newShape(common.Text{Font: font}, color.White, zHUD)
	}
	hud.banner = newShape(common.Text{Font: font}, color.White, zHUD)
	for _, s := range hud.shapes() {
		s.Hidden = true
	}
	return hud
}

func (hud *HUD) shapes() []*shape {
	return []*shape{hud.scores[court.Left], hud.scores[court.Right], hud.banner}
}

// AddTo registers the HUD entities with a render system
func (hud *HUD) AddTo(rs *common.RenderSystem) {
	for _, s := range hud.shapes() {
		addShape(rs, s)
	}
}

// RemoveFrom unregisters the HUD entities
func (hud *HUD) RemoveFrom(rs *common.RenderSystem) {
	for _, s := range hud.shapes() {
		rs.Remove(s.BasicEntity)
	}
}

// Update refreshes the text for the current scores. Scores sit over the
// middle of each half; the banner is centred and hidden while the match runs.
func (hud *HUD) Update(c court.Court, player1, player2, winner int) {
	if hud.font == nil {
		return
	}

	text := [3]string{engine.FormatScore(player1), engine.FormatScore(player2), WinnerBanner(winner)}
	top := c.HalfHeight - float64(fontSize)

	positions := [3]physics.Vector2D{
		{X: -c.HalfWidth / 2, Y: top},
		{X: c.HalfWidth / 2, Y: top},
		{X: 0, Y: c.HalfHeight / 3},
	}

	for i, s := range hud.shapes() {
		if text[i] != hud.text[i] {
			s.Drawable = common.Text{Font: hud.font, Text: text[i]}
			hud.text[i] = text[i]
		}
		s.Hidden = text[i] == ""
		w, h, _ := hud.font.TextDimensions(text[i])
		s.Width, s.Height = float32(w), float32(h)
		s.SetCenter(worldToScreen(c, positions[i]))
	}
}

// WinnerBanner returns the end-of-match message, or "" while undecided
func WinnerBanner(winner int) string {
	if winner == engine.NoWinner {
		return ""
	}
	return fmt.Sprintf("Player %d Wins!  R / Enter to play again", winner)
}
