// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-dinoball/pkg/court"
	"github.com/opd-ai/go-dinoball/pkg/entity"
)

const (
	fontURL      = "goregular.ttf"
	fontSize     = 48
	ballTexture  = 32
	stripeHalf   = 3
	paletteEmpty = 0
)

// Sprite palettes. Index 0 is transparent, 1 the body, 2 the detail.
var (
	playerPalettes = [2][]color.Color{
		{color.Transparent, color.RGBA{83, 168, 72, 255}, color.RGBA{20, 40, 20, 255}},
		{color.Transparent, color.RGBA{230, 126, 34, 255}, color.RGBA{60, 30, 10, 255}},
	}
	ballPalette = []color.Color{color.Transparent, color.RGBA{250, 250, 245, 255}, color.RGBA{214, 48, 49, 255}}
)

// Dinosaur poses facing right. '#' is body, 'o' the eye.
var posePatterns = [poseCount][]string{
	PoseStand: {
		"........######..",
		".......##o#####.",
		".......########.",
		".......########.",
		".......####.....",
		".......######...",
		"#.....#####.....",
		"#....#######....",
		"##..#########...",
		"##########.#....",
		".#########......",
		"..#######.......",
		"...######.......",
		"....##.##.......",
		"....#...#.......",
		"....##..##......",
	},
	PoseRun1: {
		"........######..",
		".......##o#####.",
		".......########.",
		".......########.",
		".......####.....",
		".......######...",
		"#.....#####.....",
		"#....#######....",
		"##..#########...",
		"##########.#....",
		".#########......",
		"..#######.......",
		"...######.......",
		"....##.##.......",
		"....#....##.....",
		"....##..........",
	},
	PoseRun2: {
		"........######..",
		".......##o#####.",
		".......########.",
		".......########.",
		".......####.....",
		".......######...",
		"#.....#####.....",
		"#....#######....",
		"##..#########...",
		"##########.#....",
		".#########......",
		"..#######.......",
		"...######.......",
		"....##.##.......",
		"...##...#.......",
		"........##......",
	},
	PoseJump: {
		"........######..",
		".......##o#####.",
		".......########.",
		".......########.",
		".......####.....",
		".......######...",
		"#.....#####.....",
		"#....#######....",
		"##..#########...",
		"##########.#....",
		".#########......",
		"..#######.......",
		"...######.......",
		"....######......",
		"................",
		"................",
	},
}

// AssetManager builds the textures and font used by the frontend
type AssetManager struct {
	font *common.Font

	// players[side][pose][facing]
	players [2][poseCount][2]common.Drawable
	ball    common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// PreloadFont registers the embedded Go Regular font with engo's file
// loader. It must run in Scene.Preload.
func (am *AssetManager) PreloadFont() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("loading %s: %w", fontURL, err)
	}
	return nil
}

// LoadAssets creates the font and every sprite texture. It needs a live GL
// context, so it runs in Scene.Setup.
func (am *AssetManager) LoadAssets() error {
	font := &common.Font{URL: fontURL, FG: color.White, Size: fontSize}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("creating HUD font: %w", err)
	}
	am.font = font

	for _, side := range court.Sides {
		for pose := Pose(0); pose < poseCount; pose++ {
			pattern := parsePattern(posePatterns[pose])
			am.players[side][pose][entity.FacingRight] = am.createSprite(pattern, playerPalettes[side])
			am.players[side][pose][entity.FacingLeft] = am.createSprite(mirror(pattern), playerPalettes[side])
		}
	}
	am.ball = am.createSprite(ballPattern(ballTexture), ballPalette)
	return nil
}

// Font returns the HUD font, or nil before LoadAssets succeeded
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// PlayerSprite returns the texture for a player pose
func (am *AssetManager) PlayerSprite(side court.Side, pose Pose, facing entity.Facing) common.Drawable {
	return am.players[side][pose][facing]
}

// BallSprite returns the striped ball texture
func (am *AssetManager) BallSprite() common.Drawable {
	return am.ball
}

// parsePattern converts sprite rows into palette indices
func parsePattern(rows []string) [][]int {
	pattern := make([][]int, len(rows))
	for y, row := range rows {
		pattern[y] = make([]int, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				pattern[y][x] = 1
			case 'o':
				pattern[y][x] = 2
			default:
				pattern[y][x] = paletteEmpty
			}
		}
	}
	return pattern
}

// mirror flips a pattern horizontally
func mirror(pattern [][]int) [][]int {
	out := make([][]int, len(pattern))
	for y, row := range pattern {
		out[y] = make([]int, len(row))
		for x, v := range row {
			out[y][len(row)-1-x] = v
		}
	}
	return out
}

// ballPattern draws a disc of the given diameter with a vertical stripe so
// rotation is visible.
func ballPattern(size int) [][]int {
	pattern := make([][]int, size)
	c := float64(size-1) / 2
	r2 := float64(size*size) / 4
	for y := range pattern {
		pattern[y] = make([]int, size)
		for x := range pattern[y] {
			dx, dy := float64(x)-c, float64(y)-c
			switch {
			case dx*dx+dy*dy > r2:
				pattern[y][x] = paletteEmpty
			case dx >= -stripeHalf && dx <= stripeHalf:
				pattern[y][x] = 2
			default:
				pattern[y][x] = 1
			}
		}
	}
	return pattern
}

// createSprite creates a texture from a pattern
func (am *AssetManager) createSprite(pattern [][]int, palette []color.Color) common.Drawable {
	return am.convertToEngoTexture(patternImage(pattern, palette))
}

// patternImage paints a pattern onto a transparent image. Indices outside
// the palette are left transparent.
func patternImage(pattern [][]int, palette []color.Color) *image.NRGBA {
	height := len(pattern)
	width := 0
	if height > 0 {
		width = len(pattern[0])
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	for y, row := range pattern {
		for x, idx := range row {
			if x >= width || idx <= paletteEmpty || idx >= len(palette) {
				continue
			}
			img.Set(x, y, palette[idx])
		}
	}
	return img
}

// convertToEngoTexture uploads an image as an Engo texture
func (am *AssetManager) convertToEngoTexture(img *image.NRGBA) common.Drawable {
	return common.NewTextureSingle(common.NewImageObject(img))
}
