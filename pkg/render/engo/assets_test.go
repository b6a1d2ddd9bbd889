// pkg/render/engo/assets_test.go
package engo

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()

	require.NotNil(t, am)
	assert.Nil(t, am.Font(), "font is only created by LoadAssets")
	assert.Nil(t, am.BallSprite())
}

func TestPosePatterns_Rectangular(t *testing.T) {
	for pose, rows := range posePatterns {
		require.NotEmpty(t, rows, "pose %d", pose)
		for i, row := range rows {
			assert.Len(t, row, len(rows[0]), "pose %d row %d", pose, i)
		}
	}
}

func TestPosePatterns_RunFramesDiffer(t *testing.T) {
	assert.NotEqual(t, posePatterns[PoseRun1], posePatterns[PoseRun2])
	assert.NotEqual(t, posePatterns[PoseStand], posePatterns[PoseJump])
}

func TestParsePattern(t *testing.T) {
	got := parsePattern([]string{"#o.", ".x#"})

	assert.Equal(t, [][]int{{1, 2, 0}, {0, 0, 1}}, got)
}

func TestMirror(t *testing.T) {
	pattern := [][]int{
		{1, 0, 0},
		{2, 1, 0},
	}

	mirrored := mirror(pattern)

	assert.Equal(t, [][]int{{0, 0, 1}, {0, 1, 2}}, mirrored)
	assert.Equal(t, pattern, mirror(mirrored))
	assert.Equal(t, [][]int{{1, 0, 0}, {2, 1, 0}}, pattern, "input must not be modified")
}

func TestBallPattern(t *testing.T) {
	const size = 32
	p := ballPattern(size)

	require.Len(t, p, size)
	for _, row := range p {
		require.Len(t, row, size)
	}

	assert.Equal(t, paletteEmpty, p[0][0])
	assert.Equal(t, paletteEmpty, p[size-1][size-1])
	assert.Equal(t, 2, p[size/2][size/2], "stripe through the centre")
	assert.Equal(t, 1, p[size/2][4], "body left of the stripe")

	// Horizontal symmetry keeps the ball balanced when rotating
	assert.Equal(t, p, mirror(p))
}

func TestPatternImage(t *testing.T) {
	palette := []color.Color{color.Transparent, color.RGBA{255, 0, 0, 255}}
	pattern := [][]int{
		{0, 1},
		{1, 7},
	}

	img := patternImage(pattern, palette)

	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 1))
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(1, 1).A, "out-of-palette index stays transparent")
}

func TestPatternImage_Empty(t *testing.T) {
	img := patternImage(nil, ballPalette)

	assert.True(t, img.Bounds().Empty())
}
