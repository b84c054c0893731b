package obj

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/milk9111/shadowmario/levels"
	"github.com/milk9111/shadowmario/prefabs"
	"github.com/stretchr/testify/require"
)

func testSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec("", "en")
	require.NoError(t, err)
	return spec
}

func rec(kind levels.Kind, x, y int) levels.Record {
	return levels.Record{Kind: kind, X: x, Y: y}
}

func buildTestLevel(t *testing.T, v Variant, records ...levels.Record) *Level {
	t.Helper()
	l, err := BuildLevel(v, records, testSpec(t), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return l
}

func step(l *Level, keys Keys, frames int) {
	for i := 0; i < frames; i++ {
		l.Update(keys)
	}
}

type drawnSprite struct {
	image string
	x, y  float64
}

type recordingCanvas struct {
	sprites []drawnSprite
	texts   []string
}

func (c *recordingCanvas) DrawSprite(s Sprite, x, y float64) {
	c.sprites = append(c.sprites, drawnSprite{s.Image, x, y})
}

func (c *recordingCanvas) DrawText(str string, x, y, size float64, clr color.Color) {
	c.texts = append(c.texts, fmt.Sprintf("%s@%.0f,%.0f", str, x, y))
}

func (c *recordingCanvas) MeasureText(str string, size float64) float64 {
	return float64(len(str)) * size / 2
}

func (c *recordingCanvas) Size() (int, int) {
	return 1024, 768
}
