package obj

import (
	"fmt"
	"image/color"

	"github.com/milk9111/shadowmario/prefabs"
)

// Sprite names an image plus the size and color used when the image is missing.
type Sprite struct {
	Image  string
	Width  int
	Height int
	Color  color.Color
}

// NewSprite converts a sprite spec.
func NewSprite(spec prefabs.SpriteSpec) Sprite {
	return Sprite{
		Image:  spec.Image,
		Width:  spec.Width,
		Height: spec.Height,
		Color:  spec.Color.Or(color.NRGBA{R: 0xff, B: 0xff, A: 0xff}),
	}
}

// Canvas is what the game draws onto.
type Canvas interface {
	// DrawSprite draws s centered on (x, y).
	DrawSprite(s Sprite, x, y float64)
	// DrawText draws str with its baseline starting at (x, y).
	DrawText(str string, x, y, size float64, clr color.Color)
	// MeasureText returns the rendered width of str.
	MeasureText(str string, size float64) float64
	// Size returns the window size.
	Size() (int, int)
}

// Label is a positioned piece of text, optionally followed by a value.
type Label struct {
	Text     string
	X, Y     float64
	Size     float64
	Centered bool
	Color    color.Color
}

// NewLabel builds a label from its layout spec and message text.
func NewLabel(spec prefabs.LabelSpec, text string) Label {
	return Label{
		Text:     text,
		X:        spec.X,
		Y:        spec.Y,
		Size:     spec.Size,
		Centered: spec.Centered,
		Color:    spec.Color.Or(color.White),
	}
}

func (l Label) Draw(c Canvas) {
	l.draw(c, l.Text)
}

// DrawValue draws the label text followed by v.
func (l Label) DrawValue(c Canvas, v any) {
	l.draw(c, fmt.Sprintf("%s%v", l.Text, v))
}

func (l Label) draw(c Canvas, s string) {
	x := l.X
	if l.Centered {
		w, _ := c.Size()
		x = float64(w)/2 - c.MeasureText(s, l.Size)/2
	}
	c.DrawText(s, x, l.Y, l.Size, l.Color)
}
