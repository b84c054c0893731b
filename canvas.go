package main

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/shadowmario/assets"
	"github.com/milk9111/shadowmario/obj"
)

// ebitenCanvas draws the game onto the current ebiten frame. Images and font
// faces are cached across frames.
type ebitenCanvas struct {
	screen        *ebiten.Image
	width, height int

	images  map[string]*ebiten.Image
	fontSrc *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace

	placeholderLevel log.Level
}

func newEbitenCanvas(width, height int, font string) (*ebitenCanvas, error) {
	src, err := assets.FontSource(font)
	if err != nil {
		return nil, err
	}
	return &ebitenCanvas{
		width:   width,
		height:  height,
		images:  make(map[string]*ebiten.Image),
		fontSrc: src,
		faces:   make(map[float64]*text.GoTextFace),

		placeholderLevel: log.WarnLevel,
	}, nil
}

// placeholderLogLevel reports missing artwork quietly for the built-in config,
// which ships without images.
func placeholderLogLevel(customConfig string) log.Level {
	if customConfig == "" {
		return log.DebugLevel
	}
	return log.WarnLevel
}

func (c *ebitenCanvas) begin(screen *ebiten.Image) {
	c.screen = screen
}

func (c *ebitenCanvas) DrawSprite(s obj.Sprite, x, y float64) {
	img := c.image(s)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	c.screen.DrawImage(img, op)
}

// image loads s.Image once. Missing artwork is replaced by a solid block of
// the sprite's size and color.
func (c *ebitenCanvas) image(s obj.Sprite) *ebiten.Image {
	if img, ok := c.images[s.Image]; ok {
		return img
	}
	img, err := assets.LoadImage(s.Image)
	if err != nil {
		c.logPlaceholder(s.Image, err)
		img = assets.Placeholder(s.Width, s.Height, s.Color)
	}
	c.images[s.Image] = img
	return img
}

func (c *ebitenCanvas) logPlaceholder(name string, err error) {
	log.Log(c.placeholderLevel, "using placeholder image", "image", name, "err", err)
}

func (c *ebitenCanvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.fontSrc, Size: size}
	c.faces[size] = f
	return f
}

// DrawText draws str with its baseline at y.
func (c *ebitenCanvas) DrawText(str string, x, y, size float64, clr color.Color) {
	f := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, str, f, op)
}

func (c *ebitenCanvas) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, c.face(size), 0)
	return w
}

func (c *ebitenCanvas) Size() (int, int) {
	return c.width, c.height
}
