package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed *
var assetsFS embed.FS

// LoadImage loads an image by assets-relative path, preferring ./assets on
// disk over the embedded copy.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile reads an asset by assets-relative path, preferring ./assets on disk.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// Placeholder returns a solid w x h image for sprites without artwork.
func Placeholder(w, h int, clr color.Color) *ebiten.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}

// FontSource loads a TrueType font. An empty path selects Go Regular.
func FontSource(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" {
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parse font %s: %w", path, err)
	}
	return src, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
