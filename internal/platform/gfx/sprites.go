package gfx

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/skyflap/internal/scene"
)

// Sprites holds one image per asset.
type Sprites map[scene.AssetID]*ebiten.Image

// Sprite returns the image for an asset.
func (s Sprites) Sprite(id scene.AssetID) (*ebiten.Image, bool) {
	img, ok := s[id]
	return img, ok
}

// placeholder describes the filled image used when an asset file is absent.
type placeholder struct {
	w, h int
	fill color.RGBA
}

// placeholders use the pixel sizes of the classic sprite sheet.
var placeholders = map[scene.AssetID]placeholder{
	scene.AssetBackground: {288, 512, color.RGBA{0x0b, 0x1d, 0x3a, 0xff}},
	scene.AssetBird:       {34, 24, color.RGBA{0xf8, 0xd0, 0x30, 0xff}},
	scene.AssetPipeBottom: {52, 320, color.RGBA{0xc0, 0x30, 0x28, 0xff}},
	scene.AssetPipeTop:    {52, 320, color.RGBA{0xa8, 0x28, 0x20, 0xff}},
	scene.AssetBase:       {336, 112, color.RGBA{0xde, 0xd8, 0x95, 0xff}},
}

// LoadSprites loads <dir>/<asset>.png for every asset. Missing files, or an
// empty dir, fall back to placeholders; a file that fails to decode is an
// error.
func LoadSprites(dir string) (Sprites, int, error) {
	sprites := make(Sprites, len(scene.Assets))
	loaded := 0

	for _, id := range scene.Assets {
		if dir != "" {
			path := filepath.Join(dir, string(id)+".png")
			img, _, err := ebitenutil.NewImageFromFile(path)
			switch {
			case err == nil:
				sprites[id] = img
				loaded++
				continue
			case !errors.Is(err, fs.ErrNotExist):
				return nil, 0, fmt.Errorf("load sprite %s: %w", path, err)
			}
		}
		sprites[id] = newPlaceholder(id)
	}
	return sprites, loaded, nil
}

func newPlaceholder(id scene.AssetID) *ebiten.Image {
	p := placeholders[id]
	img := ebiten.NewImage(p.w, p.h)
	img.Fill(p.fill)
	return img
}

// assetsDirExists reports whether dir names a readable directory.
func assetsDirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
