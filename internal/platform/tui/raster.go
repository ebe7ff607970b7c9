package tui

import (
	"math"

	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/scene"
)

// tiltThreshold is the bird rotation, in radians, past which the tilted
// glyph is drawn.
const tiltThreshold = 0.15

// Glyph is the terminal stand-in for a sprite.
type Glyph struct {
	Rune  rune
	Color core.Color
	Up    rune // Used when rotated nose-up; zero keeps Rune
	Down  rune // Used when rotated nose-down; zero keeps Rune
}

// tilted picks the rune for a rotation.
func (g Glyph) tilted(rotation float64) rune {
	switch {
	case rotation <= -tiltThreshold && g.Up != 0:
		return g.Up
	case rotation >= tiltThreshold && g.Down != 0:
		return g.Down
	}
	return g.Rune
}

// GlyphSet maps assets to glyphs.
type GlyphSet map[scene.AssetID]Glyph

// Sprite returns the glyph for an asset.
func (gs GlyphSet) Sprite(id scene.AssetID) (Glyph, bool) {
	g, ok := gs[id]
	return g, ok
}

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() GlyphSet {
	return GlyphSet{
		scene.AssetBackground: {Rune: ' ', Color: core.ColorDefault},
		scene.AssetPipeTop:    {Rune: '█', Color: core.ColorRed},
		scene.AssetPipeBottom: {Rune: '█', Color: core.ColorRed},
		scene.AssetBase:       {Rune: '▒', Color: core.ColorOrange},
		scene.AssetBird:       {Rune: '>', Color: core.ColorBrightYellow, Up: '/', Down: '\\'},
	}
}

// Rasterize paints a scene onto the screen, scaling the viewport to the
// screen size. Sprites without a glyph are skipped.
func Rasterize(sc scene.Scene, scr *core.Screen, glyphs scene.Provider[Glyph]) {
	scr.Clear()
	if sc.Width <= 0 || sc.Height <= 0 {
		return
	}

	sx := float64(scr.Width()) / sc.Width
	sy := float64(scr.Height()) / sc.Height

	for _, sp := range sc.Sprites {
		g, ok := glyphs.Sprite(sp.Asset)
		if !ok {
			continue
		}
		r := cellRect(sp.X, sp.Y, sp.W, sp.H, sx, sy, scr.Width(), scr.Height())
		scr.FillRect(r, g.tilted(sp.Rotation), g.Color)
	}

	for _, t := range sc.Texts {
		x := int(math.Round(t.X * sx))
		y := int(math.Round(t.Y * sy))
		scr.DrawTextWithColor(x, y, t.Value, core.ColorBrightWhite)
	}
}

// cellRect converts a viewport box to the cells it touches, clipped to the
// screen.
func cellRect(x, y, w, h, sx, sy float64, maxW, maxH int) core.Rect {
	x0 := core.Clamp(int(math.Floor(x*sx)), 0, maxW)
	y0 := core.Clamp(int(math.Floor(y*sy)), 0, maxH)
	x1 := core.Clamp(int(math.Ceil((x+w)*sx)), 0, maxW)
	y1 := core.Clamp(int(math.Ceil((y+h)*sy)), 0, maxH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
