// Package scene describes one rendered frame as a back-to-front draw list
// that every front end can paint.
package scene

import "math"

// AssetID names one of the sprites the game draws.
type AssetID string

// The five sprites of the game screen. The values double as the file names
// (without extension) the window front end looks for.
const (
	AssetBackground AssetID = "background-night"
	AssetBird       AssetID = "redbird-upflap"
	AssetPipeBottom AssetID = "pipe-red"
	AssetPipeTop    AssetID = "pipe-red-rotated"
	AssetBase       AssetID = "base"
)

// Assets lists every asset in draw order.
var Assets = []AssetID{AssetBackground, AssetPipeTop, AssetPipeBottom, AssetBase, AssetBird}

// Fit says how an image fills its destination box.
type Fit int

const (
	FitFill  Fit = iota // Stretch to the box
	FitCover            // Keep aspect ratio, cover the box, clip the overflow
)

// Sprite is one image draw in viewport pixels.
type Sprite struct {
	Asset      AssetID
	X, Y, W, H float64
	Fit        Fit
	Rotation   float64 // Radians, clockwise, about (OriginX, OriginY)
	OriginX    float64
	OriginY    float64
}

// Text is a line of HUD text anchored at its top-left corner.
type Text struct {
	X, Y  float64
	Size  float64
	Value string
}

// Scene is a complete frame.
type Scene struct {
	Width, Height float64
	Sprites       []Sprite
	Texts         []Text
	GameOver      bool
}

// Provider resolves asset names to drawable handles.
type Provider[T any] interface {
	Sprite(id AssetID) (T, bool)
}

// CoverFit returns the uniform scale and the offsets that make an image of
// size srcW x srcH cover a dstW x dstH box, centred on both axes. Offsets are
// zero or negative: the part of the image that falls outside the box.
func CoverFit(srcW, srcH, dstW, dstH float64) (scale, offX, offY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = math.Max(dstW/srcW, dstH/srcH)
	offX = (dstW - srcW*scale) / 2
	offY = (dstH - srcH*scale) / 2
	return scale, offX, offY
}

// CoverCrop returns the source rectangle of a srcW x srcH image that stays
// visible when the image covers a dstW x dstH box.
func CoverCrop(srcW, srcH, dstW, dstH float64) (x, y, w, h float64) {
	scale, offX, offY := CoverFit(srcW, srcH, dstW, dstH)
	return -offX / scale, -offY / scale, dstW / scale, dstH / scale
}
