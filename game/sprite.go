package game

import "math"

// Sprite identifies a creature's artwork for size queries.
type Sprite uint8

const (
	SpriteSeal Sprite = iota
	SpriteShark
	SpriteOrca
	SpriteCrab
)

func (s Sprite) String() string {
	switch s {
	case SpriteSeal:
		return "seal"
	case SpriteShark:
		return "shark"
	case SpriteOrca:
		return "orca"
	case SpriteCrab:
		return "crab"
	}
	return "unknown"
}

// Size is a logical width and height in world units.
type Size struct {
	W, H float64
}

// Sizer answers the rendering collaborator's visual size of a sprite at a scale factor.
// The scale already includes DeviceScale. Hit boxes are derived from it.
type Sizer interface {
	Size(s Sprite, scale float64) Size
}

// FrameSizer sizes sprites from their source frame dimensions, rounded to whole units.
type FrameSizer struct{}

// frame dimensions of the source artwork, in world units at scale 1
var frames = [...]Size{
	SpriteSeal:  {W: 32, H: 32},
	SpriteShark: {W: 148, H: 141},
	SpriteOrca:  {W: 148, H: 58},
	SpriteCrab:  {W: 64, H: 64},
}

func (FrameSizer) Size(s Sprite, scale float64) Size {
	if int(s) >= len(frames) {
		return Size{}
	}
	f := frames[s]
	return Size{W: math.Round(f.W * scale), H: math.Round(f.H * scale)}
}
