package render

import (
	"github.com/gdamore/tcell/v2"

	"sealdive/game"
)

// glyph is a one-row piece of text art drawn centered on an entity.
type glyph struct {
	left, right string
}

var (
	sealGlyph      = glyph{left: "<(oo)", right: "(oo)>"}
	sealDeadGlyph  = glyph{left: "<(xx)", right: "(xx)>"}
	sharkGlyph     = glyph{left: "<o__/\\__", right: "__/\\__o>"}
	sharkBiteGlyph = glyph{left: "<V__/\\__", right: "__/\\__V>"}
	orcaGlyph      = glyph{left: "<@=====)", right: "(=====@>"}
	orcaBiteGlyph  = glyph{left: "<W=====)", right: "(=====W>"}
	crabGlyph      = glyph{left: "(\\/)", right: "(\\/)"}
)

func (g glyph) text(facingRight bool) string {
	if facingRight {
		return g.right
	}
	return g.left
}

func glyphFor(e game.EntityView, dead bool) glyph {
	switch e.Sprite {
	case game.SpriteSeal:
		if dead {
			return sealDeadGlyph
		}
		return sealGlyph
	case game.SpriteShark:
		if e.Biting {
			return sharkBiteGlyph
		}
		return sharkGlyph
	case game.SpriteOrca:
		if e.Biting {
			return orcaBiteGlyph
		}
		return orcaGlyph
	}
	return crabGlyph
}

var (
	colorSeal  = tcell.NewRGBColor(0xcc, 0xe8, 0xff)
	colorShark = tcell.NewRGBColor(0x8a, 0x9b, 0xa8)
	colorOrca  = tcell.NewRGBColor(0xf0, 0xf0, 0xf0)
	colorBite  = tcell.NewRGBColor(0xff, 0x55, 0x55)
	colorText  = tcell.NewRGBColor(0xff, 0xff, 0xff)
	colorDim   = tcell.NewRGBColor(0x88, 0xcc, 0xee)
	colorGold  = tcell.NewRGBColor(0xff, 0xd0, 0x60)
	colorWeed  = tcell.NewRGBColor(0x2e, 0x8b, 0x57)
	colorWeed2 = tcell.NewRGBColor(0x1f, 0x6b, 0x45)
	colorFoam  = tcell.NewRGBColor(0xa8, 0xd8, 0xf0)
)

var crabColors = [game.CrabVarieties]tcell.Color{
	tcell.NewRGBColor(0xff, 0x66, 0x44),
	tcell.NewRGBColor(0xff, 0x99, 0x33),
	tcell.NewRGBColor(0xdd, 0x44, 0x66),
	tcell.NewRGBColor(0xff, 0xbb, 0x55),
}

var burstPalette = [...]tcell.Color{
	tcell.NewRGBColor(0x7a, 0xbc, 0xd8),
	tcell.NewRGBColor(0x4a, 0x8a, 0xaa),
	tcell.NewRGBColor(0xa8, 0xd8, 0xf0),
	tcell.NewRGBColor(0xcc, 0xe8, 0xff),
	tcell.NewRGBColor(0xff, 0xff, 0xff),
	tcell.NewRGBColor(0x55, 0x99, 0xbb),
	tcell.NewRGBColor(0x88, 0xcc, 0xee),
	tcell.NewRGBColor(0xaa, 0xdd, 0xff),
	tcell.NewRGBColor(0xff, 0xd0, 0xa0),
}

// waterColor shades the background from shallow at row 0 to deep at the last row.
func waterColor(row, rows int) tcell.Color {
	t := 0.0
	if rows > 1 {
		t = float64(row) / float64(rows-1)
	}
	lerp := func(a, b int32) int32 { return a + int32(float64(b-a)*t) }
	return tcell.NewRGBColor(lerp(0x0e, 0x02), lerp(0x4d, 0x12), lerp(0x7a, 0x2e))
}
