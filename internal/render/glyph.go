package render

import (
	"strings"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/object"
)

// glyph is a bitmap stretched over a sprite's rectangle; '#' is set.
type glyph []string

var (
	glyphHighA = glyph{
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		"..#..#..",
		".#.##.#.",
		"#.#..#.#",
	}
	glyphHighB = glyph{
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		".#.##.#.",
		"#......#",
		".#....#.",
	}
	glyphMidA = glyph{
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	}
	glyphMidB = glyph{
		"..#.....#..",
		"#..#...#..#",
		"#.#######.#",
		"###.###.###",
		"###########",
		".#########.",
		"..#.....#..",
		".#.......#.",
	}
	glyphLowA = glyph{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"...##..##...",
		"..##.##.##..",
		"##........##",
	}
	glyphLowB = glyph{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"..###..###..",
		".##..##..##.",
		"..##....##..",
	}
	glyphExplosion = glyph{
		"#...#...#",
		".#..#..#.",
		"..#...#..",
		"##.....##",
		"..#...#..",
		".#..#..#.",
		"#...#...#",
	}
	glyphShip = glyph{
		".....#.....",
		"....###....",
		"....###....",
		".#########.",
		"###########",
		"###########",
		"###########",
	}
	glyphLife = glyph{
		"..............",
		"......##......",
		"...########...",
		"..##########..",
		"..##########..",
		"..............",
	}
	glyphBonus = glyph{
		".....######.....",
		"...##########...",
		"..############..",
		".##.##.##.##.##.",
		"################",
		"..###..##..###..",
		"...#........#...",
	}
	glyphBarrier = glyph{
		"..#######..",
		".#########.",
		"###########",
		"###########",
		"###########",
		"###.....###",
		"##.......##",
		"##.......##",
	}
)

const pointsPrefix = "points:"

// glyphFor picks the bitmap and color of a sprite from its kind and tag.
func glyphFor(sp Sprite) (glyph, draw.Color) {
	phaseB := sp.Tag == object.TagPhaseB
	switch sp.ID.Kind {
	case object.KindBarrier:
		return glyphBarrier, draw.ColorGreen
	case object.KindShip:
		if sp.Tag == object.TagDying {
			return glyphExplosion, draw.ColorRed
		}
		return glyphShip, draw.ColorGreen
	case object.KindLife:
		return glyphLife, draw.ColorCyan
	case object.KindBonus:
		return glyphBonus, draw.ColorRed
	case object.KindEnemyHigh, object.KindEnemyMid, object.KindEnemyLow:
		if sp.Tag == object.TagDead {
			return glyphExplosion, draw.ColorYellow
		}
		return enemyGlyph(sp.ID.Kind, phaseB), draw.ColorWhite
	}
	return nil, draw.ColorNone
}

func enemyGlyph(k object.Kind, phaseB bool) glyph {
	switch k {
	case object.KindEnemyHigh:
		if phaseB {
			return glyphHighB
		}
		return glyphHighA
	case object.KindEnemyMid:
		if phaseB {
			return glyphMidB
		}
		return glyphMidA
	default:
		if phaseB {
			return glyphLowB
		}
		return glyphLowA
	}
}

// Paint draws sprites, in the given order, onto the canvas.
func Paint(c *draw.Canvas, sprites []Sprite) {
	for _, sp := range sprites {
		switch sp.ID.Kind {
		case object.KindDamage:
			c.ClearRect(sp.X, sp.Y, sp.W, sp.H)
		case object.KindMissile:
			c.FillRect(sp.X, sp.Y, sp.W, sp.H, draw.ColorWhite)
		case object.KindBomb:
			c.FillRect(sp.X, sp.Y, sp.W, sp.H, draw.ColorYellow)
		default:
			if strings.HasPrefix(sp.Tag, pointsPrefix) {
				continue
			}
			g, col := glyphFor(sp)
			paintGlyph(c, sp, g, col)
		}
	}
}

func paintGlyph(c *draw.Canvas, sp Sprite, g glyph, col draw.Color) {
	rows := len(g)
	if rows == 0 {
		return
	}
	cols := len(g[0])
	for r, line := range g {
		y0 := sp.Y + r*sp.H/rows
		y1 := sp.Y + (r+1)*sp.H/rows
		for i := 0; i < len(line); i++ {
			if line[i] != '#' {
				continue
			}
			x0 := sp.X + i*sp.W/cols
			x1 := sp.X + (i+1)*sp.W/cols
			c.FillRect(x0, y0, x1-x0, y1-y0, col)
		}
	}
}

// Label is text anchored at a field position.
type Label struct {
	X, Y int
	Text string
}

// Labels returns the text shown in place of sprites, such as the points
// awarded by a destroyed bonus target.
func Labels(sprites []Sprite) []Label {
	var out []Label
	for _, sp := range sprites {
		if points, ok := strings.CutPrefix(sp.Tag, pointsPrefix); ok {
			out = append(out, Label{X: sp.X + sp.W/2, Y: sp.Y + sp.H/2, Text: points})
		}
	}
	return out
}
