package cubevision

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/westphae/quaternion"
)

// GridCoord is the discrete position of a cubie in the 3x3x3 lattice.
// Each component is -1, 0 or +1. The frame is right-handed: +X toward
// the R face, +Y toward U, +Z toward F. The center cubie sits at
// (0,0,0).
type GridCoord struct {
	X, Y, Z int
}

func (g GridCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", g.X, g.Y, g.Z)
}

// Vector returns the coordinate as a float vector.
func (g GridCoord) Vector() r3.Vector {
	return r3.Vector{X: float64(g.X), Y: float64(g.Y), Z: float64(g.Z)}
}

// OnFace reports whether the cubie at this coordinate has a sticker
// position on the given face, i.e. whether its component along the
// face's axis points outward.
func (g GridCoord) OnFace(f Face) bool {
	switch f {
	case FaceU:
		return g.Y == 1
	case FaceR:
		return g.X == 1
	case FaceF:
		return g.Z == 1
	case FaceD:
		return g.Y == -1
	case FaceL:
		return g.X == -1
	case FaceB:
		return g.Z == -1
	default:
		return false
	}
}

// roundCoord snaps a rotated position back onto the lattice. Rounding,
// not truncation: quarter-turn results land near +/-1 or 0 with float
// noise on either side.
func roundCoord(v r3.Vector) GridCoord {
	return GridCoord{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}

// rotated returns v rotated by angle radians about the outward axis of
// the face, following the right-hand rule.
func rotated(v r3.Vector, f Face, angle float64) r3.Vector {
	a := f.Axis()
	q := quaternion.FromEuler(angle*a.X, angle*a.Y, angle*a.Z)
	out := q.RotateVec3(quaternion.Vec3{X: v.X, Y: v.Y, Z: v.Z})
	return r3.Vector{X: out.X, Y: out.Y, Z: out.Z}
}

// Cubie is one of the 27 pieces of the cube. Coord is its discrete
// lattice cell after the last completed turn. The sticker colors are
// indexed by the face direction they currently point toward; interior
// directions hold ColorNone.
type Cubie struct {
	Coord    GridCoord
	pos      r3.Vector
	stickers [6]ColorLabel
}

// Sticker returns the color pointing toward the given face direction,
// or ColorNone if that side of the cubie is interior.
func (c *Cubie) Sticker(f Face) ColorLabel {
	if f < 0 || int(f) >= len(c.stickers) {
		return ColorNone
	}
	return c.stickers[f]
}

// Position returns the continuous position of the cubie. During an
// animated turn this sweeps along the rotation arc; at rest it equals
// Coord's vector.
func (c *Cubie) Position() r3.Vector {
	return c.pos
}

// StickerCount returns how many stickers the cubie carries: 0 for the
// hidden center piece, 1 for face centers, 2 for edges, 3 for corners.
func (c *Cubie) StickerCount() int {
	n := 0
	for _, s := range c.stickers {
		if s != ColorNone {
			n++
		}
	}
	return n
}

func (c *Cubie) clearStickers() {
	for i := range c.stickers {
		c.stickers[i] = ColorNone
	}
}

// rotate applies a full turn to the cubie's discrete state: the
// coordinate and every sticker direction rotate about the face axis and
// snap back onto the lattice.
func (c *Cubie) rotate(f Face, angle float64) {
	c.Coord = roundCoord(rotated(c.Coord.Vector(), f, angle))
	c.pos = c.Coord.Vector()

	var moved [6]ColorLabel
	for i := range moved {
		moved[i] = ColorNone
	}
	for dir := range c.stickers {
		color := c.stickers[dir]
		if color == ColorNone {
			continue
		}
		turned := roundCoord(rotated(Face(dir).Axis(), f, angle))
		target, ok := faceFromAxis(turned.Vector())
		if !ok {
			// A quarter-turn multiple always maps an axis onto an axis.
			continue
		}
		moved[target] = color
	}
	c.stickers = moved
}
