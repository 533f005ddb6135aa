package cubevision

import (
	"fmt"
	"strings"
)

// FaceColorScheme maps each face to its solved sticker color, indexed
// by Face in capture order U, R, F, D, L, B.
type FaceColorScheme [6]ColorLabel

// WesternScheme is the standard color scheme: white up, red right,
// green front, yellow down, orange left, blue back.
func WesternScheme() FaceColorScheme {
	return FaceColorScheme{White, Red, Green, Yellow, Orange, Blue}
}

// CubeModel is the 27-cubie state of a 3x3 cube. Each cubie carries its
// lattice coordinate and the sticker color facing each outward
// direction. The model is rebuilt wholesale from a completed scan or
// reset to solved; individual moves permute cubies in place.
type CubeModel struct {
	cubies [27]Cubie
}

// NewCubeModel returns a model solved in the Western color scheme.
func NewCubeModel() *CubeModel {
	m := &CubeModel{}
	m.ResetSolved(WesternScheme())
	return m
}

// initCoords puts every cubie back on its home cell at rest.
func (m *CubeModel) initCoords() {
	i := 0
	for z := -1; z <= 1; z++ {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				m.cubies[i].Coord = GridCoord{X: x, Y: y, Z: z}
				m.cubies[i].pos = m.cubies[i].Coord.Vector()
				i++
			}
		}
	}
}

// ResetSolved rebuilds the model as a solved cube in the given scheme.
// All prior sticker data is discarded.
func (m *CubeModel) ResetSolved(scheme FaceColorScheme) {
	m.initCoords()
	for i := range m.cubies {
		c := &m.cubies[i]
		c.clearStickers()
		for _, f := range Faces {
			if c.Coord.OnFace(f) {
				c.stickers[f] = scheme[f]
			}
		}
	}
}

// RebuildFromFacelets replaces the whole model state from six face
// captures in capture order U, R, F, D, L, B. Every square color must
// match one of the six center colors, and the centers must be pairwise
// distinct. On any error the model is left untouched. A tolerance <= 0
// means DefaultRowTolerance.
func (m *CubeModel) RebuildFromFacelets(grids [6]FaceletGrid, tolerance float64) error {
	ordered, err := orderGrids(grids, tolerance)
	if err != nil {
		return err
	}
	if _, err := centerColorMap(ordered); err != nil {
		return err
	}

	m.initCoords()
	for i := range m.cubies {
		c := &m.cubies[i]
		c.clearStickers()
		for _, f := range Faces {
			if !c.Coord.OnFace(f) {
				continue
			}
			idx, err := FaceletIndex(c.Coord, f)
			if err != nil {
				return err
			}
			c.stickers[f] = ordered[f][idx].Color
		}
	}
	return nil
}

// Apply applies one or more moves to the model, discretely and without
// animation. Each move fully rotates its layer and snaps back onto the
// lattice.
func (m *CubeModel) Apply(moves ...Move) {
	for _, mv := range moves {
		for _, c := range m.layer(mv) {
			c.rotate(mv.Face, mv.Angle())
		}
	}
}

// layer returns the cubies a move selects: the face layer, plus the
// adjacent middle slice for wide moves.
func (m *CubeModel) layer(mv Move) []*Cubie {
	sel := make([]*Cubie, 0, 18)
	for i := range m.cubies {
		c := &m.cubies[i]
		d := axisComponent(c.Coord, mv.Face)
		if d == 1 || (mv.Wide && d == 0) {
			sel = append(sel, c)
		}
	}
	return sel
}

// axisComponent is the signed coordinate component along the face's
// outward axis: +1 on the face layer, 0 in the middle slice, -1 on the
// opposite layer.
func axisComponent(g GridCoord, f Face) int {
	switch f {
	case FaceU:
		return g.Y
	case FaceR:
		return g.X
	case FaceF:
		return g.Z
	case FaceD:
		return -g.Y
	case FaceL:
		return -g.X
	case FaceB:
		return -g.Z
	default:
		return 0
	}
}

// CubieAt returns the cubie currently occupying the given cell, or nil
// if the coordinate is off the lattice.
func (m *CubeModel) CubieAt(coord GridCoord) *Cubie {
	for i := range m.cubies {
		if m.cubies[i].Coord == coord {
			return &m.cubies[i]
		}
	}
	return nil
}

// Cubies returns pointers to all 27 cubies for read access.
func (m *CubeModel) Cubies() []*Cubie {
	out := make([]*Cubie, len(m.cubies))
	for i := range m.cubies {
		out[i] = &m.cubies[i]
	}
	return out
}

// FaceletColor returns the color currently showing at a face's facelet
// index (0..8 in the canonical row-major order).
func (m *CubeModel) FaceletColor(face Face, index int) (ColorLabel, error) {
	coord, err := CoordForFacelet(face, index)
	if err != nil {
		return ColorNone, err
	}
	c := m.CubieAt(coord)
	if c == nil {
		return ColorNone, fmt.Errorf("%w: no cubie at %s", ErrInvalidState, coord)
	}
	return c.Sticker(face), nil
}

// FaceColors returns all nine facelet colors of a face in canonical
// order.
func (m *CubeModel) FaceColors(face Face) [9]ColorLabel {
	var out [9]ColorLabel
	for i := range out {
		color, err := m.FaceletColor(face, i)
		if err != nil {
			color = ColorNone
		}
		out[i] = color
	}
	return out
}

// Notation derives the 54-character facelet string for the current
// state. Face identity follows the center stickers, so the letters stay
// correct after wide moves re-orient the centers.
func (m *CubeModel) Notation() (string, error) {
	toFace := make(map[ColorLabel]Face, 6)
	for _, f := range Faces {
		center := m.CubieAt(roundCoord(f.Axis()))
		if center == nil {
			return "", fmt.Errorf("%w: missing %s center", ErrInvalidState, f)
		}
		color := center.Sticker(f)
		if color == ColorNone {
			return "", fmt.Errorf("%w: %s center has no sticker", ErrInvalidState, f)
		}
		if dup, ok := toFace[color]; ok {
			return "", fmt.Errorf("%w: %s on both %s and %s centers", ErrDuplicateCenter, color.Name(), dup, f)
		}
		toFace[color] = f
	}

	var sb strings.Builder
	sb.Grow(54)
	for _, f := range Faces {
		for i := 0; i < 9; i++ {
			color, err := m.FaceletColor(f, i)
			if err != nil {
				return "", err
			}
			letter, ok := toFace[color]
			if !ok {
				return "", fmt.Errorf("%w: %s at %s facelet %d", ErrUnmappedColor, color.Name(), f, i)
			}
			sb.WriteString(letter.String())
		}
	}
	return sb.String(), nil
}

// IsSolved reports whether every face shows a single color.
func (m *CubeModel) IsSolved() bool {
	for _, f := range Faces {
		colors := m.FaceColors(f)
		for _, c := range colors {
			if c != colors[4] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the model.
func (m *CubeModel) Clone() *CubeModel {
	clone := *m
	return &clone
}

// String renders the unfolded net with one letter per facelet:
//
//	      U
//	    L F R B
//	      D
func (m *CubeModel) String() string {
	var sb strings.Builder

	u := m.FaceColors(FaceU)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(u[row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	strip := [4][9]ColorLabel{
		m.FaceColors(FaceL),
		m.FaceColors(FaceF),
		m.FaceColors(FaceR),
		m.FaceColors(FaceB),
	}
	for row := 0; row < 3; row++ {
		for _, face := range strip {
			for col := 0; col < 3; col++ {
				sb.WriteString(face[row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	d := m.FaceColors(FaceD)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(d[row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
