package cubevision

import (
	"fmt"
	"strings"
)

// Converter turns a six-face capture into the 54-character facelet
// notation string. The zero value converts with DefaultRowTolerance.
type Converter struct {
	// RowTolerance is the vertical pixel tolerance used when ordering
	// each face's squares. Zero means DefaultRowTolerance.
	RowTolerance float64
}

// ToNotation converts six face captures, taken in capture order
// U, R, F, D, L, B, into the 54-character facelet string. Face identity
// is inferred from center colors: the center of the first capture
// defines which color reads as U, and so on. Every other square is
// translated through that mapping.
//
// A capture that does not form a 3x3 grid returns ErrMalformedScan, a
// repeated center color returns ErrDuplicateCenter, and a square whose
// color matches no center returns ErrUnmappedColor.
//
// Captures are trusted to be upright. A face photographed rotated will
// convert without error and yield a misassembled state; only re-scanning
// fixes that.
func (cv Converter) ToNotation(grids [6]FaceletGrid) (string, error) {
	ordered, err := orderGrids(grids, cv.RowTolerance)
	if err != nil {
		return "", err
	}
	toFace, err := centerColorMap(ordered)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(54)
	for i := range ordered {
		face := Face(i)
		for j, sq := range ordered[i] {
			letter, ok := toFace[sq.Color]
			if !ok {
				return "", fmt.Errorf("%w: %s at %s facelet %d", ErrUnmappedColor, sq.Color.Name(), face, j)
			}
			if j == 4 && letter != face {
				// Centers define the mapping, so a mismatch here means
				// the mapping itself is corrupt.
				return "", fmt.Errorf("%w: %s center resolves to %s", ErrInvalidState, face, letter)
			}
			sb.WriteString(letter.String())
		}
	}
	return sb.String(), nil
}

// ToNotation converts six face captures with the default row tolerance.
func ToNotation(grids [6]FaceletGrid) (string, error) {
	return Converter{}.ToNotation(grids)
}

// orderGrids canonically orders all six captures, naming the face on
// failure.
func orderGrids(grids [6]FaceletGrid, tolerance float64) ([6][]FaceletSquare, error) {
	var ordered [6][]FaceletSquare
	for i, g := range grids {
		sq, err := g.Canonical(tolerance)
		if err != nil {
			return ordered, fmt.Errorf("%s capture: %w", Face(i), err)
		}
		ordered[i] = sq
	}
	return ordered, nil
}

// centerColorMap builds the color to face identity mapping from the six
// center squares. Center colors must be pairwise distinct.
func centerColorMap(ordered [6][]FaceletSquare) (map[ColorLabel]Face, error) {
	toFace := make(map[ColorLabel]Face, 6)
	for i := range ordered {
		face := Face(i)
		center := ordered[i][4].Color
		if dup, ok := toFace[center]; ok {
			return nil, fmt.Errorf("%w: %s is the center of both %s and %s", ErrDuplicateCenter, center.Name(), dup, face)
		}
		toFace[center] = face
	}
	return toFace, nil
}

// SolvedNotation returns the facelet string of a solved cube:
// UUUUUUUUURRRRRRRRR... in capture order.
func SolvedNotation() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, f := range Faces {
		sb.WriteString(strings.Repeat(f.String(), 9))
	}
	return sb.String()
}

// ValidateNotation checks the shape of a 54-character facelet string:
// length, allowed letters, nine facelets of each letter, and centers
// fixed at U, R, F, D, L, B in capture order. It does not check
// permutation solvability; an unsolvable but well-formed string passes.
func ValidateNotation(s string) error {
	if len(s) != 54 {
		return fmt.Errorf("%w: length %d, want 54", ErrInvalidState, len(s))
	}

	var counts [6]int
	for i := 0; i < len(s); i++ {
		face, ok := ParseFace(string(s[i]))
		if !ok || s[i] >= 'a' {
			return fmt.Errorf("%w: letter %q at %d", ErrInvalidState, s[i], i)
		}
		counts[face]++
	}
	for _, f := range Faces {
		if counts[f] != 9 {
			return fmt.Errorf("%w: %d %s facelets, want 9", ErrInvalidState, counts[f], f)
		}
	}

	for i, f := range Faces {
		center := string(s[i*9+4])
		if center != f.String() {
			return fmt.Errorf("%w: center of block %d is %s, want %s", ErrInvalidState, i, center, f)
		}
	}
	return nil
}

// ModelFromNotation builds a cube model from a facelet string, coloring
// each letter with the Western scheme color of that face.
func ModelFromNotation(s string) (*CubeModel, error) {
	if err := ValidateNotation(s); err != nil {
		return nil, err
	}

	scheme := WesternScheme()
	m := &CubeModel{}
	m.initCoords()
	for i := range m.cubies {
		m.cubies[i].clearStickers()
	}

	for i, f := range Faces {
		for j := 0; j < 9; j++ {
			letter, _ := ParseFace(string(s[i*9+j]))
			coord, err := CoordForFacelet(f, j)
			if err != nil {
				return nil, err
			}
			m.CubieAt(coord).stickers[f] = scheme[letter]
		}
	}
	return m, nil
}
