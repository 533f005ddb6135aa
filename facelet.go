package cubevision

import (
	"fmt"
	"sort"
)

// DefaultRowTolerance is the default vertical distance in pixels within
// which two sampled squares are considered part of the same row.
const DefaultRowTolerance = 10.0

// FaceletSquare is one sampled sticker square from a face capture: the
// classified color plus the sample position in image pixels.
type FaceletSquare struct {
	Color ColorLabel
	X     float64
	Y     float64
}

// FaceletGrid holds the nine sampled squares of one captured face in
// whatever order the capture produced them.
type FaceletGrid []FaceletSquare

// Canonical returns the squares in canonical row-major order: rows
// grouped by pixel Y within the given tolerance and ordered top to
// bottom, squares within a row ordered left to right. The result does
// not depend on the input order. A tolerance <= 0 means
// DefaultRowTolerance.
//
// The grid must contain exactly nine squares grouping into three rows
// of three; anything else returns ErrMalformedScan.
func (g FaceletGrid) Canonical(tolerance float64) ([]FaceletSquare, error) {
	if tolerance <= 0 {
		tolerance = DefaultRowTolerance
	}
	if len(g) != 9 {
		return nil, fmt.Errorf("%w: got %d squares, want 9", ErrMalformedScan, len(g))
	}

	squares := make([]FaceletSquare, len(g))
	copy(squares, g)

	// Total order on (Y, X, Color) keeps the result deterministic for
	// any input permutation.
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Y != squares[j].Y {
			return squares[i].Y < squares[j].Y
		}
		if squares[i].X != squares[j].X {
			return squares[i].X < squares[j].X
		}
		return squares[i].Color < squares[j].Color
	})

	// Group into rows. A square joins the current row while its Y is
	// within tolerance of the row's first square.
	var rows [][]FaceletSquare
	for _, sq := range squares {
		if len(rows) == 0 || sq.Y-rows[len(rows)-1][0].Y > tolerance {
			rows = append(rows, []FaceletSquare{sq})
			continue
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], sq)
	}

	if len(rows) != 3 {
		return nil, fmt.Errorf("%w: squares group into %d rows, want 3", ErrMalformedScan, len(rows))
	}

	ordered := make([]FaceletSquare, 0, 9)
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d squares, want 3", ErrMalformedScan, i, len(row))
		}
		sort.Slice(row, func(a, b int) bool {
			if row[a].X != row[b].X {
				return row[a].X < row[b].X
			}
			if row[a].Y != row[b].Y {
				return row[a].Y < row[b].Y
			}
			return row[a].Color < row[b].Color
		})
		ordered = append(ordered, row...)
	}

	return ordered, nil
}

// Center returns the color of the center square (canonical index 4).
func (g FaceletGrid) Center(tolerance float64) (ColorLabel, error) {
	ordered, err := g.Canonical(tolerance)
	if err != nil {
		return ColorNone, err
	}
	return ordered[4].Color, nil
}
