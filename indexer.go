package cubevision

import "fmt"

// Facelet indexing follows the standard unfolded net with U above F,
// D below F, L and R beside F, and B beyond R:
//
//	      U
//	    L F R B
//	      D
//
// Each face reads row-major as drawn in that net:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// so U's bottom row (6,7,8) touches F's top row (0,1,2), R's left
// column (0,3,6) touches F's right column, and B's left column touches
// R's right column.

// FaceletIndex returns the facelet index (0..8) that the cubie at coord
// occupies on the given face. The cubie must actually be on that face:
// its coordinate component along the face axis must point outward,
// otherwise ErrNotOnFace is returned.
//
// One explicit formula per face keeps the net convention auditable.
func FaceletIndex(coord GridCoord, face Face) (int, error) {
	if !coord.OnFace(face) {
		return 0, fmt.Errorf("%w: cubie %s does not touch %s", ErrNotOnFace, coord, face)
	}

	var row, col int
	switch face {
	case FaceU:
		row = coord.Z + 1
		col = coord.X + 1
	case FaceR:
		row = 1 - coord.Y
		col = 1 - coord.Z
	case FaceF:
		row = 1 - coord.Y
		col = coord.X + 1
	case FaceD:
		row = 1 - coord.Z
		col = coord.X + 1
	case FaceL:
		row = 1 - coord.Y
		col = coord.Z + 1
	case FaceB:
		row = 1 - coord.Y
		col = 1 - coord.X
	default:
		return 0, fmt.Errorf("%w: unknown face %d", ErrNotOnFace, int(face))
	}

	return row*3 + col, nil
}

// CoordForFacelet is the inverse of FaceletIndex: it returns the lattice
// coordinate of the cubie showing the given facelet of a face.
func CoordForFacelet(face Face, index int) (GridCoord, error) {
	if index < 0 || index > 8 {
		return GridCoord{}, fmt.Errorf("%w: facelet index %d out of range", ErrNotOnFace, index)
	}

	row, col := index/3, index%3
	switch face {
	case FaceU:
		return GridCoord{X: col - 1, Y: 1, Z: row - 1}, nil
	case FaceR:
		return GridCoord{X: 1, Y: 1 - row, Z: 1 - col}, nil
	case FaceF:
		return GridCoord{X: col - 1, Y: 1 - row, Z: 1}, nil
	case FaceD:
		return GridCoord{X: col - 1, Y: -1, Z: 1 - row}, nil
	case FaceL:
		return GridCoord{X: -1, Y: 1 - row, Z: col - 1}, nil
	case FaceB:
		return GridCoord{X: 1 - col, Y: 1 - row, Z: -1}, nil
	default:
		return GridCoord{}, fmt.Errorf("%w: unknown face %d", ErrNotOnFace, int(face))
	}
}
