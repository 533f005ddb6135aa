package cubevision

import "github.com/golang/geo/r3"

// Face identifies one of the six cube faces. The numeric order is the
// capture order used by the scanning flow and by notation strings:
// U, R, F, D, L, B.
type Face int

const (
	FaceU Face = 0 // Up
	FaceR Face = 1 // Right
	FaceF Face = 2 // Front
	FaceD Face = 3 // Down
	FaceL Face = 4 // Left
	FaceB Face = 5 // Back
)

// Faces lists all faces in capture order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Axis returns the outward unit vector of the face.
// The coordinate frame is right-handed: +X toward R, +Y toward U,
// +Z toward F.
func (f Face) Axis() r3.Vector {
	switch f {
	case FaceU:
		return r3.Vector{X: 0, Y: 1, Z: 0}
	case FaceR:
		return r3.Vector{X: 1, Y: 0, Z: 0}
	case FaceF:
		return r3.Vector{X: 0, Y: 0, Z: 1}
	case FaceD:
		return r3.Vector{X: 0, Y: -1, Z: 0}
	case FaceL:
		return r3.Vector{X: -1, Y: 0, Z: 0}
	case FaceB:
		return r3.Vector{X: 0, Y: 0, Z: -1}
	default:
		return r3.Vector{}
	}
}

// Opposite returns the face on the far side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return f
	}
}

// ParseFace parses a face from its single-letter notation form.
func ParseFace(s string) (Face, bool) {
	switch s {
	case "U", "u":
		return FaceU, true
	case "R", "r":
		return FaceR, true
	case "F", "f":
		return FaceF, true
	case "D", "d":
		return FaceD, true
	case "L", "l":
		return FaceL, true
	case "B", "b":
		return FaceB, true
	default:
		return FaceU, false
	}
}

// faceFromAxis maps an outward unit vector back to a face. The vector
// components must already be rounded to -1, 0 or 1.
func faceFromAxis(v r3.Vector) (Face, bool) {
	switch {
	case v.X == 1 && v.Y == 0 && v.Z == 0:
		return FaceR, true
	case v.X == -1 && v.Y == 0 && v.Z == 0:
		return FaceL, true
	case v.Y == 1 && v.X == 0 && v.Z == 0:
		return FaceU, true
	case v.Y == -1 && v.X == 0 && v.Z == 0:
		return FaceD, true
	case v.Z == 1 && v.X == 0 && v.Y == 0:
		return FaceF, true
	case v.Z == -1 && v.X == 0 && v.Y == 0:
		return FaceB, true
	default:
		return FaceU, false
	}
}
