package cubevision

import (
	"fmt"
	"math"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees, viewed from outside the face)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single layer turn. Wide moves turn the face layer
// together with the adjacent middle slice.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
	Wide bool // Take the middle slice along
}

// Notation returns the standard notation string for this move.
// Plain moves use uppercase face letters: R, R', R2. Wide moves use the
// lowercase form: r, r', r2.
func (m Move) Notation() string {
	letter := m.Face.String()
	if m.Wide {
		letter = strings.ToLower(letter)
	}
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return letter + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2. Wide stays wide.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// Angle returns the signed rotation angle in radians about the face's
// outward axis. Clockwise viewed from outside the face is a negative
// right-hand-rule rotation about that axis.
func (m Move) Angle() float64 {
	return -float64(m.Turn) * math.Pi / 2
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single move token.
// Uppercase letters are plain moves, lowercase letters are wide moves:
// R, R', R2, r, r', r2. The explicit wide form Rw is also accepted.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face Face
	wide := false
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'r':
		face, wide = FaceR, true
	case 'l':
		face, wide = FaceL, true
	case 'u':
		face, wide = FaceU, true
	case 'd':
		face, wide = FaceD, true
	case 'f':
		face, wide = FaceF, true
	case 'b':
		face, wide = FaceB, true
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	rest := s[1:]
	if strings.HasPrefix(rest, "w") {
		wide = true
		rest = rest[1:]
	}

	turn := CW
	switch rest {
	case "":
	case "'", "`":
		turn = CCW
	case "2":
		turn = Double
	case "2'", "2`":
		turn = Double // A reversed half turn is the same half turn.
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Turn: turn, Wide: wide}, nil
}

// ParseMoves parses a whitespace-separated move sequence.
// Example: "R U r' U2"
// Parsing is atomic: one bad token rejects the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrInvalidNotation, i+1, part)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// merge combines two turns of the same layer into one. The bool is
// false when the turns cancel out entirely.
func merge(a, b Turn) (Turn, bool) {
	combined := int(a) + int(b)
	combined = ((combined+2)%4+4)%4 - 2
	if combined == -2 {
		combined = 2
	}
	if combined == 0 {
		return 0, false
	}
	return Turn(combined), true
}

// CompressMoves rewrites a sequence by merging adjacent turns of the
// same layer and dropping cancellations, including cascades exposed by
// a drop (R U U' R' compresses to nothing).
func CompressMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(out) > 0 {
			top := out[len(out)-1]
			if top.Face == m.Face && top.Wide == m.Wide {
				turn, ok := merge(top.Turn, m.Turn)
				if !ok {
					out = out[:len(out)-1]
					continue
				}
				out[len(out)-1] = Move{Face: m.Face, Turn: turn, Wide: m.Wide}
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
