package cubevision

import (
	"errors"
	"strings"
	"testing"
)

// solvedScan returns six solid captures in the Western scheme's capture
// order: white, red, green, yellow, orange, blue.
func solvedScan() [6]FaceletGrid {
	scheme := WesternScheme()
	var grids [6]FaceletGrid
	for i, f := range Faces {
		grids[i] = solidGrid(scheme[f])
	}
	return grids
}

func TestToNotationSolved(t *testing.T) {
	got, err := ToNotation(solvedScan())
	if err != nil {
		t.Fatalf("ToNotation failed: %v", err)
	}

	want := "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if got != SolvedNotation() {
		t.Errorf("SolvedNotation disagrees: %s", SolvedNotation())
	}
}

func TestToNotationSwappedStickers(t *testing.T) {
	// One green square on the up face, one white square on the front
	// face: the letters must follow the center mapping, not the capture
	// slot.
	grids := solvedScan()

	u := [9]ColorLabel{White, White, Green, White, White, White, White, White, White}
	f := [9]ColorLabel{Green, Green, Green, Green, Green, Green, White, Green, Green}
	grids[FaceU] = testGrid(u)
	grids[FaceF] = testGrid(f)

	got, err := ToNotation(grids)
	if err != nil {
		t.Fatalf("ToNotation failed: %v", err)
	}

	want := "UUFUUUUUU" + "RRRRRRRRR" + "FFFFFFUFF" + "DDDDDDDDD" + "LLLLLLLLL" + "BBBBBBBBB"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestToNotationIgnoresSquareOrder(t *testing.T) {
	grids := solvedScan()
	want, err := ToNotation(grids)
	if err != nil {
		t.Fatalf("ToNotation failed: %v", err)
	}

	// Reverse the squares of every capture.
	for i := range grids {
		reversed := make(FaceletGrid, len(grids[i]))
		for j, sq := range grids[i] {
			reversed[len(reversed)-1-j] = sq
		}
		grids[i] = reversed
	}

	got, err := ToNotation(grids)
	if err != nil {
		t.Fatalf("ToNotation failed on reversed grids: %v", err)
	}
	if got != want {
		t.Errorf("square order changed the notation: %s vs %s", got, want)
	}
}

func TestToNotationDuplicateCenter(t *testing.T) {
	grids := solvedScan()
	grids[FaceB] = solidGrid(White) // same center as the U capture

	_, err := ToNotation(grids)
	if !errors.Is(err, ErrDuplicateCenter) {
		t.Errorf("expected ErrDuplicateCenter, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "white") {
		t.Errorf("error should name the color: %v", err)
	}
}

func TestToNotationUnmappedColor(t *testing.T) {
	// A square the classifier could not label never matches a center.
	grids := solvedScan()
	colors := [9]ColorLabel{Green, Green, Green, Green, Green, Green, Green, ColorNone, Green}
	grids[FaceF] = testGrid(colors)

	_, err := ToNotation(grids)
	if !errors.Is(err, ErrUnmappedColor) {
		t.Errorf("expected ErrUnmappedColor, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "F") {
		t.Errorf("error should name the face: %v", err)
	}
}

func TestToNotationMalformedCapture(t *testing.T) {
	grids := solvedScan()
	grids[FaceD] = grids[FaceD][:8]

	_, err := ToNotation(grids)
	if !errors.Is(err, ErrMalformedScan) {
		t.Errorf("expected ErrMalformedScan, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "D") {
		t.Errorf("error should name the capture: %v", err)
	}
}

func TestValidateNotation(t *testing.T) {
	if err := ValidateNotation(SolvedNotation()); err != nil {
		t.Errorf("solved string should validate: %v", err)
	}

	cases := []struct {
		name string
		s    string
	}{
		{"short", "UUU"},
		{"bad letter", strings.Replace(SolvedNotation(), "U", "X", 1)},
		{"lowercase", strings.Replace(SolvedNotation(), "U", "u", 1)},
		{"wrong counts", strings.Replace(SolvedNotation(), "R", "U", 1)},
	}
	for _, tc := range cases {
		if err := ValidateNotation(tc.s); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	// Centers out of order: swap the U and R block centers.
	b := []byte(SolvedNotation())
	b[4], b[13] = 'R', 'U'
	if err := ValidateNotation(string(b)); err == nil {
		t.Error("swapped centers should not validate")
	}
}

func TestModelFromNotation(t *testing.T) {
	m, err := ModelFromNotation(SolvedNotation())
	if err != nil {
		t.Fatalf("ModelFromNotation failed: %v", err)
	}
	if !m.IsSolved() {
		t.Error("solved string should build a solved model")
	}

	// Round trip through a scrambled state.
	scrambled := NewCubeModel()
	scrambled.Apply(R, U, FPrime, D2, LPrime, B)
	s1, err := scrambled.Notation()
	if err != nil {
		t.Fatalf("Notation failed: %v", err)
	}

	rebuilt, err := ModelFromNotation(s1)
	if err != nil {
		t.Fatalf("ModelFromNotation failed on %s: %v", s1, err)
	}
	s2, err := rebuilt.Notation()
	if err != nil {
		t.Fatalf("Notation failed after rebuild: %v", err)
	}
	if s1 != s2 {
		t.Errorf("round trip changed the state:\n%s\n%s", s1, s2)
	}

	if _, err := ModelFromNotation("not a cube"); err == nil {
		t.Error("expected error for malformed string")
	}
}
