package cubevision

import (
	"errors"
	"testing"
)

// testGrid builds a 3x3 capture with the given colors in row-major
// order, with a little positional jitter to mimic a real capture.
func testGrid(colors [9]ColorLabel) FaceletGrid {
	xs := []float64{22, 61, 98}
	ys := []float64{31, 72, 115}
	jitter := []float64{-3, 0, 4, 1, -2, 3, 0, -4, 2}

	grid := make(FaceletGrid, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			grid = append(grid, FaceletSquare{
				Color: colors[i],
				X:     xs[col],
				Y:     ys[row] + jitter[i],
			})
		}
	}
	return grid
}

func solidGrid(c ColorLabel) FaceletGrid {
	return testGrid([9]ColorLabel{c, c, c, c, c, c, c, c, c})
}

func TestCanonicalOrder(t *testing.T) {
	colors := [9]ColorLabel{White, Yellow, Green, Blue, Red, Orange, White, Green, Blue}
	grid := testGrid(colors)

	ordered, err := grid.Canonical(DefaultRowTolerance)
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}

	for i, sq := range ordered {
		if sq.Color != colors[i] {
			t.Errorf("index %d: got %s, want %s", i, sq.Color, colors[i])
		}
	}
}

func TestCanonicalOrderIgnoresInputOrder(t *testing.T) {
	colors := [9]ColorLabel{White, Yellow, Green, Blue, Red, Orange, White, Green, Blue}
	base := testGrid(colors)

	want, err := base.Canonical(DefaultRowTolerance)
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}

	// Several deterministic permutations of the same squares.
	permutations := [][]int{
		{8, 7, 6, 5, 4, 3, 2, 1, 0},
		{4, 0, 8, 2, 6, 1, 7, 3, 5},
		{1, 3, 5, 7, 0, 2, 4, 6, 8},
	}

	for _, perm := range permutations {
		shuffled := make(FaceletGrid, 9)
		for i, p := range perm {
			shuffled[i] = base[p]
		}

		got, err := shuffled.Canonical(DefaultRowTolerance)
		if err != nil {
			t.Fatalf("Canonical failed for permutation %v: %v", perm, err)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("permutation %v index %d: got %+v, want %+v", perm, i, got[i], want[i])
			}
		}
	}
}

func TestCanonicalRowToleranceBoundary(t *testing.T) {
	// First row spans exactly 10px of vertical drift. With the default
	// tolerance the three squares still count as one row.
	grid := FaceletGrid{
		{Color: White, X: 20, Y: 30},
		{Color: Yellow, X: 60, Y: 35},
		{Color: Green, X: 100, Y: 40},
		{Color: Blue, X: 20, Y: 80},
		{Color: Red, X: 60, Y: 80},
		{Color: Orange, X: 100, Y: 80},
		{Color: White, X: 20, Y: 130},
		{Color: Yellow, X: 60, Y: 130},
		{Color: Green, X: 100, Y: 130},
	}

	ordered, err := grid.Canonical(DefaultRowTolerance)
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if ordered[0].Color != White || ordered[1].Color != Yellow || ordered[2].Color != Green {
		t.Errorf("top row mis-ordered: %v %v %v", ordered[0].Color, ordered[1].Color, ordered[2].Color)
	}

	// A tight tolerance splits the drifting row and the grid no longer
	// forms three rows.
	if _, err := grid.Canonical(4); err == nil {
		t.Error("expected malformed scan with tolerance 4")
	} else if !errors.Is(err, ErrMalformedScan) {
		t.Errorf("expected ErrMalformedScan, got %v", err)
	}
}

func TestCanonicalWrongSquareCount(t *testing.T) {
	grid := testGrid([9]ColorLabel{White, White, White, White, White, White, White, White, White})
	grid = grid[:8]

	_, err := grid.Canonical(DefaultRowTolerance)
	if !errors.Is(err, ErrMalformedScan) {
		t.Errorf("expected ErrMalformedScan for 8 squares, got %v", err)
	}
}

func TestCanonicalUnevenRows(t *testing.T) {
	// Nine squares, but grouped 2-3-4: a skewed capture.
	grid := FaceletGrid{
		{Color: White, X: 20, Y: 10},
		{Color: White, X: 60, Y: 10},
		{Color: White, X: 20, Y: 50},
		{Color: White, X: 60, Y: 50},
		{Color: White, X: 100, Y: 50},
		{Color: White, X: 20, Y: 90},
		{Color: White, X: 60, Y: 90},
		{Color: White, X: 100, Y: 90},
		{Color: White, X: 140, Y: 90},
	}

	_, err := grid.Canonical(DefaultRowTolerance)
	if !errors.Is(err, ErrMalformedScan) {
		t.Errorf("expected ErrMalformedScan for uneven rows, got %v", err)
	}
}

func TestCenter(t *testing.T) {
	colors := [9]ColorLabel{White, Yellow, Green, Blue, Red, Orange, White, Green, Blue}
	grid := testGrid(colors)

	center, err := grid.Center(DefaultRowTolerance)
	if err != nil {
		t.Fatalf("Center failed: %v", err)
	}
	if center != Red {
		t.Errorf("center: got %s, want %s", center, Red)
	}
}
