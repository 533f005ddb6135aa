package analysis

import (
	"testing"

	"github.com/SeamusWaldron/cubevision"
)

func mustParse(t *testing.T, s string) []cubevision.Move {
	t.Helper()
	moves, err := cubevision.ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves(%q) failed: %v", s, err)
	}
	return moves
}

func TestSummarize(t *testing.T) {
	s := Summarize(mustParse(t, "R U R' U' R2 r"))

	if s.Moves != 6 {
		t.Errorf("moves: got %d, want 6", s.Moves)
	}
	if s.QuarterTurns != 5 || s.HalfTurns != 1 {
		t.Errorf("turn split: got %d quarter / %d half", s.QuarterTurns, s.HalfTurns)
	}
	if s.WideMoves != 1 {
		t.Errorf("wide moves: got %d, want 1", s.WideMoves)
	}
	if s.QTM != 7 {
		t.Errorf("qtm: got %d, want 7", s.QTM)
	}
	if s.FaceCounts["R"] != 4 || s.FaceCounts["U"] != 2 {
		t.Errorf("face counts: got %v", s.FaceCounts)
	}
	if s.MostUsedFace != "R" {
		t.Errorf("most used face: got %s", s.MostUsedFace)
	}
	if s.CompressedMoves != 6 || s.Efficiency != 1.0 {
		t.Errorf("compression: got %d moves, efficiency %v", s.CompressedMoves, s.Efficiency)
	}
}

func TestSummarizeWastefulSequence(t *testing.T) {
	s := Summarize(mustParse(t, "R R U U'"))

	if s.CompressedMoves != 1 {
		t.Errorf("compressed: got %d, want 1 (R2)", s.CompressedMoves)
	}
	if s.Efficiency != 0.25 {
		t.Errorf("efficiency: got %v, want 0.25", s.Efficiency)
	}
}

func TestSummarizeNetFaceTurns(t *testing.T) {
	// R nets three quarter turns (R R2), U cancels out, F nets one.
	s := Summarize(mustParse(t, "R U R2 F U'"))

	if got := s.NetFaceTurns["R"]; got != 3 {
		t.Errorf("net R: got %d, want 3", got)
	}
	if got := s.NetFaceTurns["F"]; got != 1 {
		t.Errorf("net F: got %d, want 1", got)
	}
	if _, ok := s.NetFaceTurns["U"]; ok {
		t.Error("U cancels out and should be absent")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Moves != 0 || s.Efficiency != 0 || s.MostUsedFace != "" {
		t.Errorf("empty sequence summary: %+v", s)
	}
}
