package analysis

import (
	"reflect"
	"testing"

	"github.com/SeamusWaldron/cubevision"
)

func TestMinePatternsFindsRepeatedTrigger(t *testing.T) {
	moves := mustParse(t, "R U R' U' D R U R' U' D2 R U R' U'")

	report := MinePatterns(moves, 4, 4, 5)

	patterns := report.ByLength[4]
	if len(patterns) == 0 {
		t.Fatal("no length-4 patterns found")
	}

	top := patterns[0]
	if got := top.Notation(); got != "R U R' U'" {
		t.Errorf("top pattern: got %q, want %q", got, "R U R' U'")
	}
	if top.Count != 3 {
		t.Errorf("count: got %d, want 3", top.Count)
	}
	if want := []int{0, 5, 10}; !reflect.DeepEqual(top.Positions, want) {
		t.Errorf("positions: got %v, want %v", top.Positions, want)
	}
}

func TestMinePatternsIgnoresSingles(t *testing.T) {
	report := MinePatterns(mustParse(t, "R U F D L B"), 2, 4, 5)

	if len(report.ByLength) != 0 {
		t.Errorf("expected no repeats, got %v", report.ByLength)
	}
	if _, ok := report.Top(); ok {
		t.Error("Top() found a pattern in a sequence without repeats")
	}
}

func TestMinePatternsCountsOverlaps(t *testing.T) {
	report := MinePatterns(mustParse(t, "R U R U R U R U"), 2, 2, 5)

	patterns := report.ByLength[2]
	if len(patterns) != 2 {
		t.Fatalf("got %d patterns, want 2: %v", len(patterns), patterns)
	}
	if patterns[0].Notation() != "R U" || patterns[0].Count != 4 {
		t.Errorf("first pattern: got %q x%d, want \"R U\" x4",
			patterns[0].Notation(), patterns[0].Count)
	}
	if patterns[1].Notation() != "U R" || patterns[1].Count != 3 {
		t.Errorf("second pattern: got %q x%d, want \"U R\" x3",
			patterns[1].Notation(), patterns[1].Count)
	}
}

func TestMinePatternsKeepsWideAndDoubleDistinct(t *testing.T) {
	report := MinePatterns(mustParse(t, "r2 D r2 D r2 D"), 2, 2, 5)

	top, ok := report.Top()
	if !ok {
		t.Fatal("no pattern found")
	}
	if top.Notation() != "r2 D" {
		t.Errorf("pattern: got %q, want %q", top.Notation(), "r2 D")
	}
	if top.Count != 3 {
		t.Errorf("count: got %d, want 3", top.Count)
	}
}

func TestMinePatternsTopPrefersLongerOnTies(t *testing.T) {
	// Both the trigger and its two-move prefix occur twice; Top should
	// pick the longer one.
	moves := mustParse(t, "R U R' U' F2 R U R' U'")

	report := MinePatterns(moves, 2, 4, 5)

	top, ok := report.Top()
	if !ok {
		t.Fatal("no pattern found")
	}
	if top.Length != 4 {
		t.Errorf("top length: got %d (%q), want 4", top.Length, top.Notation())
	}
}

func TestMinePatternsShortSequence(t *testing.T) {
	report := MinePatterns(mustParse(t, "R U"), 4, 8, 5)

	if len(report.ByLength) != 0 {
		t.Errorf("expected empty report, got %v", report.ByLength)
	}
}

func TestMoveTokenRoundTrip(t *testing.T) {
	for _, m := range []cubevision.Move{
		cubevision.R, cubevision.RPrime, cubevision.R2,
		cubevision.Wide(cubevision.U), cubevision.Wide(cubevision.BPrime),
		cubevision.Wide(cubevision.D2), cubevision.L, cubevision.FPrime,
	} {
		got := tokenMove(moveToken(m))
		if got != m {
			t.Errorf("round trip of %s: got %s", m.Notation(), got.Notation())
		}
	}
}
