package cubevision

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type stubSolver struct {
	moves []Move
	err   error
	calls int
}

func (s *stubSolver) Solve(notation string) ([]Move, error) {
	s.calls++
	return s.moves, s.err
}

func TestSolveModel(t *testing.T) {
	m := NewCubeModel()
	m.Apply(U, R, UPrime, RPrime)

	want := []Move{R, U, RPrime, UPrime}
	solver := &stubSolver{moves: want}

	got, err := SolveModel(solver, m)
	if err != nil {
		t.Fatalf("SolveModel failed: %v", err)
	}
	if FormatMoves(got) != FormatMoves(want) {
		t.Errorf("moves: got %s, want %s", FormatMoves(got), FormatMoves(want))
	}
	if solver.calls != 1 {
		t.Errorf("solver called %d times", solver.calls)
	}

	// The returned sequence really solves the state.
	m.Apply(got...)
	if !m.IsSolved() {
		t.Error("solver output did not solve the cube")
	}
}

func TestSolveModelSurfacesSolverError(t *testing.T) {
	solver := &stubSolver{err: fmt.Errorf("%w: corner twist", ErrUnsolvable)}

	_, err := SolveModel(solver, NewCubeModel())
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not find a solution") {
		t.Errorf("error should say no solution was found: %v", err)
	}
}

func TestSolveModelValidatesFirst(t *testing.T) {
	// A capture with a misread square: the up face carries a tenth red
	// sticker, so the letter counts are off.
	grids := solvedScan()
	colors := [9]ColorLabel{White, Red, White, White, White, White, White, White, White}
	grids[FaceU] = testGrid(colors)

	m := NewCubeModel()
	if err := m.RebuildFromFacelets(grids, DefaultRowTolerance); err != nil {
		t.Fatalf("RebuildFromFacelets failed: %v", err)
	}

	solver := &stubSolver{}
	if _, err := SolveModel(solver, m); err == nil {
		t.Fatal("expected validation error")
	}
	if solver.calls != 0 {
		t.Error("solver must not see an invalid notation string")
	}
}
