package cubevision

import (
	"context"
	"errors"
	"testing"
	"time"
)

// instantEngine builds an engine that completes every move discretely.
func instantEngine() *MoveEngine {
	return NewMoveEngine(nil, WithTurnDuration(0))
}

// assertCoordPermutation checks the lattice invariant: the 27 cubie
// coordinates are exactly the 27 cells, no duplicates, no strays.
func assertCoordPermutation(t *testing.T, m *CubeModel) {
	t.Helper()

	seen := make(map[GridCoord]bool, 27)
	for _, c := range m.Cubies() {
		g := c.Coord
		if g.X < -1 || g.X > 1 || g.Y < -1 || g.Y > 1 || g.Z < -1 || g.Z > 1 {
			t.Fatalf("coordinate off the lattice: %s", g)
		}
		if seen[g] {
			t.Fatalf("duplicate coordinate: %s", g)
		}
		seen[g] = true
	}
	if len(seen) != 27 {
		t.Fatalf("expected 27 distinct coordinates, got %d", len(seen))
	}
}

func TestEngineInstantMoves(t *testing.T) {
	e := instantEngine()

	for i := 0; i < 4; i++ {
		if err := e.ApplyMove(R); err != nil {
			t.Fatalf("ApplyMove %d failed: %v", i, err)
		}
		assertCoordPermutation(t, e.Model())
	}

	if !e.Model().IsSolved() {
		t.Error("four quarter turns should restore the cube")
	}
	if e.Cursor() != 3 {
		t.Errorf("cursor: got %d, want 3", e.Cursor())
	}
	if got := FormatMoves(e.History()); got != "R R R R" {
		t.Errorf("history: got %q", got)
	}
	if e.State() != Idle {
		t.Errorf("state: got %s, want idle", e.State())
	}
}

func TestEngineAnimatedTurn(t *testing.T) {
	e := NewMoveEngine(nil, WithTurnDuration(200*time.Millisecond))

	base := time.Now().Add(time.Second)
	e.Tick(base)

	if err := e.ApplyMove(R); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if e.State() != Animating {
		t.Fatalf("state: got %s, want animating", e.State())
	}
	if e.Cursor() != -1 {
		t.Errorf("cursor should not advance until the turn completes, got %d", e.Cursor())
	}

	corner := e.Model().CubieAt(GridCoord{1, 1, 1})
	restPos := corner.Position()

	// Sweep through the turn and watch progress climb.
	last := 0.0
	for _, ms := range []int64{50, 100, 150} {
		e.Tick(base.Add(time.Duration(ms) * time.Millisecond))
		p := e.Progress()
		if p <= last || p >= 1 {
			t.Errorf("at %dms: progress %v not in (%v, 1)", ms, p, last)
		}
		last = p
	}

	// Mid-turn the corner has left its rest position but its lattice
	// coordinate still reads the pre-turn cell.
	if corner.Position() == restPos {
		t.Error("corner never moved during the sweep")
	}
	if corner.Coord != (GridCoord{1, 1, 1}) {
		t.Errorf("coordinate changed mid-turn: %s", corner.Coord)
	}
	assertCoordPermutation(t, e.Model())

	// A stale timestamp must not roll the sweep backward.
	e.Tick(base.Add(60 * time.Millisecond))
	if p := e.Progress(); p < last {
		t.Errorf("progress rolled back to %v", p)
	}

	// Completion snaps the layer and advances the cursor.
	e.Tick(base.Add(250 * time.Millisecond))
	if e.State() != Idle {
		t.Fatalf("state after completion: got %s", e.State())
	}
	if e.Cursor() != 0 {
		t.Errorf("cursor after completion: got %d, want 0", e.Cursor())
	}
	assertCoordPermutation(t, e.Model())

	want := NewCubeModel()
	want.Apply(R)
	s1, _ := e.Model().Notation()
	s2, _ := want.Notation()
	if s1 != s2 {
		t.Errorf("animated R disagrees with discrete R:\n%s\n%s", s1, s2)
	}
}

func TestEngineRejectsMovesWhileAnimating(t *testing.T) {
	e := NewMoveEngine(nil, WithTurnDuration(time.Second))

	base := time.Now().Add(time.Second)
	e.Tick(base)
	if err := e.ApplyMove(R); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}

	if err := e.ApplyMove(U); !errors.Is(err, ErrRotationInProgress) {
		t.Errorf("second ApplyMove: expected ErrRotationInProgress, got %v", err)
	}
	if _, err := e.StepNext(); !errors.Is(err, ErrRotationInProgress) {
		t.Errorf("StepNext: expected ErrRotationInProgress, got %v", err)
	}
	if _, err := e.StepPrev(); !errors.Is(err, ErrRotationInProgress) {
		t.Errorf("StepPrev: expected ErrRotationInProgress, got %v", err)
	}
	if err := e.ResetToStart(); !errors.Is(err, ErrRotationInProgress) {
		t.Errorf("ResetToStart: expected ErrRotationInProgress, got %v", err)
	}

	// The rejected moves were not queued: only R is in the history.
	if got := FormatMoves(e.History()); got != "R" {
		t.Errorf("history: got %q, want %q", got, "R")
	}
}

func TestEngineStepBoundaries(t *testing.T) {
	e := instantEngine()

	if stepped, err := e.StepNext(); stepped || err != nil {
		t.Errorf("StepNext on empty history: got %v, %v", stepped, err)
	}
	if stepped, err := e.StepPrev(); stepped || err != nil {
		t.Errorf("StepPrev before first move: got %v, %v", stepped, err)
	}

	e.Enqueue(R, U)
	for i := 0; i < 2; i++ {
		if stepped, err := e.StepNext(); !stepped || err != nil {
			t.Fatalf("StepNext %d: got %v, %v", i, stepped, err)
		}
	}
	if stepped, _ := e.StepNext(); stepped {
		t.Error("StepNext past the end should be a no-op")
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor: got %d, want 1", e.Cursor())
	}

	for i := 0; i < 2; i++ {
		if stepped, err := e.StepPrev(); !stepped || err != nil {
			t.Fatalf("StepPrev %d: got %v, %v", i, stepped, err)
		}
	}
	if stepped, _ := e.StepPrev(); stepped {
		t.Error("StepPrev before the start should be a no-op")
	}
	if e.Cursor() != -1 {
		t.Errorf("cursor: got %d, want -1", e.Cursor())
	}
	if !e.Model().IsSolved() {
		t.Error("full rewind should restore the solved cube")
	}
}

func TestEngineStepReplaysHistory(t *testing.T) {
	e := instantEngine()
	if err := e.ApplyMove(R); err != nil {
		t.Fatal(err)
	}
	if err := e.ApplyMove(U); err != nil {
		t.Fatal(err)
	}
	want, _ := e.Model().Notation()

	e.StepPrev()
	e.StepPrev()
	if !e.Model().IsSolved() {
		t.Fatal("two StepPrev calls should undo R U")
	}

	e.StepNext()
	e.StepNext()
	got, _ := e.Model().Notation()
	if got != want {
		t.Errorf("replay diverged:\n%s\n%s", got, want)
	}
	if got := FormatMoves(e.History()); got != "R U" {
		t.Errorf("replay should not grow history: %q", got)
	}
}

func TestEngineApplyDropsUndoneTail(t *testing.T) {
	e := instantEngine()
	for _, m := range []Move{R, U, F} {
		if err := e.ApplyMove(m); err != nil {
			t.Fatal(err)
		}
	}

	e.StepPrev()
	e.StepPrev() // back to just R applied

	if err := e.ApplyMove(D); err != nil {
		t.Fatal(err)
	}

	if got := FormatMoves(e.History()); got != "R D" {
		t.Errorf("history after branching: got %q, want %q", got, "R D")
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor: got %d, want 1", e.Cursor())
	}

	want := NewCubeModel()
	want.Apply(R, D)
	s1, _ := e.Model().Notation()
	s2, _ := want.Notation()
	if s1 != s2 {
		t.Errorf("state after branching:\n%s\n%s", s1, s2)
	}
}

func TestEngineResetToStart(t *testing.T) {
	e := instantEngine()
	for _, m := range []Move{R, U2, FPrime, Wide(L)} {
		if err := e.ApplyMove(m); err != nil {
			t.Fatal(err)
		}
	}

	if err := e.ResetToStart(); err != nil {
		t.Fatalf("ResetToStart failed: %v", err)
	}
	if !e.Model().IsSolved() {
		t.Error("reset should restore the solved cube")
	}
	if e.Cursor() != -1 {
		t.Errorf("cursor: got %d, want -1", e.Cursor())
	}
	if len(e.History()) != 4 {
		t.Errorf("reset should keep history, got %d moves", len(e.History()))
	}

	// Reset at the start is a no-op.
	if err := e.ResetToStart(); err != nil {
		t.Errorf("reset at start: %v", err)
	}

	// The kept history can be replayed.
	if stepped, err := e.StepNext(); !stepped || err != nil {
		t.Errorf("StepNext after reset: got %v, %v", stepped, err)
	}
}

func TestEnginePlayback(t *testing.T) {
	e := NewMoveEngine(nil,
		WithTurnDuration(100*time.Millisecond),
		WithPlayDelay(50*time.Millisecond),
	)

	e.Enqueue(SexyMove...)

	base := time.Now().Add(time.Second)
	e.Tick(base)

	e.Play()
	if !e.Playing() {
		t.Fatal("Play should start playback")
	}

	// First step starts on the next tick.
	e.Tick(base.Add(10 * time.Millisecond))
	if e.State() != Animating {
		t.Fatal("playback should have started the first move")
	}
	mv, ok := e.CurrentMove()
	if !ok || mv != R {
		t.Fatalf("current move: got %v %v, want R", mv, ok)
	}

	// Finish move one; the delay gates move two.
	e.Tick(base.Add(120 * time.Millisecond))
	if e.State() != Idle || e.Cursor() != 0 {
		t.Fatalf("after first move: state %s cursor %d", e.State(), e.Cursor())
	}
	e.Tick(base.Add(140 * time.Millisecond))
	if e.State() != Idle {
		t.Error("move two started before the play delay elapsed")
	}
	e.Tick(base.Add(180 * time.Millisecond))
	if e.State() != Animating {
		t.Error("move two should have started after the play delay")
	}

	// Walk the rest of the sequence to the end.
	now := base.Add(180 * time.Millisecond)
	for i := 0; i < 40 && e.Busy(); i++ {
		now = now.Add(60 * time.Millisecond)
		e.Tick(now)
	}

	if e.Busy() {
		t.Fatal("playback never drained")
	}
	if e.Cursor() != len(SexyMove)-1 {
		t.Errorf("cursor: got %d, want %d", e.Cursor(), len(SexyMove)-1)
	}

	want := NewCubeModel()
	want.Apply(SexyMove...)
	s1, _ := e.Model().Notation()
	s2, _ := want.Notation()
	if s1 != s2 {
		t.Errorf("playback state diverged:\n%s\n%s", s1, s2)
	}
}

func TestEnginePauseFinishesInFlightTurn(t *testing.T) {
	e := NewMoveEngine(nil,
		WithTurnDuration(100*time.Millisecond),
		WithPlayDelay(10*time.Millisecond),
	)
	e.Enqueue(R, U)

	base := time.Now().Add(time.Second)
	e.Tick(base)
	e.Play()
	e.Tick(base.Add(10 * time.Millisecond)) // starts R

	e.Pause()
	if e.Playing() {
		t.Fatal("Pause should stop playback")
	}
	if e.State() != Animating {
		t.Fatal("pause must not abort the in-flight turn")
	}

	// The turn runs to its snapped end state; no further move starts.
	e.Tick(base.Add(200 * time.Millisecond))
	if e.State() != Idle || e.Cursor() != 0 {
		t.Fatalf("after pause: state %s cursor %d", e.State(), e.Cursor())
	}
	assertCoordPermutation(t, e.Model())

	e.Tick(base.Add(500 * time.Millisecond))
	if e.Cursor() != 0 {
		t.Error("paused engine kept stepping")
	}

	// Resume picks up from the paused cursor, not the start.
	e.Play()
	e.Tick(base.Add(510 * time.Millisecond))
	mv, ok := e.CurrentMove()
	if !ok || mv != U {
		t.Errorf("resume should start U, got %v %v", mv, ok)
	}
}

func TestEnginePlayAtEndIsNoOp(t *testing.T) {
	e := instantEngine()
	e.Enqueue(R)
	e.StepNext()

	e.Play()
	if e.Playing() {
		t.Error("Play at the end of history should be a no-op")
	}
}

func TestEngineRunDrains(t *testing.T) {
	e := NewMoveEngine(nil,
		WithTurnDuration(5*time.Millisecond),
		WithPlayDelay(time.Millisecond),
		WithFrameInterval(time.Millisecond),
	)
	e.Enqueue(R, RPrime)
	e.Play()

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if e.Busy() {
		t.Error("Run returned while busy")
	}
	if !e.Model().IsSolved() {
		t.Error("R R' should drain back to solved")
	}
	if e.Cursor() != 1 {
		t.Errorf("cursor: got %d, want 1", e.Cursor())
	}
}

func TestEngineRunCancelSnapsTurn(t *testing.T) {
	e := NewMoveEngine(nil,
		WithTurnDuration(80*time.Millisecond),
		WithPlayDelay(80*time.Millisecond),
		WithFrameInterval(5*time.Millisecond),
	)
	e.Enqueue(R, U, F, D)
	e.Play()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := e.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}

	if e.State() != Idle {
		t.Error("cancel must snap the in-flight turn to its end state")
	}
	if e.Playing() {
		t.Error("cancel must stop playback")
	}
	assertCoordPermutation(t, e.Model())

	// Whatever move was in flight completed fully.
	done := e.Cursor() + 1
	want := NewCubeModel()
	want.Apply(e.History()[:done]...)
	s1, _ := e.Model().Notation()
	s2, _ := want.Notation()
	if s1 != s2 {
		t.Errorf("model does not match its %d completed moves:\n%s\n%s", done, s1, s2)
	}
}

func TestEngineMoveDoneCallback(t *testing.T) {
	var seen []Move
	e := NewMoveEngine(nil,
		WithTurnDuration(0),
		WithMoveDone(func(m Move) { seen = append(seen, m) }),
	)

	e.ApplyMove(R)
	e.StepPrev()
	e.StepNext()

	want := []Move{R, RPrime, R}
	if len(seen) != len(want) {
		t.Fatalf("callback fired %d times, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d: got %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestEngineApplyMoveText(t *testing.T) {
	e := instantEngine()

	if err := e.ApplyMoveText("R'"); err != nil {
		t.Fatalf("ApplyMoveText failed: %v", err)
	}
	if got := FormatMoves(e.History()); got != "R'" {
		t.Errorf("history: got %q", got)
	}

	if err := e.ApplyMoveText("X"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
	if got := len(e.History()); got != 1 {
		t.Errorf("bad token must not touch history, got %d moves", got)
	}
}

func TestEngineWideAnimationLaw(t *testing.T) {
	e := NewMoveEngine(nil, WithTurnDuration(40*time.Millisecond))

	base := time.Now().Add(time.Second)
	e.Tick(base)

	now := base
	for i := 0; i < 4; i++ {
		if err := e.ApplyMove(Wide(R)); err != nil {
			t.Fatalf("ApplyMove %d failed: %v", i, err)
		}
		for e.State() == Animating {
			now = now.Add(10 * time.Millisecond)
			e.Tick(now)
		}
		assertCoordPermutation(t, e.Model())
	}

	if !e.Model().IsSolved() {
		t.Error("four wide quarter turns should restore the cube")
	}
}
