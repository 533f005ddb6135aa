package cubevision

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/geo/r3"
)

// EngineState is the animation state of a MoveEngine.
type EngineState int

const (
	// Idle means no turn is in progress. Moves are accepted.
	Idle EngineState = iota
	// Animating means a layer is mid-turn. Moves are rejected, not queued.
	Animating
)

func (s EngineState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("EngineState(%d)", int(s))
	}
}

// MoveEngine executes moves against a CubeModel, animating each turn as
// a sweep of the affected layer and keeping a replayable history with a
// cursor.
//
// The engine is frame driven: it never spawns goroutines or sleeps on
// its own. Callers either pump Tick from their own loop (a TUI frame
// tick, a render loop) or hand control to Run, which pumps Tick on a
// ticker until motion drains. Timing is taken from the timestamps
// passed to Tick, so tests can drive the clock explicitly.
//
// A MoveEngine has a single owner. Methods must not be called from
// multiple goroutines at once; in particular nothing else may touch the
// engine or its model while Run is active.
//
// The history cursor sits between -1 (before the first move) and
// len(history)-1 (after the last). StepNext and StepPrev replay history
// without growing it; ApplyMove appends, discarding any undone tail.
type MoveEngine struct {
	model *CubeModel
	cfg   *config

	history []Move
	cursor  int

	state    EngineState
	current  Move
	dir      int // cursor delta when the current turn completes
	started  time.Time
	progress float64
	turning  []*Cubie
	rest     []r3.Vector // turning cubies' positions when the turn began

	playing  bool
	nextStep time.Time

	now time.Time
}

// NewMoveEngine creates an engine for the given model. A nil model
// starts a fresh solved cube.
func NewMoveEngine(model *CubeModel, opts ...Option) *MoveEngine {
	if model == nil {
		model = NewCubeModel()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &MoveEngine{
		model:  model,
		cfg:    cfg,
		cursor: -1,
		now:    time.Now(),
	}
}

// Model returns the engine's cube model.
func (e *MoveEngine) Model() *CubeModel {
	return e.model
}

// State returns Idle or Animating.
func (e *MoveEngine) State() EngineState {
	return e.state
}

// Playing reports whether playback is scheduling further steps.
func (e *MoveEngine) Playing() bool {
	return e.playing
}

// Busy reports whether the engine is mid-turn or playing.
func (e *MoveEngine) Busy() bool {
	return e.state == Animating || e.playing
}

// Progress returns how far the current turn has swept, from 0 to 1.
// It is 0 while the engine is idle.
func (e *MoveEngine) Progress() float64 {
	if e.state != Animating {
		return 0
	}
	return e.progress
}

// CurrentMove returns the move being animated, if any.
func (e *MoveEngine) CurrentMove() (Move, bool) {
	if e.state != Animating {
		return Move{}, false
	}
	return e.current, true
}

// Cursor returns the index of the last applied history move, or -1 when
// the engine sits before the first move.
func (e *MoveEngine) Cursor() int {
	return e.cursor
}

// History returns a copy of the move history.
func (e *MoveEngine) History() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// ApplyMove starts a fresh move. Any undone tail beyond the cursor is
// discarded, the move is appended to history and the turn begins. If a
// turn is already in progress the move is rejected with
// ErrRotationInProgress; it is never queued. Applying a move also stops
// playback.
func (e *MoveEngine) ApplyMove(m Move) error {
	if e.state == Animating {
		return fmt.Errorf("%w: %s requested during %s", ErrRotationInProgress, m, e.current)
	}

	e.playing = false
	e.history = append(e.history[:e.cursor+1], m)
	e.beginTurn(m, 1)
	return nil
}

// ApplyMoveText parses a single token and applies it.
func (e *MoveEngine) ApplyMoveText(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return e.ApplyMove(m)
}

// Enqueue appends moves to the history without applying them. They sit
// beyond the cursor until StepNext or playback reaches them.
func (e *MoveEngine) Enqueue(moves ...Move) {
	e.history = append(e.history, moves...)
}

// StepNext applies the next history move and advances the cursor. At
// the end of history it reports false and does nothing. While a turn is
// animating it rejects with ErrRotationInProgress.
func (e *MoveEngine) StepNext() (bool, error) {
	if e.state == Animating {
		return false, fmt.Errorf("%w: step requested during %s", ErrRotationInProgress, e.current)
	}
	if e.cursor+1 >= len(e.history) {
		return false, nil
	}

	e.beginTurn(e.history[e.cursor+1], 1)
	return true, nil
}

// StepPrev undoes the move at the cursor by applying its inverse and
// retreats the cursor. Before the first move it reports false and does
// nothing. While a turn is animating it rejects with
// ErrRotationInProgress.
func (e *MoveEngine) StepPrev() (bool, error) {
	if e.state == Animating {
		return false, fmt.Errorf("%w: step requested during %s", ErrRotationInProgress, e.current)
	}
	if e.cursor < 0 {
		return false, nil
	}

	e.beginTurn(e.history[e.cursor].Inverse(), -1)
	return true, nil
}

// ResetToStart steps back until the cursor reaches -1, restoring the
// model to its pre-history state. The rewind is discrete regardless of
// the turn duration. History is kept, so playback or StepNext can walk
// it again. Rejected while a turn is animating.
func (e *MoveEngine) ResetToStart() error {
	if e.state == Animating {
		return fmt.Errorf("%w: reset requested during %s", ErrRotationInProgress, e.current)
	}

	e.playing = false
	for e.cursor >= 0 {
		e.model.Apply(e.history[e.cursor].Inverse())
		e.cursor--
	}
	return nil
}

// Play starts stepping through the remaining history, one move per
// play delay. At the end of history (and with no turn in flight) it is
// a no-op.
func (e *MoveEngine) Play() {
	if e.playing {
		return
	}
	if e.cursor+1 >= len(e.history) && e.state != Animating {
		return
	}

	e.playing = true
	e.nextStep = e.now
}

// Pause stops scheduling further playback steps. A turn already in
// flight still finishes to its snapped end state. Pausing an idle
// engine is a no-op.
func (e *MoveEngine) Pause() {
	e.playing = false
}

// Tick advances the engine to the given time: it sweeps the current
// turn forward, completes it when its duration has elapsed, and starts
// the next playback step once the play delay has passed. It reports
// whether the visible state changed.
//
// Progress is monotonic: timestamps earlier than a previous Tick never
// roll a turn backward.
func (e *MoveEngine) Tick(now time.Time) bool {
	if now.After(e.now) {
		e.now = now
	}

	changed := false
	if e.state == Animating {
		e.advanceTurn(now)
		changed = true
	}

	if e.state == Idle && e.playing && !now.Before(e.nextStep) {
		stepped, _ := e.StepNext()
		if !stepped {
			e.playing = false
		}
		changed = changed || stepped
	}

	return changed
}

// Run pumps Tick on the configured frame interval until the engine goes
// idle with playback finished, then returns nil. Cancelling the context
// pauses playback, lets the in-flight turn snap to its end state and
// returns the context error. No other engine method may be called while
// Run is active.
func (e *MoveEngine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.playing = false
			e.finishTurn()
			return ctx.Err()
		case now := <-ticker.C:
			e.Tick(now)
			if e.state == Idle && !e.playing {
				return nil
			}
		}
	}
}

// beginTurn starts animating m. dir is the cursor delta applied when
// the turn completes: +1 for forward moves, -1 for StepPrev's inverse
// replay. With animation disabled the move completes immediately.
func (e *MoveEngine) beginTurn(m Move, dir int) {
	if e.cfg.turnDuration <= 0 {
		e.model.Apply(m)
		e.cursor += dir
		if e.cfg.onMoveDone != nil {
			e.cfg.onMoveDone(m)
		}
		return
	}

	e.current = m
	e.dir = dir
	e.turning = e.model.layer(m)
	e.rest = e.rest[:0]
	for _, c := range e.turning {
		e.rest = append(e.rest, c.Position())
	}
	e.started = e.now
	e.progress = 0
	e.state = Animating
}

// advanceTurn sweeps the turning layer to the progress implied by now
// and finishes the turn once progress reaches 1.
func (e *MoveEngine) advanceTurn(now time.Time) {
	p := float64(now.Sub(e.started)) / float64(e.cfg.turnDuration)
	if p > 1 {
		p = 1
	}
	if p < e.progress {
		p = e.progress
	}
	e.progress = p

	angle := e.current.Angle() * p
	for i, c := range e.turning {
		c.pos = rotated(e.rest[i], e.current.Face, angle)
	}

	if p >= 1 {
		e.finishTurn()
	}
}

// finishTurn applies the current move discretely, snapping every
// turning cubie onto the lattice, and moves the cursor.
func (e *MoveEngine) finishTurn() {
	if e.state != Animating {
		return
	}

	e.model.Apply(e.current)
	e.cursor += e.dir
	e.state = Idle
	e.progress = 0
	e.turning = nil

	if e.playing {
		e.nextStep = e.now.Add(e.cfg.playDelay)
	}
	if e.cfg.onMoveDone != nil {
		e.cfg.onMoveDone(e.current)
	}
}
