package cubevision

import "time"

// Option configures a MoveEngine.
type Option func(*config)

type config struct {
	turnDuration  time.Duration
	playDelay     time.Duration
	frameInterval time.Duration
	onMoveDone    func(Move)
}

func defaultConfig() *config {
	return &config{
		turnDuration:  250 * time.Millisecond,
		playDelay:     400 * time.Millisecond,
		frameInterval: 16 * time.Millisecond,
	}
}

// WithTurnDuration sets how long one animated turn takes.
// A zero or negative duration disables animation: every move completes
// discretely the moment it is applied.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		c.turnDuration = d
	}
}

// WithPlayDelay sets the pause between consecutive moves during
// playback, measured from the end of one turn to the start of the next.
func WithPlayDelay(d time.Duration) Option {
	return func(c *config) {
		c.playDelay = d
	}
}

// WithFrameInterval sets the tick rate of Run's internal loop.
// Callers driving the engine through Tick themselves can ignore it.
func WithFrameInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.frameInterval = d
		}
	}
}

// WithMoveDone registers a callback invoked after each completed turn,
// including turns replayed by StepNext, StepPrev and playback.
func WithMoveDone(fn func(Move)) Option {
	return func(c *config) {
		c.onMoveDone = fn
	}
}
