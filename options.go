package cubelab

import (
	"math"
	"math/rand"
)

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	turnRate     float64 // radians per second for an isolated manual move
	sequenceRate float64 // radians per second during shuffle/solve sequences
	shuffleLen   int     // 0 means "cube size" at shuffle time
	moveHistory  bool
	rng          *rand.Rand
}

func defaultConfig() *config {
	return &config{
		turnRate:     math.Pi,     // half a second per quarter turn
		sequenceRate: 4 * math.Pi, // eighth of a second per quarter turn
		shuffleLen:   0,
		moveHistory:  true,
	}
}

// WithTurnRate sets the angular speed, in radians per second, used for an
// isolated manual move.
func WithTurnRate(radPerSec float64) Option {
	return func(c *config) {
		if radPerSec > 0 {
			c.turnRate = radPerSec
		}
	}
}

// WithSequenceTurnRate sets the angular speed, in radians per second,
// used while draining a shuffle or solve sequence.
func WithSequenceTurnRate(radPerSec float64) Option {
	return func(c *config) {
		if radPerSec > 0 {
			c.sequenceRate = radPerSec
		}
	}
}

// WithShuffleLength fixes the number of moves enqueued by Shuffle.
// The default is the cube size at the time of the shuffle.
func WithShuffleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shuffleLen = n
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), manual and shuffle moves are recorded and
// accessible via History, and Solve can invert them. Disable this for
// very long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used by Shuffle. Pass a seeded source
// for reproducible scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
