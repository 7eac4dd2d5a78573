package queue

import (
	"math/rand/v2"

	"github.com/tychoish/grip"
)

type Option func(*Options)

type Options struct {
	// Random picks the index for RemoveRandomItem. It is only used
	// while the queue's lock is held, so it need not be safe for
	// concurrent use.
	Random *rand.Rand
	Logger grip.Logger
}

func defaultOptions() Options {
	return Options{
		Random: NewRandom(0),
		Logger: grip.NewLogger(grip.Sender()),
	}
}

// NewRandom returns a PCG source seeded with seed, or with a seed drawn
// from the runtime's generator when seed is zero.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func WithRandom(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Random = rng
		}
	}
}

func WithLogger(logger grip.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
