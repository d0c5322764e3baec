package weather

import (
	"math"
	"math/rand/v2"
)

// Synthesizer produces random but well-formed readings.
//
// The default source is the math/rand/v2 top-level generator, which is safe
// for concurrent use; each call draws its own three values.
type Synthesizer struct {
	randFloat func() float64
	randIntN  func(n int) int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRandom replaces the random source. f must return values in [0, 1) and
// intN values in [0, n). Both must be safe for concurrent use if the
// Synthesizer is shared.
func WithRandom(f func() float64, intN func(n int) int) Option {
	return func(s *Synthesizer) {
		if f != nil {
			s.randFloat = f
		}
		if intN != nil {
			s.randIntN = intN
		}
	}
}

// NewSynthesizer creates a Synthesizer backed by math/rand/v2 unless
// overridden.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		randFloat: rand.Float64,
		randIntN:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize builds a reading for an already canonicalized city. When ok is
// false the reading carries no city. It never fails.
func (s *Synthesizer) Synthesize(city string, ok bool) Reading {
	r := Reading{
		Condition:   s.condition(),
		Temperature: s.uniform(MinTemperature, MaxTemperature),
		Humidity:    s.uniform(MinHumidity, MaxHumidity),
	}
	if ok {
		r.City = &city
	}
	return r
}

func (s *Synthesizer) condition() Condition {
	i := s.randIntN(len(Conditions))
	if i < 0 || i >= len(Conditions) {
		i = 0
	}
	return Conditions[i]
}

// uniform draws from [lo, hi] and rounds to 2 decimals, clamping so a
// misbehaving source cannot leave the range.
func (s *Synthesizer) uniform(lo, hi float64) float64 {
	v := round2(lo + s.randFloat()*(hi-lo))
	switch {
	case v < lo || math.IsNaN(v):
		return lo
	case v > hi:
		return hi
	case v == 0:
		// normalizes negative zero
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
