package eq

import "github.com/cwbudde/algo-peq/dsp/core"

// Gain is a band gain stored either as linear amplitude or in dB.
// The zero value is an amplitude of 0 (-Inf dB).
type Gain[F core.Float] struct {
	value F
	db    bool
}

// GainAmplitude returns a gain stored as linear amplitude.
func GainAmplitude[F core.Float](amplitude F) Gain[F] {
	return Gain[F]{value: amplitude}
}

// GainDB returns a gain stored in dB.
func GainDB[F core.Float](db F) Gain[F] {
	return Gain[F]{value: db, db: true}
}

// Amplitude returns the linear amplitude.
func (g Gain[F]) Amplitude() F {
	if g.db {
		return core.DBToAmplitude(g.value)
	}
	return g.value
}

// DB returns the gain in dB.
func (g Gain[F]) DB() F {
	if g.db {
		return g.value
	}
	return core.AmplitudeToDB(g.value)
}

// IsDB reports whether the gain is stored in dB.
func (g Gain[F]) IsDB() bool { return g.db }

func convertGain[T, F core.Float](g Gain[F]) Gain[T] {
	return Gain[T]{value: T(g.value), db: g.db}
}
