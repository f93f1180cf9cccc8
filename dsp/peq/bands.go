package peq

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
)

// DefaultNumBands is the band count of a default equalizer.
const DefaultNumBands = 8

// DefaultBands returns DefaultNumBands bypassed bands carrying
// [eq.DefaultParams], so enabling a band starts from a -3 dB peak at 1 kHz.
// Frequencies are stored as log10(Hz), the representation a parameter host
// automates.
func DefaultBands[F core.Float]() []eq.Params[F] {
	bands := make([]eq.Params[F], DefaultNumBands)
	for i := range bands {
		p := eq.DefaultParams[F]()
		p.Frequency = eq.LogHz(p.Frequency.LogHz())
		p.Type = eq.TypeBypassed
		bands[i] = p
	}
	return bands
}

// LogFrequencies returns n frequencies spaced evenly on a log axis from lo
// to hi inclusive. It returns nil if n < 2 or the range is not positive.
func LogFrequencies(n int, lo, hi float64) []float64 {
	if n < 2 || lo <= 0 || hi <= lo {
		return nil
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}
