package biquad

import (
	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ChainT is an ordered cascade of biquad sections processed in series.
// Each section's output feeds the next; a multiband equalizer is one chain
// with one section per band.
type ChainT[F core.Float] struct {
	sections []SectionT[F]
	gain     F
}

// Chain is the float64 specialization.
type Chain = ChainT[float64]

// Chain32 is the float32 specialization.
type Chain32 = ChainT[float32]

// chainConfig holds options for NewChainT.
type chainConfig[F core.Float] struct {
	gain F
}

// ChainOption configures a chain.
type ChainOption[F core.Float] func(*chainConfig[F])

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain[F core.Float](g F) ChainOption[F] {
	return func(cfg *chainConfig[F]) { cfg.gain = g }
}

// NewChainT creates a cascade from zero or more coefficient sets.
// Each coefficient set becomes one section in the cascade.
func NewChainT[F core.Float](coeffs []CoefficientsT[F], opts ...ChainOption[F]) *ChainT[F] {
	cfg := chainConfig[F]{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &ChainT[F]{
		sections: make([]SectionT[F], len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].coeffs = coeffs[i]
	}

	return c
}

// NewChain creates a float64 cascade.
func NewChain(coeffs []Coefficients, opts ...ChainOption[float64]) *Chain {
	return NewChainT(coeffs, opts...)
}

// NewChain32 creates a float32 cascade.
func NewChain32(coeffs []Coefficients32, opts ...ChainOption[float32]) *Chain32 {
	return NewChainT(coeffs, opts...)
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *ChainT[F]) ProcessSample(x F) F {
	return ProcessSequential(c.sections, x*c.gain)
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *ChainT[F]) ProcessBlock(buf []F) {
	if c.gain != 1 {
		if b, ok := any(buf).([]float64); ok {
			vecmath.ScaleBlock(b, b, float64(c.gain))
		} else {
			for i, x := range buf {
				buf[i] = x * c.gain
			}
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *ChainT[F]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per biquad section).
func (c *ChainT[F]) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *ChainT[F]) NumSections() int {
	return len(c.sections)
}

// Gain returns the current input gain applied before cascading.
func (c *ChainT[F]) Gain() F { return c.gain }

// SetGain updates the input gain applied before cascading.
func (c *ChainT[F]) SetGain(g F) { c.gain = g }

// Coefficients returns a copy of every section's coefficients in order.
func (c *ChainT[F]) Coefficients() []CoefficientsT[F] {
	out := make([]CoefficientsT[F], len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].coeffs
	}

	return out
}

// SetCoefficients replaces the coefficients of the i-th section.
func (c *ChainT[F]) SetCoefficients(i int, coeffs CoefficientsT[F], resetState bool) {
	c.sections[i].SetCoefficients(coeffs, resetState)
}

// UpdateCoefficients replaces the filter coefficients and gain.
// If the number of sections is unchanged each section keeps its delay-line
// state unless resetState is set. If the section count changes the sections
// are replaced and state starts from zero.
func (c *ChainT[F]) UpdateCoefficients(coeffs []CoefficientsT[F], gain F, resetState bool) {
	c.gain = gain

	if len(coeffs) == len(c.sections) {
		for i := range c.sections {
			c.sections[i].SetCoefficients(coeffs[i], resetState)
		}

		return
	}

	c.sections = make([]SectionT[F], len(coeffs))
	for i := range coeffs {
		c.sections[i].coeffs = coeffs[i]
	}
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *ChainT[F]) Section(i int) *SectionT[F] {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *ChainT[F]) State() []State[F] {
	states := make([]State[F], len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *ChainT[F]) SetState(states []State[F]) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
