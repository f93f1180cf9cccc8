//nolint:funcorder
package biquad

import (
	"sync"

	"github.com/cwbudde/algo-peq/dsp/core"
	archregistry "github.com/cwbudde/algo-peq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// State is the Direct Form I delay line of a section: the two previous
// inputs X = {x[n-1], x[n-2]} and outputs Y = {y[n-1], y[n-2]}.
type State[F core.Float] struct {
	X, Y [2]F
}

// SectionT is a single biquad filter with coefficients and internal state.
// It implements Direct Form I processing:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// A SectionT is not safe for concurrent use.
type SectionT[F core.Float] struct {
	coeffs CoefficientsT[F]

	x1, x2 F
	y1, y2 F
}

// Section is the float64 specialization.
type Section = SectionT[float64]

// Section32 is the float32 specialization.
type Section32 = SectionT[float32]

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSectionT returns a section initialized with the given coefficients and
// zero state.
func NewSectionT[F core.Float](c CoefficientsT[F]) *SectionT[F] {
	return &SectionT[F]{coeffs: c}
}

// NewSection returns a float64 section.
func NewSection(c Coefficients) *Section {
	return NewSectionT(c)
}

// NewSection32 returns a float32 section.
func NewSection32(c Coefficients32) *Section32 {
	return NewSectionT(c)
}

// Coefficients returns the coefficients currently in use.
func (s *SectionT[F]) Coefficients() CoefficientsT[F] {
	return s.coeffs
}

// SetCoefficients replaces the coefficients. When resetState is true both
// delay lines are zeroed; otherwise the history is kept so that parameter
// changes on a running stream do not click.
func (s *SectionT[F]) SetCoefficients(c CoefficientsT[F], resetState bool) {
	s.coeffs = c
	if resetState {
		s.Reset()
	}
}

// ProcessSample filters one input sample and returns the output.
func (s *SectionT[F]) ProcessSample(x F) F {
	c := &s.coeffs
	y := c.B0*x + c.B1*s.x1 + c.B2*s.x2 - c.A1*s.y1 - c.A2*s.y2

	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
//
// float64 sections run the kernel selected for the current CPU; float32
// sections use the scalar loop.
func (s *SectionT[F]) ProcessBlock(buf []F) {
	if s64, ok := any(s).(*SectionT[float64]); ok {
		processBlockKernel(s64, any(buf).([]float64))
		return
	}

	s.processBlockScalar(buf)
}

func processBlockKernel(s *Section, buf []float64) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: s.coeffs.B0,
		B1: s.coeffs.B1,
		B2: s.coeffs.B2,
		A1: s.coeffs.A1,
		A2: s.coeffs.A2,
	}

	st := processBlockImpl(coeffs, archregistry.State{X1: s.x1, X2: s.x2, Y1: s.y1, Y2: s.y2}, buf)
	s.x1, s.x2, s.y1, s.y2 = st.X1, st.X2, st.Y1, st.Y2
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

func (s *SectionT[F]) processBlockScalar(buf []F) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *SectionT[F]) ProcessBlockTo(dst, src []F) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears both delay lines to zero.
func (s *SectionT[F]) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current delay-line state.
func (s *SectionT[F]) State() State[F] {
	return State[F]{X: [2]F{s.x1, s.x2}, Y: [2]F{s.y1, s.y2}}
}

// SetState restores a previously saved delay-line state.
func (s *SectionT[F]) SetState(state State[F]) {
	s.x1, s.x2 = state.X[0], state.X[1]
	s.y1, s.y2 = state.Y[0], state.Y[1]
}

// ProcessSequential feeds x through every section in order and returns the
// output of the last one. An empty cascade returns x unchanged.
func ProcessSequential[F core.Float](sections []SectionT[F], x F) F {
	for i := range sections {
		x = sections[i].ProcessSample(x)
	}

	return x
}
