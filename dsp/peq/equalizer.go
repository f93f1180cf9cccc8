package peq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peq/dsp/filter/design"
	"github.com/cwbudde/algo-peq/dsp/handoff"
)

var (
	// ErrBandIndex is returned for a band index outside [0, NumBands).
	ErrBandIndex = errors.New("peq: band index out of range")
	// ErrInvalidSampleRate is returned for a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("peq: invalid sample rate")
)

type band[F core.Float] struct {
	params  eq.Params[F]
	coeffs  biquad.CoefficientsT[F]
	applied bool
}

// snapshot is what the control side hands to the audio side. reset is a
// generation counter; a change asks the audio side to clear filter state.
type snapshot[F core.Float] struct {
	coeffs []biquad.CoefficientsT[F]
	reset  uint64
}

// EqualizerT is a multiband equalizer over sample type F.
//
// SetBand, Initialize, SetSampleRate and the analysis methods belong to the
// control goroutine. ProcessSample, ProcessBlock and Reset belong to the
// audio goroutine. The two sides may run concurrently.
type EqualizerT[F core.Float] struct {
	cfg    core.ProcessorConfig
	bands  []band[F]
	resets uint64

	buf *handoff.TripleBuffer[snapshot[F]]

	chain     *biquad.ChainT[F]
	lastReset uint64
}

// Equalizer is the float64 equalizer.
type Equalizer = EqualizerT[float64]

// Equalizer32 is the float32 equalizer.
type Equalizer32 = EqualizerT[float32]

// NewT creates an equalizer with one band per entry of bands, or
// [DefaultBands] if bands is empty. Every band starts muted; call
// [EqualizerT.Initialize] to design the filters.
func NewT[F core.Float](bands []eq.Params[F], opts ...core.ProcessorOption) *EqualizerT[F] {
	if len(bands) == 0 {
		bands = DefaultBands[F]()
	}

	n := len(bands)
	e := &EqualizerT[F]{
		cfg:   core.ApplyProcessorOptions(opts...),
		bands: make([]band[F], n),
	}

	muted := make([]biquad.CoefficientsT[F], n)
	for i, p := range bands {
		e.bands[i] = band[F]{params: p, coeffs: biquad.Muted[F]()}
		muted[i] = biquad.Muted[F]()
	}

	e.chain = biquad.NewChainT(muted)
	e.buf = handoff.NewFunc(func() snapshot[F] {
		return snapshot[F]{coeffs: append([]biquad.CoefficientsT[F](nil), muted...)}
	})

	return e
}

// New creates a float64 equalizer. See [NewT].
func New(bands []eq.Params[float64], opts ...core.ProcessorOption) *Equalizer {
	return NewT(bands, opts...)
}

// New32 creates a float32 equalizer. See [NewT].
func New32(bands []eq.Params[float32], opts ...core.ProcessorOption) *Equalizer32 {
	return NewT(bands, opts...)
}

// SampleRate returns the sample rate coefficients are designed for.
func (e *EqualizerT[F]) SampleRate() float64 { return e.cfg.SampleRate }

// BlockSize returns the configured processing block size.
func (e *EqualizerT[F]) BlockSize() int { return e.cfg.BlockSize }

// NumBands returns the number of bands.
func (e *EqualizerT[F]) NumBands() int { return len(e.bands) }

// Initialize mutes every band, designs all of them from their current
// parameters and asks the audio side to clear its filter state. Bands whose
// design fails or is unstable stay muted. ok reports whether every band was
// applied; err joins the design errors.
func (e *EqualizerT[F]) Initialize() (ok bool, err error) {
	ok = true
	var errs []error

	for i := range e.bands {
		b := &e.bands[i]
		b.coeffs = biquad.Muted[F]()
		b.applied = false

		applied, derr := e.apply(i, b.params)
		if derr != nil {
			errs = append(errs, derr)
		}
		ok = ok && applied
	}

	e.resets++
	e.publish()

	return ok, errors.Join(errs...)
}

// SetBand updates band i. Unchanged parameters are accepted without
// redesign. New coefficients that fail to design or are not stable are
// rejected and the band keeps its previous filter; applied is false then.
// Accepted changes reach the audio side without clearing filter state.
func (e *EqualizerT[F]) SetBand(i int, p eq.Params[F]) (applied bool, err error) {
	if i < 0 || i >= len(e.bands) {
		return false, fmt.Errorf("%w: %d", ErrBandIndex, i)
	}

	b := &e.bands[i]
	if b.applied && b.params == p {
		return true, nil
	}

	applied, err = e.apply(i, p)
	if applied {
		e.publish()
	}

	return applied, err
}

// SetSampleRate changes the design sample rate and re-initializes all
// bands. See [EqualizerT.Initialize].
func (e *EqualizerT[F]) SetSampleRate(sampleRate float64) (bool, error) {
	if !(sampleRate > 0) {
		return false, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	e.cfg.SampleRate = sampleRate
	return e.Initialize()
}

func (e *EqualizerT[F]) apply(i int, p eq.Params[F]) (bool, error) {
	c, err := design.FromParams(p, F(e.cfg.SampleRate))
	if err != nil {
		return false, fmt.Errorf("peq: band %d: %w", i, err)
	}

	if !c.IsStable() {
		return false, nil
	}

	e.bands[i] = band[F]{params: p, coeffs: c, applied: true}
	return true, nil
}

func (e *EqualizerT[F]) publish() {
	s := e.buf.Back()
	for i := range e.bands {
		s.coeffs[i] = e.bands[i].coeffs
	}
	s.reset = e.resets
	e.buf.Publish()
}

// Params returns a copy of the band parameters. A band rejected since the
// last accepted change reports its accepted parameters.
func (e *EqualizerT[F]) Params() []eq.Params[F] {
	out := make([]eq.Params[F], len(e.bands))
	for i := range e.bands {
		out[i] = e.bands[i].params
	}
	return out
}

// Applied reports whether band i currently runs coefficients designed from
// its parameters rather than the muted initial filter.
func (e *EqualizerT[F]) Applied(i int) bool {
	return i >= 0 && i < len(e.bands) && e.bands[i].applied
}

// Coefficients returns a copy of the coefficients of every band as last
// published, including bypassed and muted bands.
func (e *EqualizerT[F]) Coefficients() []biquad.CoefficientsT[F] {
	out := make([]biquad.CoefficientsT[F], len(e.bands))
	for i := range e.bands {
		out[i] = e.bands[i].coeffs
	}
	return out
}

// ActiveCoefficients returns the coefficients of applied bands whose type is
// not bypassed, in band order.
func (e *EqualizerT[F]) ActiveCoefficients() []biquad.CoefficientsT[F] {
	out := make([]biquad.CoefficientsT[F], 0, len(e.bands))
	for i := range e.bands {
		if b := e.bands[i]; b.applied && b.params.Type.IsActive() {
			out = append(out, b.coeffs)
		}
	}
	return out
}

// ActiveCount returns the number of bands included in analysis.
func (e *EqualizerT[F]) ActiveCount() int {
	n := 0
	for i := range e.bands {
		if b := e.bands[i]; b.applied && b.params.Type.IsActive() {
			n++
		}
	}
	return n
}

// Response evaluates the complex response of the active bands at freqHz.
func (e *EqualizerT[F]) Response(freqHz float64) complex128 {
	return biquad.MultibandResponse(e.ActiveCoefficients(), e.cfg.SampleRate)(freqHz)
}

// MagnitudeDB evaluates the magnitude of the active bands in dB at each
// frequency in freqs.
func (e *EqualizerT[F]) MagnitudeDB(freqs []float64) []float64 {
	return biquad.MagnitudeResponseDB(e.ActiveCoefficients(), freqs, e.cfg.SampleRate)
}

// ImpulseResponse samples the impulse response of the active bands with
// the default plot settings of [biquad.MultibandImpulseResponse].
func (e *EqualizerT[F]) ImpulseResponse() []F {
	return biquad.MultibandImpulseResponse(e.ActiveCoefficients(),
		F(biquad.DefaultImpulseEps), biquad.DefaultImpulseHold, biquad.DefaultImpulseMaxLength)
}

// PoleZeroPairs returns poles and zeros of every active band.
func (e *EqualizerT[F]) PoleZeroPairs() []biquad.PoleZeroPair {
	return biquad.PoleZeroPairs(e.ActiveCoefficients())
}

// sync installs the latest published snapshot into the audio-side chain.
func (e *EqualizerT[F]) sync() {
	s, updated := e.buf.Read()
	if !updated {
		return
	}

	reset := s.reset != e.lastReset
	e.lastReset = s.reset

	for i, c := range s.coeffs {
		sec := e.chain.Section(i)
		if reset || sec.Coefficients() != c {
			sec.SetCoefficients(c, reset)
		}
	}
}

// ProcessSample filters one sample through all bands.
func (e *EqualizerT[F]) ProcessSample(x F) F {
	e.sync()
	return e.chain.ProcessSample(x)
}

// ProcessBlock filters buf in place through all bands.
func (e *EqualizerT[F]) ProcessBlock(buf []F) {
	e.sync()
	e.chain.ProcessBlock(buf)
}

// Reset clears the audio-side filter state.
func (e *EqualizerT[F]) Reset() {
	e.chain.Reset()
}
