package design

import (
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// FromParams designs coefficients for a flat band record. Fields the type
// does not consume are ignored. Bypassed and unknown types yield identity
// coefficients.
func FromParams[F core.Float](p eq.Params[F], sampleRate F) (biquad.CoefficientsT[F], error) {
	return FromBand(p.Band(), sampleRate)
}

// FromBand designs coefficients for one band variant. [eq.BandPass] uses
// the 0 dB peak gain form (b0 = alpha); [BandpassSkirt] is the
// constant-skirt variant and is not reachable from a band record.
func FromBand[F core.Float](b eq.Band[F], sampleRate F) (biquad.CoefficientsT[F], error) {
	var (
		c   biquad.CoefficientsT[F]
		err error
	)

	switch v := b.(type) {
	case eq.Volume[F]:
		return biquad.VolumeLinear(v.Gain.Amplitude()), nil
	case eq.LowPass[F]:
		c, err = Lowpass(v.Cutoff.Hz(), v.Q, sampleRate)
	case eq.HighPass[F]:
		c, err = Highpass(v.Cutoff.Hz(), v.Q, sampleRate)
	case eq.BandPass[F]:
		c, err = Bandpass(v.Center.Hz(), v.Q, sampleRate)
	case eq.AllPass[F]:
		c, err = Allpass(v.Center.Hz(), v.Q, sampleRate)
	case eq.Notch[F]:
		c, err = Notch(v.Center.Hz(), v.Q, sampleRate)
	case eq.Peak[F]:
		c, err = PeakLinear(v.Center.Hz(), v.Gain.Amplitude(), v.Q, sampleRate)
	case eq.LowShelf[F]:
		c, err = LowShelfLinear(v.Cutoff.Hz(), v.Gain.Amplitude(), v.Q, sampleRate)
	case eq.HighShelf[F]:
		c, err = HighShelfLinear(v.Cutoff.Hz(), v.Gain.Amplitude(), v.Q, sampleRate)
	default:
		return Bypass[F](), nil
	}

	if err != nil {
		return c, fmt.Errorf("%v band: %w", b.Type(), err)
	}

	return c, nil
}
