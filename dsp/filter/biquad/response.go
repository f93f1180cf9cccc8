package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/internal/polyroot"
	"github.com/cwbudde/algo-vecmath"
)

// TransferFunction evaluates
//
//	H(z) = (B0 + B1*z + B2*z^2) / (1 + A1*z + A2*z^2)
//
// at an arbitrary complex point. z is the unit delay, so the frequency
// response at angular frequency w is H(e^-jw).
func (c CoefficientsT[F]) TransferFunction(z complex128) complex128 {
	num := polyroot.PolyEval([]complex128{
		complex(float64(c.B2), 0),
		complex(float64(c.B1), 0),
		complex(float64(c.B0), 0),
	}, z)
	den := polyroot.PolyEval([]complex128{
		complex(float64(c.A2), 0),
		complex(float64(c.A1), 0),
		1,
	}, z)

	return num / den
}

// Response computes the complex frequency response of a biquad at the given
// frequency (Hz) and sample rate (Hz).
func (c CoefficientsT[F]) Response(freqHz, sampleRate float64) complex128 {
	w := core.Omega(freqHz, sampleRate)
	return c.TransferFunction(cmplx.Exp(complex(0, -w)))
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials.
func (c CoefficientsT[F]) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(core.Omega(freqHz, sampleRate))
	b0, b1, b2 := float64(c.B0), float64(c.B1), float64(c.B2)
	a1, a2 := float64(c.A1), float64(c.A2)

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|). A response of exactly zero gives -Inf.
func (c CoefficientsT[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.AmplitudeToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c CoefficientsT[F]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// FrequencyResponse returns a closure evaluating the complex response of c
// at a frequency in Hz for the fixed sample rate.
func FrequencyResponse[F core.Float](c CoefficientsT[F], sampleRate float64) func(freqHz float64) complex128 {
	return func(freqHz float64) complex128 {
		return c.Response(freqHz, sampleRate)
	}
}

// MultibandResponse returns a closure evaluating the response of a cascade,
// the pointwise product of the individual responses. An empty cascade has a
// response of 1 everywhere. The coefficients are copied.
func MultibandResponse[F core.Float](coeffs []CoefficientsT[F], sampleRate float64) func(freqHz float64) complex128 {
	cs := append([]CoefficientsT[F](nil), coeffs...)

	return func(freqHz float64) complex128 {
		w := core.Omega(freqHz, sampleRate)
		z := cmplx.Exp(complex(0, -w))

		h := complex(1, 0)
		for i := range cs {
			h *= cs[i].TransferFunction(z)
		}

		return h
	}
}

// MagnitudeResponseDB evaluates the cascade magnitude in dB at each
// frequency in freqs.
func MagnitudeResponseDB[F core.Float](coeffs []CoefficientsT[F], freqs []float64, sampleRate float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	h := MultibandResponse(coeffs, sampleRate)
	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	for i, f := range freqs {
		v := h(f)
		re[i] = real(v)
		im[i] = imag(v)
	}

	mag := make([]float64, len(freqs))
	vecmath.Magnitude(mag, re, im)
	for i, m := range mag {
		mag[i] = core.AmplitudeToDB(m)
	}

	return mag
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *ChainT[F]) Response(freqHz, sampleRate float64) complex128 {
	h := complex(float64(c.gain), 0)
	for i := range c.sections {
		h *= c.sections[i].coeffs.Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *ChainT[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.AmplitudeToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
