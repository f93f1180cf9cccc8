package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// ErrInvalidFilterDesign is returned when the normalization divisor a0 of a
// design is zero or not finite.
var ErrInvalidFilterDesign = errors.New("design: invalid filter design")

// Volume designs a pure gain stage of gainDB decibels.
func Volume[F core.Float](gainDB F) biquad.CoefficientsT[F] {
	return biquad.VolumeLinear(core.DBToAmplitude(gainDB))
}

// Bypass returns identity coefficients.
func Bypass[F core.Float]() biquad.CoefficientsT[F] {
	return biquad.Passthrough[F]()
}

// Lowpass designs a resonant lowpass biquad at freq (Hz) with quality
// factor q.
func Lowpass[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)
	oneMinusCos := 1 - cw

	return normalize(
		oneMinusCos/2, oneMinusCos, oneMinusCos/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Highpass designs a resonant highpass biquad at freq (Hz) with quality
// factor q.
func Highpass[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)
	onePlusCos := 1 + cw

	return normalize(
		onePlusCos/2, -onePlusCos, onePlusCos/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Bandpass designs a bandpass biquad with 0 dB gain at freq.
func Bandpass[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)

	return normalize(
		alpha, 0, -alpha,
		1+alpha, -2*cw, 1-alpha,
	)
}

// BandpassSkirt designs a constant-skirt-gain bandpass biquad. Its peak
// gain equals q.
func BandpassSkirt[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)
	b0 := q * alpha

	return normalize(
		b0, 0, -b0,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Allpass designs an allpass biquad centered at freq (Hz).
func Allpass[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)

	return normalize(
		1-alpha, -2*cw, 1+alpha,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch[F core.Float](freq, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	alpha, cw := alphaAndCos(freq, q, sampleRate)

	return normalize(
		1, -2*cw, 1,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak[F core.Float](freq, gainDB, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	return PeakLinear(freq, core.DBToAmplitude(gainDB), q, sampleRate)
}

// PeakLinear designs a peaking-EQ biquad with a linear gain.
func PeakLinear[F core.Float](freq, gain, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	a := sqrt(gain)
	alpha, cw := alphaAndCos(freq, q, sampleRate)

	return normalize(
		1+alpha*a, -2*cw, 1-alpha*a,
		1+alpha/a, -2*cw, 1-alpha/a,
	)
}

// LowShelf designs a low-shelf biquad with gain in dB.
func LowShelf[F core.Float](freq, gainDB, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	return LowShelfLinear(freq, core.DBToAmplitude(gainDB), q, sampleRate)
}

// LowShelfLinear designs a low-shelf biquad with a linear gain.
func LowShelfLinear[F core.Float](freq, gain, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	a := sqrt(gain)
	alpha, cw := alphaAndCos(freq, q, sampleRate)
	beta := 2 * sqrt(a) * alpha

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

// HighShelf designs a high-shelf biquad with gain in dB.
func HighShelf[F core.Float](freq, gainDB, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	return HighShelfLinear(freq, core.DBToAmplitude(gainDB), q, sampleRate)
}

// HighShelfLinear designs a high-shelf biquad with a linear gain.
func HighShelfLinear[F core.Float](freq, gain, q, sampleRate F) (biquad.CoefficientsT[F], error) {
	a := sqrt(gain)
	alpha, cw := alphaAndCos(freq, q, sampleRate)
	beta := 2 * sqrt(a) * alpha

	return normalize(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

// alphaAndCos returns alpha = sin(w0)/(2q) and cos(w0) for w0 = 2*pi*freq/fs.
func alphaAndCos[F core.Float](freq, q, sampleRate F) (alpha, cw F) {
	w0 := float64(core.Omega(freq, sampleRate))
	return F(math.Sin(w0)) / (2 * q), F(math.Cos(w0))
}

func sqrt[F core.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

func normalize[F core.Float](b0, b1, b2, a0, a1, a2 F) (biquad.CoefficientsT[F], error) {
	a := float64(a0)
	if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return biquad.CoefficientsT[F]{}, fmt.Errorf("%w: a0 = %v", ErrInvalidFilterDesign, a0)
	}

	inv := 1 / a0

	return biquad.CoefficientsT[F]{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}, nil
}
