package biquad

import "github.com/cwbudde/algo-peq/dsp/core"

// CoefficientsT holds the normalized transfer function coefficients of a
// single second-order section. a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type CoefficientsT[F core.Float] struct {
	B0, B1, B2 F // feedforward (numerator)
	A1, A2     F // feedback (denominator)
}

// Coefficients is the float64 specialization.
type Coefficients = CoefficientsT[float64]

// Coefficients32 is the float32 specialization.
type Coefficients32 = CoefficientsT[float32]

// Passthrough returns unity-gain identity coefficients.
func Passthrough[F core.Float]() CoefficientsT[F] {
	return CoefficientsT[F]{B0: 1}
}

// Muted returns coefficients that output silence.
func Muted[F core.Float]() CoefficientsT[F] {
	return CoefficientsT[F]{}
}

// VolumeLinear returns a pure gain stage with the given linear amplitude.
func VolumeLinear[F core.Float](amplitude F) CoefficientsT[F] {
	return CoefficientsT[F]{B0: amplitude}
}

// ConvertCoefficients converts coefficients between precisions.
func ConvertCoefficients[T, F core.Float](c CoefficientsT[F]) CoefficientsT[T] {
	return CoefficientsT[T]{
		B0: T(c.B0), B1: T(c.B1), B2: T(c.B2),
		A1: T(c.A1), A2: T(c.A2),
	}
}
