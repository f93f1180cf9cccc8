package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/internal/polyroot"
)

// PoleZeroPair stores the poles and zeros of one biquad section. A repeated
// root is listed once; degenerate numerators follow [polyroot.Quadratic].
type PoleZeroPair struct {
	Poles []complex128
	Zeros []complex128
}

// Poles returns the z-plane poles of the section, the roots of
//
//	z^2 + A1*z + A2 = 0
func (c CoefficientsT[F]) Poles() []complex128 {
	return polyroot.Quadratic(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section, the roots of
//
//	B0*z^2 + B1*z + B2 = 0
//
// A pure gain of zero (all numerator coefficients zero) reports a single
// zero at the origin.
func (c CoefficientsT[F]) Zeros() []complex128 {
	return polyroot.Quadratic(c.B0, c.B1, c.B2)
}

// PoleZero returns both poles and zeros for a single section.
func (c CoefficientsT[F]) PoleZero() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// IsStable reports whether every pole lies strictly inside the unit circle.
// Poles on the circle (marginal stability) are reported unstable.
func (c CoefficientsT[F]) IsStable() bool {
	for _, p := range c.Poles() {
		if !(cmplx.Abs(p) < 1) {
			return false
		}
	}

	return true
}

// Poles returns the poles of c.
func Poles[F core.Float](c CoefficientsT[F]) []complex128 { return c.Poles() }

// Zeros returns the zeros of c.
func Zeros[F core.Float](c CoefficientsT[F]) []complex128 { return c.Zeros() }

// IsStable reports whether c is a stable filter.
func IsStable[F core.Float](c CoefficientsT[F]) bool { return c.IsStable() }

// AllStable reports whether every coefficient set in the cascade is stable.
func AllStable[F core.Float](coeffs []CoefficientsT[F]) bool {
	for i := range coeffs {
		if !coeffs[i].IsStable() {
			return false
		}
	}

	return true
}

// PoleZeroPairs returns one pole/zero entry per coefficient set.
func PoleZeroPairs[F core.Float](coeffs []CoefficientsT[F]) []PoleZeroPair {
	out := make([]PoleZeroPair, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].PoleZero()
	}
	return out
}

// PoleZeroPairs returns one pole/zero entry per chain section.
func (c *ChainT[F]) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].coeffs.PoleZero()
	}
	return out
}
