// Package polyroot provides the closed-form quadratic solver used for biquad
// poles and zeros, plus small polynomial helpers.
package polyroot

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-peq/dsp/core"
)

// Quadratic returns the complex roots of c2*x^2 + c1*x + c0.
//
// Degenerate polynomials follow a fixed policy:
//
//	c2 = c1 = c0 = 0  -> [0]     (every x solves it; 0 stands in)
//	c2 = c1 = 0       -> []      (no solution)
//	c2 = 0            -> [-c0/c1]
//
// A repeated root (zero discriminant) is returned once. The order of two
// distinct roots is not significant.
func Quadratic[F core.Float](c2, c1, c0 F) []complex128 {
	if c2 == 0 {
		if c1 == 0 {
			if c0 == 0 {
				return []complex128{0}
			}
			return nil
		}
		return []complex128{complex(float64(-c0/c1), 0)}
	}

	p := c1 / c2
	q := c0 / c2
	rootArg := p*p/4 - q
	pHalf := complex(float64(p*0.5), 0)
	if rootArg == 0 {
		return []complex128{-pHalf}
	}

	rootVal := cmplx.Sqrt(complex(float64(rootArg), 0))
	return []complex128{-pHalf - rootVal, -pHalf + rootVal}
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
