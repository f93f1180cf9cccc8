package polyroot

import (
	"math"
	"math/cmplx"
	"testing"
)

func almostEqual(valA, valB, tol float64) bool {
	if valA == valB {
		return true
	}

	diff := math.Abs(valA - valB)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(valA), math.Abs(valB))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

// containsAll reports whether got and want hold the same roots within tol,
// ignoring order.
func containsAll(got, want []complex128, tol float64) bool {
	if len(got) != len(want) {
		return false
	}

	used := make([]bool, len(want))
	for _, g := range got {
		found := false
		for j, w := range want {
			if !used[j] && cmplx.Abs(g-w) <= tol {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func TestQuadratic_Explicit(t *testing.T) {
	tests := []struct {
		name       string
		c2, c1, c0 float64
		want       []complex128
	}{
		{"all zero sentinel", 0, 0, 0, []complex128{0}},
		{"constant has no roots", 0, 0, 0.1, nil},
		{"linear", 0, 2, 6, []complex128{-3}},
		{"imaginary pair", 1.6, 0, 0.4, []complex128{complex(0, 0.5), complex(0, -0.5)}},
		{"real pair", 1, 0, -4, []complex128{-2, 2}},
		{"repeated root", 1, -2, 1, []complex128{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quadratic(tt.c2, tt.c1, tt.c0)
			if !containsAll(got, tt.want, 1e-12) {
				t.Fatalf("Quadratic(%v, %v, %v) = %v, want %v", tt.c2, tt.c1, tt.c0, got, tt.want)
			}
		})
	}
}

func TestQuadratic_Residuals(t *testing.T) {
	for _, c := range [][3]float64{
		{1.2, 2.3, 3.4},
		{-17.2, 23.5, 0.004},
		{1, -1.8, 0.81},
		{3.2, 0, 3.2},
	} {
		for _, r := range Quadratic(c[0], c[1], c[2]) {
			val := PolyEval([]complex128{complex(c[0], 0), complex(c[1], 0), complex(c[2], 0)}, r)
			if cmplx.Abs(val) > 1e-10 {
				t.Errorf("coeffs %v: p(%v) = %v, expected ~0", c, r, val)
			}
		}
	}
}

func TestQuadratic_ConjugatePairs(t *testing.T) {
	roots := Quadratic(1.0, -1.2, 0.45)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if !IsConjugate(roots[0], roots[1], ConjugateTol) {
		t.Fatalf("roots %v are not a conjugate pair", roots)
	}
}

func TestQuadratic_Float32(t *testing.T) {
	got := Quadratic[float32](1.6, 0, 0.4)
	want := []complex128{complex(0, 0.5), complex(0, -0.5)}
	if !containsAll(got, want, 1e-6) {
		t.Fatalf("Quadratic32 = %v, want %v", got, want)
	}

	if got := Quadratic[float32](0, 0, 0); len(got) != 1 || got[0] != 0 {
		t.Fatalf("float32 sentinel = %v, want [0]", got)
	}
}

func TestPolyEval(t *testing.T) {
	// p(z) = 2z^3 - 3z + 5, p(2) = 16 - 6 + 5 = 15
	coeff := []complex128{2, 0, -3, 5}

	val := PolyEval(coeff, 2)
	if !almostEqual(real(val), 15, 1e-12) || !almostEqual(imag(val), 0, 1e-12) {
		t.Errorf("PolyEval: expected 15, got %v", val)
	}
}

func TestIsConjugate(t *testing.T) {
	tests := []struct {
		a, b complex128
		want bool
	}{
		{complex(1, 2), complex(1, -2), true},
		{complex(1, 2), complex(1, 2), false},
		{complex(0.5, 0), complex(0.5, 0), true},
		{complex(1, 2), complex(1.1, -2), false},
	}

	for _, tt := range tests {
		if got := IsConjugate(tt.a, tt.b, ConjugateTol); got != tt.want {
			t.Errorf("IsConjugate(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
