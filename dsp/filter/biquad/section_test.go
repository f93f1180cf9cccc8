package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// simpleLowpass returns a two-tap average.
// H(z) = 0.5*(1 + z^-1).
func simpleLowpass() Coefficients {
	return Coefficients{B0: 0.5, B1: 0.5}
}

// smoothLowpass is a stable second-order section used across tests.
func smoothLowpass() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients() != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients(), c)
	}
	if st := s.State(); st != (State[float64]{}) {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(Passthrough[float64]())
	input := []float64{1, 0, -1, 0.5, 0.25}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DirectFormI(t *testing.T) {
	// Hand-traced direct form I with x = [1, 0, 0, 0]:
	//
	// n=0: y = 0.25*1                           = 0.25
	// n=1: y = 0.5*1 + 0.2*0.25                 = 0.55
	// n=2: y = 0.25*1 + 0.2*0.55 - 0.04*0.25    = 0.35
	// n=3: y = 0.2*0.35 - 0.04*0.55             = 0.048
	s := NewSection(smoothLowpass())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}

	st := s.State()
	if st.X != [2]float64{0, 0} {
		t.Errorf("input history = %v, want zeros", st.X)
	}
	if !almostEqual(st.Y[0], 0.048, eps) || !almostEqual(st.Y[1], 0.35, eps) {
		t.Errorf("output history = %v, want [0.048 0.35]", st.Y)
	}
}

func TestProcessSample_Float32(t *testing.T) {
	c := ConvertCoefficients[float32](smoothLowpass())
	s := NewSection32(c)

	want := []float32{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float32
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if math.Abs(float64(y-w)) > 1e-6 {
			t.Errorf("sample %d: got %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := smoothLowpass()

	s1 := NewSection(c)
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(c)
	block := make([]float64, len(input))
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}

	// Continuing with single samples after a block must pick up the state.
	if got, want := s2.ProcessSample(0.3), s1.ProcessSample(0.3); !almostEqual(got, want, eps) {
		t.Errorf("after block: got %.15f, want %.15f", got, want)
	}
}

func TestProcessBlock_Float32MatchesSample(t *testing.T) {
	c := ConvertCoefficients[float32](smoothLowpass())

	s1 := NewSection32(c)
	input := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2}
	ref := make([]float32, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection32(c)
	block := append([]float32(nil), input...)
	s2.ProcessBlock(block)

	for i := range block {
		if block[i] != ref[i] {
			t.Errorf("sample %d: ProcessBlock=%v, ProcessSample=%v", i, block[i], ref[i])
		}
	}
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	c := smoothLowpass()

	s1 := NewSection(c)
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(c)
	dst := make([]float64, len(input))
	s2.ProcessBlockTo(dst, input)

	for i := range dst {
		if !almostEqual(dst[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlockTo=%.15f, ProcessSample=%.15f", i, dst[i], ref[i])
		}
	}

	// Verify src was not modified.
	orig := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	for i := range input {
		if input[i] != orig[i] {
			t.Errorf("src modified at index %d", i)
		}
	}
}

func TestProcessSample_ZeroCoefficients(t *testing.T) {
	// Muted coefficients produce silence.
	s := NewSection(Muted[float64]())
	for i := range 10 {
		y := s.ProcessSample(1.0)
		if y != 0 {
			t.Errorf("sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_PureDelay(t *testing.T) {
	// B1=1: output = x[n-1]
	s := NewSection(Coefficients{B1: 1})
	input := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSample_VolumeLinear(t *testing.T) {
	s := NewSection(VolumeLinear(0.5))
	for _, x := range []float64{1, -2, 0.25} {
		if y := s.ProcessSample(x); y != 0.5*x {
			t.Errorf("ProcessSample(%v) = %v, want %v", x, y, 0.5*x)
		}
	}
}

func TestSetCoefficients_ResetState(t *testing.T) {
	s := NewSection(smoothLowpass())
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	s.SetCoefficients(Passthrough[float64](), true)
	if st := s.State(); st != (State[float64]{}) {
		t.Fatalf("state not cleared on reset: %+v", st)
	}
	if y := s.ProcessSample(0.7); y != 0.7 {
		t.Fatalf("passthrough after reset = %v, want 0.7", y)
	}
}

func TestSetCoefficients_KeepState(t *testing.T) {
	s := NewSection(smoothLowpass())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	before := s.State()

	// Pure delay reads x[n-1] from the preserved history.
	s.SetCoefficients(Coefficients{B1: 1}, false)
	if st := s.State(); st != before {
		t.Fatalf("state changed without reset: got %+v, want %+v", st, before)
	}
	if y := s.ProcessSample(0); y != 0.5 {
		t.Fatalf("delayed sample = %v, want 0.5", y)
	}
}

func TestReset(t *testing.T) {
	s := NewSection(smoothLowpass())

	s.ProcessSample(1)
	s.ProcessSample(0.5)

	if st := s.State(); st == (State[float64]{}) {
		t.Fatal("state should be non-zero after processing")
	}

	s.Reset()
	if st := s.State(); st != (State[float64]{}) {
		t.Fatalf("state not zero after reset: %v", st)
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(smoothLowpass())

	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()

	y3 := s.ProcessSample(-0.3)
	y4 := s.ProcessSample(0.7)

	// Restore state and reprocess; should get same results.
	s.SetState(saved)
	y3b := s.ProcessSample(-0.3)
	y4b := s.ProcessSample(0.7)

	if !almostEqual(y3, y3b, eps) {
		t.Errorf("sample 3: got %v after restore, want %v", y3b, y3)
	}
	if !almostEqual(y4, y4b, eps) {
		t.Errorf("sample 4: got %v after restore, want %v", y4b, y4)
	}
}

func TestProcessSample_StabilityLongRun(t *testing.T) {
	s := NewSection(smoothLowpass())
	s.ProcessSample(1)

	for range 10000 {
		s.ProcessSample(0)
	}

	st := s.State()
	if math.Abs(st.Y[0]) > 1e-100 || math.Abs(st.Y[1]) > 1e-100 {
		t.Errorf("state did not decay: %v", st)
	}
}

func TestProcessSample_SimpleLowpass(t *testing.T) {
	// Two-tap average: y[n] = 0.5*x[n] + 0.5*x[n-1]
	s := NewSection(simpleLowpass())
	input := []float64{1, 1, 1, 1}
	want := []float64{0.5, 1, 1, 1}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSequential(t *testing.T) {
	sections := []Section{
		*NewSection(simpleLowpass()),
		*NewSection(VolumeLinear(2.0)),
	}

	want := []float64{1, 2, 2}
	for i, w := range want {
		if y := ProcessSequential(sections, 1.0); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, w)
		}
	}

	if y := ProcessSequential[float64](nil, 0.3); y != 0.3 {
		t.Errorf("empty cascade = %v, want 0.3", y)
	}
}
