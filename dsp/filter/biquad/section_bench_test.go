package biquad

import (
	"fmt"
	"testing"
)

var benchCoeffs = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func benchSignal(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = float64(i%97)*0.01 - 0.5
	}
	return buf
}

func BenchmarkProcessSample(b *testing.B) {
	b.Run("float64", func(b *testing.B) {
		s := NewSection(benchCoeffs)
		x := 1.0
		for b.Loop() {
			x = s.ProcessSample(x)
		}
		_ = x
	})
	b.Run("float32", func(b *testing.B) {
		s := NewSection32(ConvertCoefficients[float32](benchCoeffs))
		x := float32(1)
		for b.Loop() {
			x = s.ProcessSample(x)
		}
		_ = x
	})
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, size := range []int{64, 512, 4096} {
		b.Run(fmt.Sprintf("kernel/N=%d", size), func(b *testing.B) {
			s := NewSection(benchCoeffs)
			buf := benchSignal(size)
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				s.ProcessBlock(buf)
			}
		})
		b.Run(fmt.Sprintf("scalar/N=%d", size), func(b *testing.B) {
			s := NewSection(benchCoeffs)
			buf := benchSignal(size)
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				s.processBlockScalar(buf)
			}
		})
	}
}

// BenchmarkCascade runs an eight-band cascade, the default equalizer size.
func BenchmarkCascade(b *testing.B) {
	coeffs := make([]Coefficients, 8)
	for i := range coeffs {
		coeffs[i] = benchCoeffs
	}

	b.Run("ProcessSample", func(b *testing.B) {
		c := NewChain(coeffs)
		x := 0.5
		for b.Loop() {
			x = c.ProcessSample(x)
		}
		_ = x
	})
	b.Run("ProcessBlock", func(b *testing.B) {
		c := NewChain(coeffs)
		buf := benchSignal(1024)
		b.SetBytes(int64(len(buf) * 8))
		for b.Loop() {
			c.ProcessBlock(buf)
		}
	})
}

func BenchmarkMultibandImpulseResponse(b *testing.B) {
	coeffs := []Coefficients{smoothLowpass(), benchCoeffs}
	b.ReportAllocs()
	for b.Loop() {
		_ = MultibandImpulseResponse(coeffs, DefaultImpulseEps, DefaultImpulseHold, DefaultImpulseMaxLength)
	}
}
