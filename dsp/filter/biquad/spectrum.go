package biquad

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-peq/dsp/core"
)

// ErrInvalidFFTSize is returned by ImpulseSpectrum for sizes that are not
// a power of two or are shorter than the impulse response.
var ErrInvalidFFTSize = errors.New("biquad: invalid FFT size")

const minSpectrumSize = 16

// ImpulseSpectrum returns the n-point DFT of an impulse response,
// zero-padded to n. Bin k corresponds to the frequency k*sampleRate/n, so
// for an impulse response that has decayed the result matches the transfer
// function sampled on that grid. n <= 0 picks the next power of two that
// holds ir.
func ImpulseSpectrum[F core.Float](ir []F, n int) ([]complex128, error) {
	if n <= 0 {
		n = nextPowerOf2(max(len(ir), minSpectrumSize))
	}

	if n&(n-1) != 0 || n < len(ir) {
		return nil, fmt.Errorf("%w: %d for %d samples", ErrInvalidFFTSize, n, len(ir))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("biquad: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(float64(v), 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("biquad: forward FFT failed: %w", err)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
