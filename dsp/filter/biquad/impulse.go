package biquad

import "github.com/cwbudde/algo-peq/dsp/core"

// Defaults for impulse response plots.
const (
	DefaultImpulseEps       = 0.001
	DefaultImpulseHold      = 10
	DefaultImpulseMaxLength = 1024
)

// ImpulseResponse feeds a unit impulse through a fresh section built from c
// and records the output until hold+1 consecutive samples have magnitude
// <= eps, or maxLength samples have been produced.
//
// The trailing quiet run is then trimmed so the result ends exactly one
// sample after the last sample exceeding eps; a zero is appended when the
// loop stopped on a loud sample. The result never exceeds maxLength
// samples. maxLength <= 0 yields nil.
func ImpulseResponse[F core.Float](c CoefficientsT[F], eps F, hold, maxLength int) []F {
	s := NewSectionT(c)
	return impulseResponse(s.ProcessSample, eps, hold, maxLength)
}

// MultibandImpulseResponse is [ImpulseResponse] for a cascade. Each stage
// gets its own section; an empty cascade is the identity.
func MultibandImpulseResponse[F core.Float](coeffs []CoefficientsT[F], eps F, hold, maxLength int) []F {
	sections := NewChainT(coeffs).sections
	return impulseResponse(func(x F) F {
		return ProcessSequential(sections, x)
	}, eps, hold, maxLength)
}

func impulseResponse[F core.Float](process func(F) F, eps F, hold, maxLength int) []F {
	if maxLength <= 0 {
		return nil
	}

	out := make([]F, 1, min(maxLength, 64))
	out[0] = process(1)

	count := 0
	for count <= hold && len(out) < maxLength {
		y := process(0)
		if core.Abs(y) <= eps {
			count++
		} else {
			count = 0
		}
		out = append(out, y)
	}

	n := min(len(out)+1-count, maxLength)
	if n > len(out) {
		return append(out, make([]F, n-len(out))...)
	}

	return out[:n]
}

// ImpulseResponse computes n samples of the impulse response h[n]
// by feeding an impulse through the section. The filter state is
// saved and restored so this method does not modify the section.
func (s *SectionT[F]) ImpulseResponse(n int) []F {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]F, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The chain state is saved and restored.
func (c *ChainT[F]) ImpulseResponse(n int) []F {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	c.Reset()
	ir := make([]F, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}
	c.SetState(saved)
	return ir
}
