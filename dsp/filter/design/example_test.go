package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peq/dsp/filter/design"
)

func ExamplePeak() {
	c, err := design.Peak(5000.0, 3.4, 10, 48000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("5000 Hz: %+.2f dB\n", c.MagnitudeDB(5000, 48000))
	fmt.Println("stable:", c.IsStable())
	// Output:
	// 5000 Hz: +3.40 dB
	// stable: true
}

func ExampleFromParams() {
	bands := []eq.Params[float64]{
		{Frequency: eq.Hz(100.0), Q: 0.7, Type: eq.TypeHighPass},
		{Gain: eq.GainDB(-6.0), Type: eq.TypeVolume},
	}

	coeffs := make([]biquad.Coefficients, len(bands))
	for i, p := range bands {
		c, err := design.FromParams(p, 48000)
		if err != nil {
			panic(err)
		}
		coeffs[i] = c
	}

	chain := biquad.NewChain(coeffs)
	fmt.Printf("10 kHz: %.2f dB\n", chain.MagnitudeDB(10000, 48000))
	// Output:
	// 10 kHz: -6.00 dB
}
