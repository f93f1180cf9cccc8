// Package core provides the numeric foundation shared by the equalizer
// packages: the Float precision constraint, unit conversions and processor
// options.
package core

import algofft "github.com/MeKo-Christian/algo-fft"

// Float is the sample and coefficient precision accepted throughout the
// module (float32 or float64). Both precisions run the same algebra; only
// the rounding differs.
type Float interface {
	algofft.Float
}
