// Package biquad provides biquad (second-order IIR) filter runtime primitives
// and analysis.
//
// A [SectionT] implements Direct Form I processing for a single second-order
// section defined by [CoefficientsT]. Sections can be cascaded via [ChainT]
// or [ProcessSequential] to build multiband equalizers.
//
// Analysis helpers evaluate the transfer function, poles and zeros,
// stability and impulse responses of single sections and cascades. Complex
// results are always complex128, regardless of the sample precision.
//
// Coefficient design (RBJ cookbook shapes) lives in dsp/filter/design.
package biquad
