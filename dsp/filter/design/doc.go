// Package design provides RBJ Audio-EQ-Cookbook biquad coefficient
// designers.
//
// The functions in this package produce normalized coefficients consumable
// by dsp/filter/biquad for runtime processing and analysis. [FromParams] and
// [FromBand] dispatch an equalizer band to its designer.
//
// Designers never substitute coefficients: a design whose normalization
// divisor a0 is zero or not finite returns an error wrapping
// [ErrInvalidFilterDesign].
package design
