// Package peq implements a multiband parametric equalizer built from a
// cascade of biquad sections, one per band.
//
// Parameter changes happen on a control goroutine: [EqualizerT.SetBand]
// designs the new coefficients, rejects unstable ones (keeping the previous
// filter) and publishes a snapshot through a [handoff.TripleBuffer]. The
// audio goroutine picks the latest snapshot up at the start of
// [EqualizerT.ProcessBlock] without locking.
//
// Analysis methods (response, impulse response, poles and zeros) work on the
// control side and only include active bands.
package peq
