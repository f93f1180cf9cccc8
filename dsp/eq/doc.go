// Package eq models the parameters of a single equalizer band.
//
// A band is described either as a flat [Params] record (the shape exchanged
// with parameter hosts and configuration files) or as a [Band], a tagged
// union with one payload type per filter [Type]. [Params.Band] projects a
// record onto its variant and [Params.SetBand] writes a variant back.
//
// Gains are held as [Gain] (amplitude or dB) and frequencies as [Frequency]
// (Hz or log10 Hz); both convert losslessly through dsp/core. The package
// performs no clamping: parameter domains are described by [Limits] and are
// the caller's responsibility.
package eq
