// Command peq designs, analyzes and applies parametric equalizers.
//
// Usage:
//
//	peq types
//	peq response --band peak:1000:6:0.7 --points 32
//	peq poles --band lowshelf:120:4:0.7 --band notch:60::8
//	peq impulse --band highpass:80::0.707 --spectrum
//	peq process -c peq.yaml in.wav out.wav
//
// Bands come from the configuration file (see internal/config) unless
// --band flags are given. A band is written type:frequency:gain:q with
// frequency in Hz and gain in dB; empty fields keep the defaults of a
// -3 dB peak at 1 kHz, Q 0.7.
package main

import (
	"os"

	"github.com/cwbudde/algo-peq/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
