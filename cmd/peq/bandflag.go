package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-peq/internal/config"
)

// parseBandFlag parses type:frequency:gain:q. Trailing fields may be
// omitted and empty fields keep the defaults.
func parseBandFlag(s string) (config.BandConfig, error) {
	b := config.DefaultBandConfig()

	fields := strings.Split(s, ":")
	if len(fields) > 4 {
		return b, fmt.Errorf("band %q: too many fields", s)
	}
	if strings.TrimSpace(fields[0]) == "" {
		return b, fmt.Errorf("band %q: missing type", s)
	}
	b.Type = fields[0]

	targets := []*float64{&b.Frequency, &b.GainDB, &b.Q}
	for i, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return b, fmt.Errorf("band %q: %w", s, err)
		}
		*targets[i] = v
	}

	if _, err := b.Params(); err != nil {
		return b, fmt.Errorf("band %q: %w", s, err)
	}
	return b, nil
}
