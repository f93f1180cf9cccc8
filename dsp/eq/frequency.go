package eq

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-peq/dsp/core"
)

// Frequency is a band frequency stored either in Hz or as log10(Hz).
type Frequency[F core.Float] struct {
	value F
	log   bool
}

// Hz returns a frequency stored in Hz.
func Hz[F core.Float](hz F) Frequency[F] {
	return Frequency[F]{value: hz}
}

// LogHz returns a frequency stored as log10(Hz).
func LogHz[F core.Float](logHz F) Frequency[F] {
	return Frequency[F]{value: logHz, log: true}
}

// Hz returns the frequency in Hz.
func (f Frequency[F]) Hz() F {
	if f.log {
		return core.LogToFrequency(f.value)
	}
	return f.value
}

// LogHz returns log10 of the frequency in Hz.
func (f Frequency[F]) LogHz() F {
	if f.log {
		return f.value
	}
	return core.FrequencyToLog(f.value)
}

// IsLog reports whether the frequency is stored as log10(Hz).
func (f Frequency[F]) IsLog() bool { return f.log }

func convertFrequency[T, F core.Float](f Frequency[F]) Frequency[T] {
	return Frequency[T]{value: T(f.value), log: f.log}
}

var errBadFrequency = errors.New("eq: malformed frequency")

// FormatLogFrequency renders a log10(Hz) value as whole Hertz, e.g. "1000".
func FormatLogFrequency[F core.Float](logHz F) string {
	return strconv.FormatFloat(math.Round(float64(core.LogToFrequency(logHz))), 'f', -1, 64)
}

// ParseLogFrequency parses a Hertz string such as "440", "440Hz" or
// "440 Hz" and returns log10 of the value.
func ParseLogFrequency[F core.Float](s string) (F, error) {
	trimmed := strings.TrimSpace(s)
	if n := len(trimmed); n >= 2 && strings.EqualFold(trimmed[n-2:], "hz") {
		trimmed = strings.TrimSpace(trimmed[:n-2])
	}
	hz, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadFrequency, s)
	}
	return core.FrequencyToLog(F(hz)), nil
}
