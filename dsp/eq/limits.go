package eq

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-peq/dsp/core"
)

// ErrOutOfRange is matched by every [RangeError].
var ErrOutOfRange = errors.New("eq: parameter out of range")

// Bounds of the default parameter domain.
const (
	MinGainDB       = -20.0
	MaxGainDB       = 20.0
	MinFrequency    = 10.0
	MaxFrequency    = 20000.0
	MinLogFrequency = 1.0                // log10(10)
	MaxLogFrequency = 4.3010299956639813 // log10(20000)
	MinQ            = 0.1
	MaxQ            = 10.0
)

// Limits is the parameter domain a calling layer enforces before handing
// parameters to coefficient design.
type Limits struct {
	MinGainDB, MaxGainDB       float64
	MinFrequency, MaxFrequency float64
	MinQ, MaxQ                 float64
}

// DefaultLimits is the domain used by the bundled tools.
var DefaultLimits = Limits{
	MinGainDB:    MinGainDB,
	MaxGainDB:    MaxGainDB,
	MinFrequency: MinFrequency,
	MaxFrequency: MaxFrequency,
	MinQ:         MinQ,
	MaxQ:         MaxQ,
}

// RangeError reports a parameter outside its [Limits].
type RangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("eq: %s %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Validate checks the fields p.Type consumes against l. NaN never passes.
func Validate[F core.Float](p Params[F], l Limits) error {
	if p.Type < 0 || p.Type >= numTypes {
		return fmt.Errorf("%w: index %d", ErrUnknownType, int(p.Type))
	}

	if p.Type.HasGain() {
		if err := checkRange("gain_db", float64(p.Gain.DB()), l.MinGainDB, l.MaxGainDB); err != nil {
			return err
		}
	}

	if p.Type.HasFrequency() {
		if err := checkRange("frequency", float64(p.Frequency.Hz()), l.MinFrequency, l.MaxFrequency); err != nil {
			return err
		}
	}

	if p.Type.HasQ() {
		if err := checkRange("q", float64(p.Q), l.MinQ, l.MaxQ); err != nil {
			return err
		}
	}

	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if v >= lo && v <= hi {
		return nil
	}
	return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
}

// Clamp limits every field of p to l, keeping the stored representation of
// gain and frequency. NaN fields clamp to the lower bound.
func Clamp[F core.Float](p Params[F], l Limits) Params[F] {
	db := clampFloat(float64(p.Gain.DB()), l.MinGainDB, l.MaxGainDB)
	if p.Gain.IsDB() {
		p.Gain = GainDB(F(db))
	} else {
		p.Gain = GainAmplitude(core.DBToAmplitude(F(db)))
	}

	hz := clampFloat(float64(p.Frequency.Hz()), l.MinFrequency, l.MaxFrequency)
	if p.Frequency.IsLog() {
		p.Frequency = LogHz(core.FrequencyToLog(F(hz)))
	} else {
		p.Frequency = Hz(F(hz))
	}

	p.Q = F(clampFloat(float64(p.Q), l.MinQ, l.MaxQ))
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return core.Clamp(v, lo, hi)
}
