package eq

import "github.com/cwbudde/algo-peq/dsp/core"

// Band is the tagged union of band variants. Each variant carries exactly
// the parameters its filter type consumes. The set of variants is closed.
type Band[F core.Float] interface {
	Type() Type
	isBand()
}

// Volume scales the signal by Gain at every frequency.
type Volume[F core.Float] struct {
	Gain Gain[F]
}

// LowPass is a resonant second-order low-pass.
type LowPass[F core.Float] struct {
	Cutoff Frequency[F]
	Q      F
}

// HighPass is a resonant second-order high-pass.
type HighPass[F core.Float] struct {
	Cutoff Frequency[F]
	Q      F
}

// BandPass passes a band around Center with unity peak gain.
type BandPass[F core.Float] struct {
	Center Frequency[F]
	Q      F
}

// AllPass has unity magnitude and a phase transition at Center.
type AllPass[F core.Float] struct {
	Center Frequency[F]
	Q      F
}

// Notch rejects a narrow band around Center.
type Notch[F core.Float] struct {
	Center Frequency[F]
	Q      F
}

// Peak boosts or cuts a band around Center by Gain.
type Peak[F core.Float] struct {
	Center Frequency[F]
	Gain   Gain[F]
	Q      F
}

// LowShelf boosts or cuts everything below Cutoff by Gain.
type LowShelf[F core.Float] struct {
	Cutoff Frequency[F]
	Gain   Gain[F]
	Q      F
}

// HighShelf boosts or cuts everything above Cutoff by Gain.
type HighShelf[F core.Float] struct {
	Cutoff Frequency[F]
	Gain   Gain[F]
	Q      F
}

// Bypassed is a band that is not applied.
type Bypassed[F core.Float] struct{}

func (Volume[F]) Type() Type    { return TypeVolume }
func (LowPass[F]) Type() Type   { return TypeLowPass }
func (HighPass[F]) Type() Type  { return TypeHighPass }
func (BandPass[F]) Type() Type  { return TypeBandPass }
func (AllPass[F]) Type() Type   { return TypeAllPass }
func (Notch[F]) Type() Type     { return TypeNotch }
func (Peak[F]) Type() Type      { return TypePeak }
func (LowShelf[F]) Type() Type  { return TypeLowShelf }
func (HighShelf[F]) Type() Type { return TypeHighShelf }
func (Bypassed[F]) Type() Type  { return TypeBypassed }

func (Volume[F]) isBand()    {}
func (LowPass[F]) isBand()   {}
func (HighPass[F]) isBand()  {}
func (BandPass[F]) isBand()  {}
func (AllPass[F]) isBand()   {}
func (Notch[F]) isBand()     {}
func (Peak[F]) isBand()      {}
func (LowShelf[F]) isBand()  {}
func (HighShelf[F]) isBand() {}
func (Bypassed[F]) isBand()  {}
