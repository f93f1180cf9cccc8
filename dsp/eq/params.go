package eq

import "github.com/cwbudde/algo-peq/dsp/core"

// Params is the flat parameter record of one band. Fields a type does not
// consume (see [Type.HasGain], [Type.HasFrequency], [Type.HasQ]) are kept
// but ignored by coefficient design.
type Params[F core.Float] struct {
	Gain      Gain[F]
	Frequency Frequency[F]
	Q         F
	Type      Type
}

// DefaultParams returns the default band: a -3 dB peak at 1 kHz, Q 0.7.
func DefaultParams[F core.Float]() Params[F] {
	return Params[F]{
		Gain:      GainDB[F](-3),
		Frequency: Hz[F](1000),
		Q:         0.7,
		Type:      TypePeak,
	}
}

// ConvertParams converts a record to another precision, keeping the stored
// representation of gain and frequency.
func ConvertParams[T, F core.Float](p Params[F]) Params[T] {
	return Params[T]{
		Gain:      convertGain[T](p.Gain),
		Frequency: convertFrequency[T](p.Frequency),
		Q:         T(p.Q),
		Type:      p.Type,
	}
}

// Band projects the record onto the variant selected by p.Type.
// Types outside the defined range project to [Bypassed].
func (p Params[F]) Band() Band[F] {
	switch p.Type {
	case TypeVolume:
		return Volume[F]{Gain: p.Gain}
	case TypeLowPass:
		return LowPass[F]{Cutoff: p.Frequency, Q: p.Q}
	case TypeHighPass:
		return HighPass[F]{Cutoff: p.Frequency, Q: p.Q}
	case TypeBandPass:
		return BandPass[F]{Center: p.Frequency, Q: p.Q}
	case TypeAllPass:
		return AllPass[F]{Center: p.Frequency, Q: p.Q}
	case TypeNotch:
		return Notch[F]{Center: p.Frequency, Q: p.Q}
	case TypePeak:
		return Peak[F]{Center: p.Frequency, Gain: p.Gain, Q: p.Q}
	case TypeLowShelf:
		return LowShelf[F]{Cutoff: p.Frequency, Gain: p.Gain, Q: p.Q}
	case TypeHighShelf:
		return HighShelf[F]{Cutoff: p.Frequency, Gain: p.Gain, Q: p.Q}
	default:
		return Bypassed[F]{}
	}
}

// SetBand switches p to the type of b and writes the fields b carries.
// Fields b does not carry keep their previous values, so switching a band
// from Peak to Notch and back restores its gain.
func (p *Params[F]) SetBand(b Band[F]) {
	p.Type = b.Type()

	switch v := b.(type) {
	case Volume[F]:
		p.Gain = v.Gain
	case LowPass[F]:
		p.Frequency, p.Q = v.Cutoff, v.Q
	case HighPass[F]:
		p.Frequency, p.Q = v.Cutoff, v.Q
	case BandPass[F]:
		p.Frequency, p.Q = v.Center, v.Q
	case AllPass[F]:
		p.Frequency, p.Q = v.Center, v.Q
	case Notch[F]:
		p.Frequency, p.Q = v.Center, v.Q
	case Peak[F]:
		p.Frequency, p.Gain, p.Q = v.Center, v.Gain, v.Q
	case LowShelf[F]:
		p.Frequency, p.Gain, p.Q = v.Cutoff, v.Gain, v.Q
	case HighShelf[F]:
		p.Frequency, p.Gain, p.Q = v.Cutoff, v.Gain, v.Q
	}
}

// ParamsOf returns [DefaultParams] updated with b.
func ParamsOf[F core.Float](b Band[F]) Params[F] {
	p := DefaultParams[F]()
	p.SetBand(b)
	return p
}
