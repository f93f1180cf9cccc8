package eq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-peq/dsp/eq"
)

func TestGainRepresentations(t *testing.T) {
	g := eq.GainDB(-6.0)
	require.True(t, g.IsDB())
	require.Equal(t, -6.0, g.DB())
	require.InDelta(t, 0.501187, g.Amplitude(), 1e-6)

	a := eq.GainAmplitude(0.0)
	require.False(t, a.IsDB())
	require.True(t, math.IsInf(a.DB(), -1))

	require.Equal(t, 0.0, eq.GainDB(math.Inf(-1)).Amplitude())
}

func TestFrequencyRepresentations(t *testing.T) {
	f := eq.LogHz(3.0)
	require.True(t, f.IsLog())
	require.InDelta(t, 1000, f.Hz(), 1e-9)

	h := eq.Hz(100.0)
	require.InDelta(t, 2, h.LogHz(), 1e-12)
	require.True(t, math.IsInf(eq.Hz(0.0).LogHz(), -1))
	require.Equal(t, 0.0, eq.LogHz(math.Inf(-1)).Hz())
}

func TestLogFrequencyStrings(t *testing.T) {
	require.Equal(t, "1000", eq.FormatLogFrequency(3.0))
	require.Equal(t, "20000", eq.FormatLogFrequency(eq.MaxLogFrequency))

	for _, s := range []string{"440", "440Hz", "440 Hz", " 440 Hz", "440 hz", "440HZ"} {
		v, err := eq.ParseLogFrequency[float64](s)
		require.NoError(t, err, s)
		require.InDelta(t, math.Log10(440), v, 1e-12, s)
	}

	for _, s := range []string{"loud", "440zH", "440 H", "Hz", ""} {
		_, err := eq.ParseLogFrequency[float64](s)
		require.Error(t, err, s)
	}
}

func TestParamsBandRoundTrip(t *testing.T) {
	base := eq.Params[float64]{
		Gain:      eq.GainDB(4.5),
		Frequency: eq.Hz(2500.0),
		Q:         1.3,
	}

	for _, typ := range eq.Types() {
		p := base
		p.Type = typ

		band := p.Band()
		require.Equal(t, typ, band.Type())

		var back eq.Params[float64]
		back.Gain = base.Gain
		back.Frequency = base.Frequency
		back.Q = base.Q
		back.SetBand(band)
		require.Equal(t, p, back, typ.String())
	}
}

func TestParamsSetBand_KeepsUnusedFields(t *testing.T) {
	p := eq.DefaultParams[float64]()
	p.SetBand(eq.Notch[float64]{Center: eq.Hz(5000.0), Q: 10})

	require.Equal(t, eq.TypeNotch, p.Type)
	require.Equal(t, 5000.0, p.Frequency.Hz())
	require.Equal(t, -3.0, p.Gain.DB(), "gain survives a switch to a gainless type")

	p.SetBand(eq.Volume[float64]{Gain: eq.GainDB(2.0)})
	require.Equal(t, eq.TypeVolume, p.Type)
	require.Equal(t, 5000.0, p.Frequency.Hz())
	require.Equal(t, 10.0, p.Q)
}

func TestParamsBand_Variants(t *testing.T) {
	p := eq.Params[float32]{Gain: eq.GainDB[float32](3), Frequency: eq.Hz[float32](800), Q: 0.9, Type: eq.TypeLowShelf}

	shelf, ok := p.Band().(eq.LowShelf[float32])
	require.True(t, ok)
	require.Equal(t, float32(800), shelf.Cutoff.Hz())
	require.Equal(t, float32(3), shelf.Gain.DB())

	p.Type = eq.Type(99)
	_, ok = p.Band().(eq.Bypassed[float32])
	require.True(t, ok)
}

func TestParamsOf(t *testing.T) {
	p := eq.ParamsOf[float64](eq.Bypassed[float64]{})
	require.Equal(t, eq.TypeBypassed, p.Type)
	require.Equal(t, 0.7, p.Q)
}

func TestConvertParams_RoundTrip(t *testing.T) {
	p32 := eq.Params[float32]{
		Gain:      eq.GainDB[float32](-3),
		Frequency: eq.Hz[float32](440),
		Q:         0.707,
		Type:      eq.TypePeak,
	}

	p64 := eq.ConvertParams[float64](p32)
	require.True(t, p64.Gain.IsDB())
	require.InDelta(t, 440, p64.Frequency.Hz(), 1e-9)

	back := eq.ConvertParams[float32](p64)
	require.Equal(t, p32, back)
}
