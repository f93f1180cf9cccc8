package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/internal/config"
	"github.com/cwbudde/algo-peq/internal/testutil"
	"github.com/cwbudde/algo-peq/internal/wavio"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level=error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseBandFlag(t *testing.T) {
	def := config.DefaultBandConfig()

	tests := []struct {
		in   string
		want config.BandConfig
	}{
		{"peak:1000:6:0.7", config.BandConfig{Type: "peak", Frequency: 1000, GainDB: 6, Q: 0.7}},
		{"notch:60::8", config.BandConfig{Type: "notch", Frequency: 60, GainDB: def.GainDB, Q: 8}},
		{"lowpass", config.BandConfig{Type: "lowpass", Frequency: def.Frequency, GainDB: def.GainDB, Q: def.Q}},
		{"volume::-6", config.BandConfig{Type: "volume", Frequency: def.Frequency, GainDB: -6, Q: def.Q}},
	}

	for _, tt := range tests {
		got, err := parseBandFlag(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", ":100", "peak:1:2:3:4", "peak:abc", "comb:100"} {
		_, err := parseBandFlag(bad)
		require.Error(t, err, bad)
	}

	_, err := parseBandFlag("comb")
	require.ErrorIs(t, err, eq.ErrUnknownType)
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	for _, name := range eq.TypeNames() {
		require.Contains(t, out, name)
	}
	require.Equal(t, len(eq.Types())+1, strings.Count(out, "\n"))
}

func TestResponseCommand(t *testing.T) {
	out, err := run(t, "response", "--band", "peak:1000:6:1", "--points", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "Magnitude")
}

func TestResponseRejectsOutOfRangeBand(t *testing.T) {
	_, err := run(t, "response", "--band", "peak:1000:40:1")
	require.ErrorIs(t, err, eq.ErrOutOfRange)
}

func TestPolesCommand(t *testing.T) {
	out, err := run(t, "poles", "--band", "peak:1000:6:1", "--band", "notch:60::8")
	require.NoError(t, err)
	require.Contains(t, out, "band 1 Peak")
	require.Contains(t, out, "band 2 Notch")
	require.Equal(t, 2, strings.Count(out, "  stable: true"))
	require.Contains(t, out, "cascade stable: true")
}

func TestImpulseCommand(t *testing.T) {
	out, err := run(t, "impulse", "--band", "volume::-6")
	require.NoError(t, err)
	require.Equal(t, "0\t0.501187234\n1\t0\n", out)

	out, err = run(t, "impulse", "--band", "lowpass:1000::0.7", "--spectrum")
	require.NoError(t, err)
	require.Contains(t, out, "Bin")
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	src := &wavio.Audio{
		SampleRate: 48000,
		Data: [][]float64{
			testutil.DeterministicSine(440, 48000, 0.5, 3000),
			testutil.DeterministicSine(880, 48000, 0.25, 3000),
		},
	}
	require.NoError(t, wavio.WriteFile(in, src, 24))

	_, err := run(t, "process", "--band", "volume::-6.0206", "--bit-depth", "24", in, out)
	require.NoError(t, err)

	got, err := wavio.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, 24, got.BitDepth)
	require.Equal(t, 3000, got.Frames())

	for ch := range src.Data {
		want := make([]float64, len(src.Data[ch]))
		for i, v := range src.Data[ch] {
			want[i] = v / 2
		}
		testutil.RequireSliceNearlyEqual(t, got.Data[ch], want, 1e-5)
	}
}

func TestProcessMissingInput(t *testing.T) {
	_, err := run(t, "process", filepath.Join(t.TempDir(), "nope.wav"), "out.wav")
	require.Error(t, err)
}
