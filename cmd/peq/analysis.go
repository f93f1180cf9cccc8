package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peq/dsp/peq"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List filter types and the parameters they use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Index\tType\tFrequency\tGain\tQ")
			for _, t := range eq.Types() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", int(t), t,
					yesNo(t.HasFrequency()), yesNo(t.HasGain()), yesNo(t.HasQ()))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func newResponseCmd(a *app) *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the magnitude and phase response of the active bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.equalizer()
			if err != nil {
				return err
			}

			n := a.cfg.Analysis.ResponsePoints
			if cmd.Flags().Changed("points") {
				n = points
			}
			nyquist := core.ApplyProcessorOptions(a.cfg.ProcessorOptions()...).Nyquist()
			hi := math.Min(a.cfg.Analysis.MaxFrequency, nyquist)
			freqs := peq.LogFrequencies(n, a.cfg.Analysis.MinFrequency, hi)
			if freqs == nil {
				return fmt.Errorf("response: no frequencies for %d points in [%g, %g] Hz", n, a.cfg.Analysis.MinFrequency, hi)
			}

			return writeResponse(cmd.OutOrStdout(), e, freqs)
		},
	}

	cmd.Flags().IntVarP(&points, "points", "n", 0, "number of log-spaced frequencies (overrides the configuration)")
	return cmd
}

func writeResponse(w io.Writer, e *peq.Equalizer, freqs []float64) error {
	mags := e.MagnitudeDB(freqs)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Frequency [Hz]\tMagnitude [dB]\tPhase [deg]\t")
	for i, f := range freqs {
		phase := cmplx.Phase(e.Response(f)) * 180 / math.Pi
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.2f\t\n", f, mags[i], phase)
	}
	return tw.Flush()
}

func newPolesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "poles",
		Short: "Print poles, zeros and stability of every active band",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.equalizer()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			coeffs := e.Coefficients()
			for i, p := range e.Params() {
				if !p.Type.IsActive() || !e.Applied(i) {
					continue
				}
				c := coeffs[i]
				pz := c.PoleZero()
				fmt.Fprintf(w, "band %s\n", bandLabel(i, p))
				fmt.Fprintf(w, "  coefficients: b0=%.9g b1=%.9g b2=%.9g a1=%.9g a2=%.9g\n", c.B0, c.B1, c.B2, c.A1, c.A2)
				fmt.Fprintf(w, "  poles: %s\n", formatRoots(pz.Poles))
				fmt.Fprintf(w, "  zeros: %s\n", formatRoots(pz.Zeros))
				fmt.Fprintf(w, "  stable: %t\n", c.IsStable())
			}

			fmt.Fprintf(w, "cascade stable: %t\n", biquad.AllStable(e.ActiveCoefficients()))
			return nil
		},
	}
}

func formatRoots(roots []complex128) string {
	if len(roots) == 0 {
		return "none"
	}

	s := ""
	for i, r := range roots {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.6f%+.6fi (|z|=%.6f)", real(r), imag(r), cmplx.Abs(r))
	}
	return s
}

func newImpulseCmd(a *app) *cobra.Command {
	var spectrum bool

	cmd := &cobra.Command{
		Use:   "impulse",
		Short: "Print the impulse response of the active bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.equalizer()
			if err != nil {
				return err
			}

			an := a.cfg.Analysis
			ir := biquad.MultibandImpulseResponse(e.ActiveCoefficients(), an.ImpulseEps, an.ImpulseHold, an.ImpulseMaxLength)

			w := cmd.OutOrStdout()
			if !spectrum {
				for i, v := range ir {
					fmt.Fprintf(w, "%d\t%.9g\n", i, v)
				}
				return nil
			}

			bins, err := biquad.ImpulseSpectrum(ir, an.FFTSize)
			if err != nil {
				return err
			}
			return writeSpectrum(w, bins, e.SampleRate())
		},
	}

	cmd.Flags().BoolVar(&spectrum, "spectrum", false, "print the FFT magnitude of the impulse response instead")
	return cmd
}

func writeSpectrum(w io.Writer, bins []complex128, sampleRate float64) error {
	n := len(bins)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Bin\tFrequency [Hz]\tMagnitude [dB]\t")
	for k := 0; k <= n/2; k++ {
		f := float64(k) * sampleRate / float64(n)
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t\n", k, f, core.AmplitudeToDB(cmplx.Abs(bins[k])))
	}
	return tw.Flush()
}
