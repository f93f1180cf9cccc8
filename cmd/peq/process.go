package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/internal/log"
	"github.com/cwbudde/algo-peq/internal/wavio"
)

func newProcessCmd(a *app) *cobra.Command {
	var bitDepth int

	cmd := &cobra.Command{
		Use:   "process <in.wav> <out.wav>",
		Short: "Filter a WAV file through the equalizer",
		Long: "Filter every channel of a WAV file through its own equalizer. " +
			"Coefficients are designed for the sample rate of the input file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := wavio.ReadFile(args[0])
			if err != nil {
				return err
			}
			log.Infof("process: %s: %d channels, %d frames, %d Hz", args[0], in.Channels(), in.Frames(), in.SampleRate)

			depth := a.cfg.Audio.BitDepth
			if cmd.Flags().Changed("bit-depth") {
				depth = bitDepth
			}

			for ch, data := range in.Data {
				e, err := a.equalizer(core.WithSampleRate(float64(in.SampleRate)))
				if err != nil {
					return err
				}
				if ch == 0 {
					log.Infof("process: %d active bands", e.ActiveCount())
				}

				block := e.BlockSize()
				for start := 0; start < len(data); start += block {
					e.ProcessBlock(data[start:min(start+block, len(data))])
				}
			}

			if err := wavio.WriteFile(args[1], in, depth); err != nil {
				return err
			}
			log.Infof("process: wrote %s (%d bit)", args[1], depth)
			return nil
		},
	}

	cmd.Flags().IntVar(&bitDepth, "bit-depth", 0, "output bit depth 16, 24 or 32 (overrides the configuration)")
	return cmd
}
