package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/peq"
	"github.com/cwbudde/algo-peq/internal/config"
	"github.com/cwbudde/algo-peq/internal/log"
)

type app struct {
	configPath string
	sampleRate float64
	logLevel   string
	bands      []string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "peq",
		Short:         "Design, analyze and apply parametric equalizers",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file (default: "+config.DefaultPath+" if present)")
	pf.Float64VarP(&a.sampleRate, "sample-rate", "s", 0, "design sample rate in Hz (overrides the configuration)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the configuration)")
	pf.StringArrayVarP(&a.bands, "band", "b", nil, "band as type:frequency:gain:q; repeat for more bands")

	root.AddCommand(
		newTypesCmd(),
		newResponseCmd(a),
		newPolesCmd(a),
		newImpulseCmd(a),
		newProcessCmd(a),
	)

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sample-rate") {
		cfg.Audio.SampleRate = a.sampleRate
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if len(a.bands) > 0 {
		cfg.Bands = cfg.Bands[:0]
		for _, s := range a.bands {
			b, err := parseBandFlag(s)
			if err != nil {
				return err
			}
			cfg.Bands = append(cfg.Bands, b)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetLevel(cfg.Level())
	a.cfg = cfg
	return nil
}

// equalizer builds and initializes an equalizer from the loaded bands.
// Extra options override the configured processor settings.
func (a *app) equalizer(opts ...core.ProcessorOption) (*peq.Equalizer, error) {
	bands, err := a.cfg.BandParams()
	if err != nil {
		return nil, err
	}

	e := peq.New(bands, append(a.cfg.ProcessorOptions(), opts...)...)
	ok, err := e.Initialize()
	if err != nil {
		return nil, err
	}
	if !ok {
		for i := range e.NumBands() {
			if !e.Applied(i) {
				log.Warnf("band %d: unstable coefficients rejected, band muted", i+1)
			}
		}
	}

	log.Debugf("equalizer: %d bands, %d active, %g Hz", e.NumBands(), e.ActiveCount(), e.SampleRate())
	return e, nil
}

func bandLabel(i int, p eq.Params[float64]) string {
	return fmt.Sprintf("%d %s", i+1, p.Type)
}
