// Package config loads the YAML configuration of the peq tool.
package config

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/eq"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peq/dsp/peq"
	"github.com/cwbudde/algo-peq/internal/log"
)

// DefaultPath is tried when LoadConfig gets an empty path.
const DefaultPath = "peq.yaml"

// Environment variables that override file values.
const (
	EnvLogLevel   = "PEQ_LOG_LEVEL"
	EnvSampleRate = "PEQ_SAMPLE_RATE"
	EnvBlockSize  = "PEQ_BLOCK_SIZE"
)

// ErrInvalidConfig is matched by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the tool configuration.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Audio    AudioConfig    `yaml:"audio"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Bands    []BandConfig   `yaml:"bands"`
}

// AudioConfig holds processing settings.
type AudioConfig struct {
	SampleRate float64 `yaml:"sample_rate"` // Hz
	BlockSize  int     `yaml:"block_size"`  // frames per ProcessBlock call
	BitDepth   int     `yaml:"bit_depth"`   // WAV output: 16, 24 or 32
}

// AnalysisConfig holds settings of the analysis commands.
type AnalysisConfig struct {
	ImpulseEps       float64 `yaml:"impulse_eps"`
	ImpulseHold      int     `yaml:"impulse_hold"`
	ImpulseMaxLength int     `yaml:"impulse_max_length"`
	ResponsePoints   int     `yaml:"response_points"`
	MinFrequency     float64 `yaml:"min_frequency"`
	MaxFrequency     float64 `yaml:"max_frequency"`
	FFTSize          int     `yaml:"fft_size"` // 0 picks a size from the impulse length
}

// BandConfig is one equalizer band. Omitted keys take the values of
// [DefaultBandConfig].
type BandConfig struct {
	Type      string  `yaml:"type"`
	GainDB    float64 `yaml:"gain_db"`
	Frequency float64 `yaml:"frequency"` // Hz
	Q         float64 `yaml:"q"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Audio: AudioConfig{
			SampleRate: 48000,
			BlockSize:  1024,
			BitDepth:   24,
		},
		Analysis: AnalysisConfig{
			ImpulseEps:       biquad.DefaultImpulseEps,
			ImpulseHold:      biquad.DefaultImpulseHold,
			ImpulseMaxLength: biquad.DefaultImpulseMaxLength,
			ResponsePoints:   64,
			MinFrequency:     eq.MinFrequency,
			MaxFrequency:     eq.MaxFrequency,
		},
	}
}

// DefaultBandConfig mirrors [eq.DefaultParams].
func DefaultBandConfig() BandConfig {
	p := eq.DefaultParams[float64]()
	return BandConfig{
		Type:      p.Type.String(),
		GainDB:    p.Gain.DB(),
		Frequency: p.Frequency.Hz(),
		Q:         p.Q,
	}
}

// UnmarshalYAML fills omitted keys from DefaultBandConfig.
func (b *BandConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain BandConfig
	v := plain(DefaultBandConfig())
	if err := node.Decode(&v); err != nil {
		return err
	}
	*b = BandConfig(v)
	return nil
}

// Params converts the band to equalizer parameters.
func (b BandConfig) Params() (eq.Params[float64], error) {
	t, err := eq.ParseType(b.Type)
	if err != nil {
		return eq.Params[float64]{}, err
	}

	return eq.Params[float64]{
		Gain:      eq.GainDB(b.GainDB),
		Frequency: eq.Hz(b.Frequency),
		Q:         b.Q,
		Type:      t,
	}, nil
}

// LoadConfig reads the configuration at path. An empty path tries
// DefaultPath and falls back to the built-in defaults if it does not exist.
// Environment overrides are applied last, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		log.Debugf("config: loaded %s", path)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
		log.Debugf("config: %s overrides log_level", EnvLogLevel)
	}

	if v, ok := os.LookupEnv(EnvSampleRate); ok {
		sr, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSampleRate, err)
		}
		c.Audio.SampleRate = sr
		log.Debugf("config: %s overrides audio.sample_rate", EnvSampleRate)
	}

	if v, ok := os.LookupEnv(EnvBlockSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvBlockSize, err)
		}
		c.Audio.BlockSize = n
		log.Debugf("config: %s overrides audio.block_size", EnvBlockSize)
	}

	return nil
}

func invalid(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, v...))
}

// Validate checks every section. Band errors wrap the eq errors, so
// errors.Is(err, eq.ErrOutOfRange) works alongside ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return invalid("log_level %q", c.LogLevel)
	}

	a := c.Audio
	if !(a.SampleRate > 0) {
		return invalid("audio.sample_rate %v must be positive", a.SampleRate)
	}
	if a.BlockSize <= 0 {
		return invalid("audio.block_size %d must be positive", a.BlockSize)
	}
	switch a.BitDepth {
	case 16, 24, 32:
	default:
		return invalid("audio.bit_depth %d not one of 16, 24, 32", a.BitDepth)
	}

	an := c.Analysis
	if !(an.ImpulseEps > 0) {
		return invalid("analysis.impulse_eps %v must be positive", an.ImpulseEps)
	}
	if an.ImpulseHold < 0 {
		return invalid("analysis.impulse_hold %d is negative", an.ImpulseHold)
	}
	if an.ImpulseMaxLength <= 0 {
		return invalid("analysis.impulse_max_length %d must be positive", an.ImpulseMaxLength)
	}
	if an.ResponsePoints < 2 {
		return invalid("analysis.response_points %d below 2", an.ResponsePoints)
	}
	if !(an.MinFrequency > 0) || !(an.MaxFrequency > an.MinFrequency) {
		return invalid("analysis frequency range [%v, %v]", an.MinFrequency, an.MaxFrequency)
	}
	if an.FFTSize != 0 && (an.FFTSize < 16 || bits.OnesCount(uint(an.FFTSize)) != 1) {
		return invalid("analysis.fft_size %d is not a power of two >= 16", an.FFTSize)
	}

	if len(c.Bands) > peq.DefaultNumBands {
		return invalid("%d bands, at most %d", len(c.Bands), peq.DefaultNumBands)
	}
	for i, b := range c.Bands {
		p, err := b.Params()
		if err == nil {
			err = eq.Validate(p, eq.DefaultLimits)
		}
		if err != nil {
			return fmt.Errorf("%w: bands[%d]: %w", ErrInvalidConfig, i, err)
		}
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	l, _ := log.ParseLevel(c.LogLevel)
	return l
}

// BandParams returns the equalizer parameters of the configured bands,
// padded with [peq.DefaultBands] up to peq.DefaultNumBands.
func (c *Config) BandParams() ([]eq.Params[float64], error) {
	out := peq.DefaultBands[float64]()
	for i, b := range c.Bands {
		if i >= len(out) {
			return nil, invalid("%d bands, at most %d", len(c.Bands), len(out))
		}
		p, err := b.Params()
		if err != nil {
			return nil, fmt.Errorf("config: bands[%d]: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// ProcessorOptions carries the audio settings into dsp processors.
func (c *Config) ProcessorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(c.Audio.SampleRate),
		core.WithBlockSize(c.Audio.BlockSize),
	}
}
