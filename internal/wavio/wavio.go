// Package wavio reads and writes PCM WAV files as normalized float64
// channels.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

var (
	// ErrInvalidFile is returned for input that is not a WAV file.
	ErrInvalidFile = errors.New("wavio: invalid wav file")
	// ErrUnsupportedFormat is returned for WAV encodings other than 16, 24 or
	// 32 bit integer PCM.
	ErrUnsupportedFormat = errors.New("wavio: unsupported format")
)

// Audio is decoded audio. Data holds one slice per channel with samples
// scaled to [-1, 1).
type Audio struct {
	SampleRate int
	BitDepth   int
	Data       [][]float64
}

// Channels returns the channel count.
func (a *Audio) Channels() int { return len(a.Data) }

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Data) == 0 {
		return 0
	}
	return len(a.Data[0])
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d bit", ErrUnsupportedFormat, bitDepth)
}

// Read decodes a WAV stream.
func Read(r io.ReadSeeker) (*Audio, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidFile
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	bitDepth := int(d.BitDepth)
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFile, channels)
	}

	frames := len(buf.Data) / channels
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	a := &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Data:       make([][]float64, channels),
	}
	for ch := range a.Data {
		a.Data[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range channels {
			a.Data[ch][i] = float64(buf.Data[i*channels+ch]) * scale
		}
	}

	return a, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Write encodes a as integer PCM of the given bit depth. Samples are clipped
// to [-1, 1] and NaN is written as zero. All channels must have the same length.
func Write(w io.WriteSeeker, a *Audio, bitDepth int) error {
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}

	channels := a.Channels()
	if channels == 0 {
		return errors.New("wavio: no channels")
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("wavio: invalid sample rate %d", a.SampleRate)
	}

	frames := a.Frames()
	for ch, data := range a.Data {
		if len(data) != frames {
			return fmt.Errorf("wavio: channel %d has %d frames, want %d", ch, len(data), frames)
		}
	}

	full := float64(int64(1)<<(bitDepth-1) - 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  a.SampleRate,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: bitDepth,
	}
	for i := range frames {
		for ch := range channels {
			buf.Data[i*channels+ch] = int(math.Round(clip(a.Data[ch][i]) * full))
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, bitDepth, channels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	return enc.Close()
}

// clip limits v to [-1, 1]; NaN becomes silence.
func clip(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// WriteFile creates or truncates path and writes a to it.
func WriteFile(path string, a *Audio, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, a, bitDepth); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
