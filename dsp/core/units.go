package core

import "math"

// AmplitudeToDB converts a linear amplitude to dB (20*log10 convention).
// Non-positive amplitudes map to -Inf.
func AmplitudeToDB[F Float](amplitude F) F {
	if amplitude > 0 {
		return 20 * F(math.Log10(float64(amplitude)))
	}

	return F(math.Inf(-1))
}

// DBToAmplitude converts dB to a linear amplitude. -Inf maps to exactly 0.
func DBToAmplitude[F Float](db F) F {
	if math.IsInf(float64(db), -1) {
		return 0
	}

	return F(math.Pow(10, float64(db*0.05)))
}

// FrequencyToLog maps a frequency in Hz to log10(Hz). Non-positive
// frequencies map to -Inf.
func FrequencyToLog[F Float](hz F) F {
	if hz > 0 {
		return F(math.Log10(float64(hz)))
	}

	return F(math.Inf(-1))
}

// LogToFrequency is the inverse of FrequencyToLog; 10^-Inf is 0.
func LogToFrequency[F Float](logHz F) F {
	return F(math.Pow(10, float64(logHz)))
}

// Omega returns the normalized angular frequency 2*pi*f/fs in radians per
// sample.
func Omega[F Float](frequency, sampleRate F) F {
	return F(2*math.Pi) * (frequency / sampleRate)
}
