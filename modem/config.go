// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math"

	"hz.tools/rf"
)

// Rounding selects how the quantizer maps scaled values onto integers.
type Rounding int

const (
	// Truncate drops the fractional part (toward zero). This is what a plain
	// float to integer cast does and is the default.
	Truncate Rounding = iota

	// RoundHalfAwayFromZero rounds to the nearest integer, ties away from zero.
	RoundHalfAwayFromZero
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case RoundHalfAwayFromZero:
		return "round"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding is the inverse of Rounding.String.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "truncate", "trunc", "":
		return Truncate, nil
	case "round":
		return RoundHalfAwayFromZero, nil
	default:
		return 0, fmt.Errorf("%w: unknown rounding %q", ErrInvalidConfig, s)
	}
}

var (
	// DefaultDeviation is the frequency swing for a full scale sample.
	DefaultDeviation rf.Hz = 25 * rf.KHz

	// DefaultCenterFrequency is where the transmitter is tuned. The modem
	// never reads it; it travels with the config for the radio side.
	DefaultCenterFrequency rf.Hz = 207_000 * rf.KHz
)

const (
	// DefaultQuadratureRate is the I/Q rate in samples per second.
	DefaultQuadratureRate = 480_000.0

	// DefaultAmplitude scales the unit circle before quantization.
	DefaultAmplitude = 0.5

	// DefaultTxGain is the transmit VGA gain in dB.
	DefaultTxGain = 47
)

// Config holds every fixed value the pipeline needs. Nothing in it is
// derived from the input signal.
type Config struct {
	// QuadratureRate is the rate, in samples per second, at which phase and
	// I/Q values are computed.
	QuadratureRate float64

	// Deviation is the frequency offset produced by a full scale sample.
	Deviation rf.Hz

	// Amplitude scales sin/cos before they are clamped to [-1, 1].
	Amplitude float64

	// CenterFrequency, TxGain and AmpEnable are only used by the radio.
	CenterFrequency rf.Hz
	TxGain          uint32
	AmpEnable       bool

	// Rounding used by the quantizer.
	Rounding Rounding

	// ResampleQuality is the FIR quality level, MinQuality..MaxQuality.
	ResampleQuality int
}

// DefaultConfig returns the 480 kHz / 25 kHz / 0.5 configuration.
func DefaultConfig() Config {
	return Config{
		QuadratureRate:  DefaultQuadratureRate,
		Deviation:       DefaultDeviation,
		Amplitude:       DefaultAmplitude,
		CenterFrequency: DefaultCenterFrequency,
		TxGain:          DefaultTxGain,
		AmpEnable:       true,
		Rounding:        Truncate,
		ResampleQuality: DefaultQuality,
	}
}

// TransmitRate is the rate the transmitter has to be configured at: every
// quadrature sample expands to two interleaved values.
func (c Config) TransmitRate() float64 {
	return 2 * c.QuadratureRate
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !positiveFinite(c.QuadratureRate):
		return fmt.Errorf("%w: quadrature rate %v", ErrInvalidConfig, c.QuadratureRate)
	case !positiveFinite(float64(c.Deviation)):
		return fmt.Errorf("%w: deviation %v", ErrInvalidConfig, float64(c.Deviation))
	case !positiveFinite(c.Amplitude):
		return fmt.Errorf("%w: amplitude %v", ErrInvalidConfig, c.Amplitude)
	case c.CenterFrequency < 0:
		return fmt.Errorf("%w: center frequency %v", ErrInvalidConfig, float64(c.CenterFrequency))
	case c.Rounding != Truncate && c.Rounding != RoundHalfAwayFromZero:
		return fmt.Errorf("%w: rounding %v", ErrInvalidConfig, c.Rounding)
	case c.ResampleQuality < MinQuality || c.ResampleQuality > MaxQuality:
		return fmt.Errorf("%w: resample quality %d", ErrInvalidConfig, c.ResampleQuality)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
