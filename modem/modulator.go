// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"math"

	"github.com/ik5/fmiq/utils"
	"hz.tools/rf"
)

const tau = 2 * math.Pi

// IQ is one modulated sample before quantization.
type IQ struct {
	I, Q float64
}

// Modulator maps phase values onto the unit circle.
type Modulator struct {
	k         float64
	amplitude float64
}

// NewModulator builds a modulator for the given deviation, quadrature rate
// and amplitude. It does not validate its arguments; see Config.Validate.
func NewModulator(deviation rf.Hz, quadratureRate, amplitude float64) Modulator {
	return Modulator{
		k:         tau * float64(deviation) / quadratureRate,
		amplitude: amplitude,
	}
}

// K is the phase to radians factor, 2π × deviation / rate.
func (m Modulator) K() float64 { return m.k }

// Amplitude returns the configured amplitude.
func (m Modulator) Amplitude() float64 { return m.amplitude }

// Frame computes the clamped (I, Q) pair for a single phase value.
func (m Modulator) Frame(phase float64) IQ {
	theta := phase * m.k

	return IQ{
		I: utils.Clamp(m.amplitude*math.Sin(theta), -1, 1),
		Q: utils.Clamp(m.amplitude*math.Cos(theta), -1, 1),
	}
}

// Modulate returns one IQ per phase value.
func (m Modulator) Modulate(phase []float64) []IQ {
	frames := make([]IQ, len(phase))
	for i, p := range phase {
		frames[i] = m.Frame(p)
	}

	return frames
}
