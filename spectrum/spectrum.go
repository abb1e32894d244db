// SPDX-License-Identifier: EPL-2.0

// Package spectrum measures where modulated energy lands in the baseband.
package spectrum

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/ik5/fmiq/modem"
	"hz.tools/rf"
)

// ErrTooShort is returned for fewer than two samples.
var ErrTooShort = errors.New("spectrum: at least two samples are required")

// MaxFFTSize caps the transform length PeakFrequency uses.
const MaxFFTSize = 1 << 16

// FFTSize is the largest power of two not above min(n, MaxFFTSize).
func FFTSize(n int) int {
	n = min(n, MaxFFTSize)
	if n < 2 {
		return 0
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

// PeakFrequency returns the signed frequency of the strongest FFT bin over
// the first FFTSize(len(samples)) samples. Resolution is
// sampleRate / FFTSize(len(samples)).
func PeakFrequency(samples []complex128, sampleRate float64) (rf.Hz, error) {
	n := FFTSize(len(samples))
	if n == 0 {
		return 0, fmt.Errorf("%w: got %d", ErrTooShort, len(samples))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("planning %d point fft: %w", n, err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, samples[:n]); err != nil {
		return 0, fmt.Errorf("running %d point fft: %w", n, err)
	}

	peak, best := 0, -1.0
	for k, v := range out {
		if p := real(v)*real(v) + imag(v)*imag(v); p > best {
			peak, best = k, p
		}
	}

	// upper half of the bins are negative frequencies
	if peak >= n/2 {
		peak -= n
	}

	return rf.Hz(float64(peak) * sampleRate / float64(n)), nil
}

// FromFrames converts modulator output to complex baseband, I + jQ.
func FromFrames(frames []modem.IQ) []complex128 {
	out := make([]complex128, len(frames))
	for i, f := range frames {
		out[i] = complex(f.I, f.Q)
	}

	return out
}

// FromIQ8 converts quantized output back to complex baseband.
func FromIQ8(b modem.IQ8) []complex128 {
	out := make([]complex128, b.Len())
	for i := range out {
		in, qn := b.Frame(i)
		out[i] = complex(float64(in)/modem.FullScale, float64(qn)/modem.FullScale)
	}

	return out
}
