// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math"
	"slices"

	"github.com/oov/audio/resampler"
)

const (
	// MinQuality is the fastest, shortest FIR.
	MinQuality = 0
	// MaxQuality is the slowest, longest FIR.
	MaxQuality = 10
	// DefaultQuality is used when no quality is configured.
	DefaultQuality = MaxQuality

	// maxRatio bounds the conversion ratio in either direction.
	maxRatio = 1024
)

// filterTaps is the base FIR length for each quality level. When
// downsampling the filter is stretched by oldRate/newRate.
var filterTaps = [MaxQuality + 1]int{8, 16, 32, 48, 64, 80, 96, 128, 160, 192, 256}

type resampleConfig struct {
	quality int
}

// ResampleOption configures Resample.
type ResampleOption func(*resampleConfig)

// WithQuality selects the FIR quality level. Values outside
// MinQuality..MaxQuality make Resample fail.
func WithQuality(q int) ResampleOption {
	return func(cfg *resampleConfig) {
		cfg.quality = q
	}
}

// FilterDelay is the upper bound, in output samples, of the group delay the
// FIR adds for a given conversion. It is zero for identity conversions and
// for arguments Resample would reject.
func FilterDelay(oldRate, newRate float64, quality int) int {
	if quality < MinQuality || quality > MaxQuality || !positiveFinite(oldRate) || !positiveFinite(newRate) {
		return 0
	}

	if oldRate == newRate {
		return 0
	}

	taps := float64(filterTaps[quality])
	if oldRate > newRate {
		taps *= oldRate / newRate
	}

	// half the filter in input samples, expressed at the output rate
	return int(math.Ceil(taps/2*newRate/oldRate)) + 1
}

// ResampleCapacity is the buffer size Resample allocates for n input samples:
//
//	ceil(n × newRate/oldRate) + FilterDelay(oldRate, newRate, quality)
//
// The returned slice is always truncated to what the filter produced.
func ResampleCapacity(n int, oldRate, newRate float64, quality int) int {
	if n <= 0 || !positiveFinite(oldRate) || !positiveFinite(newRate) {
		return 0
	}

	return int(math.Ceil(float64(n)*newRate/oldRate)) + FilterDelay(oldRate, newRate, quality)
}

// Resample converts samples from oldRate to newRate with a polyphase FIR.
// Equal rates return a copy of the input. The input is never modified.
//
// The filter is not flushed: the last FilterDelay output samples worth of
// signal stay inside it. An input shorter than the filter delay therefore
// yields only the filter's startup transient, close to zero but not silent,
// and Normalize will scale that transient up to full scale.
func Resample(samples []float64, oldRate, newRate float64, opts ...ResampleOption) ([]float64, error) {
	cfg := resampleConfig{quality: DefaultQuality}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	in, ok := integralRate(oldRate)
	if !ok {
		return nil, fmt.Errorf("%w: invalid source rate %v", ErrResampling, oldRate)
	}

	out, ok := integralRate(newRate)
	if !ok {
		return nil, fmt.Errorf("%w: invalid target rate %v", ErrResampling, newRate)
	}

	if cfg.quality < MinQuality || cfg.quality > MaxQuality {
		return nil, fmt.Errorf("%w: quality %d outside %d..%d", ErrResampling, cfg.quality, MinQuality, MaxQuality)
	}

	ratio := float64(out) / float64(in)
	if ratio > maxRatio || ratio < 1.0/maxRatio {
		return nil, fmt.Errorf("%w: ratio %d/%d is out of range", ErrResampling, out, in)
	}

	if len(samples) == 0 {
		return []float64{}, nil
	}

	if in == out {
		return slices.Clone(samples), nil
	}

	r := resampler.New(1, in, out, cfg.quality)

	src := make([]float32, len(samples))
	for i, s := range samples {
		src[i] = float32(s)
	}

	dst := make([]float32, ResampleCapacity(len(src), float64(in), float64(out), cfg.quality))

	var read, written int
	for read < len(src) {
		if written == len(dst) {
			dst = append(dst, make([]float32, len(dst)/2+1)...)
		}

		rd, wr := r.ProcessFloat32(0, src[read:], dst[written:])
		if rd == 0 && wr == 0 {
			return nil, fmt.Errorf("%w: filter stalled after %d of %d samples", ErrResampling, read, len(src))
		}

		read += rd
		written += wr
	}

	result := make([]float64, written)
	for i, s := range dst[:written] {
		result[i] = float64(s)
	}

	return result, nil
}

// integralRate rounds rate to the integer Hz the FIR engine works in.
func integralRate(rate float64) (int, bool) {
	if !positiveFinite(rate) {
		return 0, false
	}

	r := int(math.Round(rate))

	return r, r > 0
}
