// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultReadSize is the chunk, in frames, ReadAll pulls per call.
const DefaultReadSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxEmptyReads = 64

// Buffer is a complete mono recording held in memory.
type Buffer struct {
	Samples    []float64
	SampleRate float64
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Duration returns the play time of the buffer at its sample rate.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(b.Samples)) / b.SampleRate * float64(time.Second))
}

// ReadAll drains src into a mono Buffer, averaging channels when src is not
// mono. It does not close src.
func ReadAll(src Source, readSize int) (Buffer, error) {
	if readSize <= 0 {
		return Buffer{}, ErrInvalidReadSize
	}
	if src.SampleRate() <= 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidRate, src.SampleRate())
	}
	if src.Channels() < 1 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidChannels, src.Channels())
	}

	mono := NewMonoMixer(src)
	buf := make([]float64, readSize)
	out := Buffer{SampleRate: float64(src.SampleRate())}

	empty := 0
	for {
		n, err := mono.ReadSamples(buf)
		out.Samples = append(out.Samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Buffer{}, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return Buffer{}, ErrNoProgress
		}
	}

	return out, nil
}
