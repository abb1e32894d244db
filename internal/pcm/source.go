// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/fmiq/utils"
)

// Reader is the part of the go-audio wav and aiff decoders Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source wraps a Reader and converts its integer samples to float64.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	bias       int
	intBuf     *goaudio.IntBuffer
}

// Option configures a Source.
type Option func(*Source)

// Unsigned marks samples as offset binary, as 8-bit WAV stores them.
func Unsigned() Option {
	return func(s *Source) {
		s.bias = 1 << (s.bitDepth - 1)
	}
}

// NewSource wraps dec. Format must report a positive rate and channel count.
func NewSource(dec Reader, bitDepth int, opts ...Option) (*Source, error) {
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels < 1 {
		return nil, ErrBadFormat
	}

	s := &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

// ReadSamples reads whole frames only; dst shorter than one frame returns
// io.ErrShortBuffer.
func (s *Source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, io.ErrShortBuffer
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("decoding pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.IntToFloat64(v-s.bias, s.bitDepth)
	}

	// a short read without an error is the end of the data chunk
	if n < want && err == nil {
		return n, io.EOF
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding pcm: %w", err)
	}

	return n, err
}

// Seekable returns r itself when it can seek, otherwise an in-memory copy.
// The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
