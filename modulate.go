// SPDX-License-Identifier: EPL-2.0

package fmiq

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/fmiq/audio"
	"github.com/ik5/fmiq/formats/aiff"
	"github.com/ik5/fmiq/formats/mp3"
	"github.com/ik5/fmiq/formats/vorbis"
	"github.com/ik5/fmiq/formats/wav"
	"github.com/ik5/fmiq/modem"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// LoadFile decodes path with the decoder registered for its extension and
// returns it as a mono buffer. A nil registry means DefaultRegistry.
func LoadFile(path string, reg *audio.Registry) (audio.Buffer, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.ForPath(path)
	if !ok {
		return audio.Buffer{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return buf, nil
}

// ModulateSource drains src, mixes it to mono and runs it through a
// pipeline built from cfg. src is not closed.
func ModulateSource(src audio.Source, cfg modem.Config, opts ...modem.Option) (modem.IQ8, error) {
	p, err := modem.NewPipeline(cfg, opts...)
	if err != nil {
		return nil, err
	}

	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
	if err != nil {
		return nil, err
	}

	return p.Run(buf)
}

// ModulateFile is LoadFile followed by a pipeline run.
func ModulateFile(path string, cfg modem.Config, opts ...modem.Option) (modem.IQ8, error) {
	p, err := modem.NewPipeline(cfg, opts...)
	if err != nil {
		return nil, err
	}

	buf, err := LoadFile(path, nil)
	if err != nil {
		return nil, err
	}

	return p.Run(buf)
}
