// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"hz.tools/sdr"
)

// iqChannels is I on the left channel and Q on the right.
const iqChannels = 2

// IQToPCM16 widens int8 I/Q frames to interleaved 16-bit samples. Each
// value is shifted into the high byte, so full scale stays full scale.
func IQToPCM16(frames sdr.SamplesI8) []int16 {
	out := make([]int16, iqChannels*len(frames))
	for i, f := range frames {
		out[2*i] = int16(f[0]) << 8
		out[2*i+1] = int16(f[1]) << 8
	}

	return out
}

// WriteIQ16 encodes frames as a stereo 16-bit WAV using the go-audio
// encoder, which patches the header sizes on Close.
func WriteIQ16(ws io.WriteSeeker, sampleRate int, frames sdr.SamplesI8) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, iqChannels, formatPCM)

	data := make([]int, iqChannels*len(frames))
	for i, f := range frames {
		data[2*i] = int(f[0]) << 8
		data[2*i+1] = int(f[1]) << 8
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: iqChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding iq wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing iq wav: %w", err)
	}

	return nil
}

// StreamIQ16 is WriteIQ16 for writers that cannot seek, such as stdout.
func StreamIQ16(w io.Writer, sampleRate int, frames sdr.SamplesI8) error {
	return WritePCM16(w, sampleRate, iqChannels, IQToPCM16(frames))
}
