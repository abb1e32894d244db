// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio input side of the modulator.
//
// This package contains:
//   - Source interface for decoded PCM streams
//   - Decoder and Registry for picking a decoder by file extension
//   - MonoMixer for channel reduction
//   - Buffer and ReadAll for collecting a whole recording in memory
//
// # Source Interface
//
// Decoders under formats/ return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float64 values in [-1.0, 1.0].
//
// # Collecting a Recording
//
// The modulator works on a complete recording, not a stream. ReadAll pulls
// a Source to the end and returns a mono Buffer:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
//	// buf.Samples is mono, buf.SampleRate is the source rate
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("speech.WAV")
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is finished. ReadAll treats
// io.EOF as success and wraps any other error.
package audio
