// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0]
//   - Channels: as encoded in the stream
//   - Sample rate: as encoded in the stream
//
// # Decoding
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // not Ogg Vorbis
//	}
//
//	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
//
// ReadSamples only returns whole frames, so a destination shorter than one
// frame is rejected with io.ErrShortBuffer.
package vorbis
