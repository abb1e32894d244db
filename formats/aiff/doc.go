// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - AIFF with signed PCM at 8, 16, 24 or 32 bits
//   - Any channel count and sample rate
//
// AIFF-C compressed payloads are not supported.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotAiffFile or ErrUnsupportedBitDepth
//	}
//
//	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
//
// The decoder returns an audio.Source of float64 samples in [-1.0, 1.0].
// Readers that cannot seek are buffered in memory first.
package aiff
