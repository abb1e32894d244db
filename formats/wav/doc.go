// SPDX-License-Identifier: EPL-2.0

// Package wav reads WAV recordings and writes I/Q captures as WAV.
//
// It uses github.com/go-audio/wav for parsing and for seekable output.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count
// and any sample rate. WAVE_FORMAT_EXTENSIBLE headers are accepted when the
// payload is integer PCM.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedEncoding, ErrUnsupportedBitDepth
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
//
// Samples are float64 in [-1.0, 1.0]. 8-bit data is unsigned on disk and
// is re-centered around zero.
//
// # Writing I/Q
//
// A modulated buffer can be stored as a stereo 16-bit WAV with I on the
// left channel and Q on the right, each int8 value shifted into the high
// byte:
//
//	err := wav.WriteIQ16(file, int(cfg.TransmitRate()), iq.Frames())
//
// WriteIQ16 needs an io.WriteSeeker. StreamIQ16 writes the same bytes to a
// plain io.Writer using WritePCM16, which computes the header up front.
package wav
