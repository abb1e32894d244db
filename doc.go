// SPDX-License-Identifier: EPL-2.0

// Package fmiq turns audio recordings into frequency modulated I/Q samples
// for software defined radio transmitters.
//
// A recording is decoded, mixed to mono and passed through the modem
// pipeline: resample to the quadrature rate, normalize, integrate into
// phase, map onto sin/cos and quantize to interleaved int8. The result is
// what a HackRF (or any SDR taking signed 8-bit I/Q) replays.
//
// # Quick Start
//
//	out, err := fmiq.ModulateFile("speech.wav", modem.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	err = iq.WriteFile("speech.iq", out.Frames())
//	// hackrf_transfer -t speech.iq -s 960000 -f 207000000 -x 47 -a 1
//
// # Supported Formats
//
// DefaultRegistry knows:
//   - WAV (8/16/24/32-bit integer PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Packages
//
//   - modem: the DSP pipeline and its configuration
//   - audio: Source, Registry, MonoMixer and ReadAll
//   - formats/iq: raw int8 I/Q files
//   - formats/wav: also writes I/Q as a stereo WAV
//   - spectrum: FFT peak of the baseband, for checking the deviation
//
// See cmd/fmiq for a command line front end.
package fmiq
