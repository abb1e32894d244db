// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0]
//   - Channels: always 2; go-mp3 duplicates mono streams
//   - Sample rate: that of the MP3 stream, typically 44.1 kHz or 48 kHz
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // not MPEG audio
//	}
//
//	buf, err := audio.ReadAll(src, audio.DefaultReadSize)
//	// buf is mono at the stream's rate
package mp3
