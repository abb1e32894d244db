// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"hz.tools/sdr"
)

// chunkFrames is the number of frames converted per write (8 KiB).
const chunkFrames = 4096

// Write stores frames as raw interleaved signed bytes: I0 Q0 I1 Q1 ...
func Write(w io.Writer, frames sdr.SamplesI8) error {
	if len(frames) == 0 {
		return nil
	}

	buf := make([]byte, 2*min(len(frames), chunkFrames))

	for i := 0; i < len(frames); i += chunkFrames {
		chunk := frames[i:min(i+chunkFrames, len(frames))]
		buf = buf[:2*len(chunk)]

		for j, f := range chunk {
			buf[2*j] = byte(f[0])
			buf[2*j+1] = byte(f[1])
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing iq frames: %w", err)
		}
	}

	return nil
}

// Read loads a whole raw capture. A trailing odd byte is an error.
func Read(r io.Reader) (sdr.SamplesI8, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading iq frames: %w", err)
	}

	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(data))
	}

	frames := make(sdr.SamplesI8, len(data)/2)
	for i := range frames {
		frames[i] = [2]int8{int8(data[2*i]), int8(data[2*i+1])}
	}

	return frames, nil
}

// WriteFile creates path and writes frames to it.
func WriteFile(path string, frames sdr.SamplesI8) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Write(w, frames); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}

// ReadFile loads a raw capture from path.
func ReadFile(path string) (sdr.SamplesI8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}
