// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWritePCM16_CorrectHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 960000, 2, []int16{1, 2, 3, 4}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	b := buf.Bytes()
	if len(b) != headerSize+8 {
		t.Fatalf("len = %d, want %d", len(b), headerSize+8)
	}

	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(b[4:8]), 36 + 8},
		{"fmt size", binary.LittleEndian.Uint32(b[16:20]), 16},
		{"format", uint32(binary.LittleEndian.Uint16(b[20:22])), formatPCM},
		{"channels", uint32(binary.LittleEndian.Uint16(b[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(b[24:28]), 960000},
		{"byte rate", binary.LittleEndian.Uint32(b[28:32]), 960000 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(b[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(b[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(b[40:44]), 8},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	for i, tag := range map[int]string{0: "RIFF", 8: "WAVE", 12: "fmt ", 36: "data"} {
		if string(b[i:i+4]) != tag {
			t.Errorf("bytes[%d:%d] = %q, want %q", i, i+4, b[i:i+4], tag)
		}
	}

	if got := int16(binary.LittleEndian.Uint16(b[headerSize+6:])); got != 4 {
		t.Errorf("last sample = %d, want 4", got)
	}
}

func TestWritePCM16_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 8000, 1, nil); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("len = %d, want %d", buf.Len(), headerSize)
	}
}

func TestWritePCM16_LargeFile(t *testing.T) {
	t.Parallel()

	// spans several write chunks
	samples := make([]int16, 20001)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 8000, 1, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	if want := headerSize + 2*len(samples); buf.Len() != want {
		t.Fatalf("len = %d, want %d", buf.Len(), want)
	}

	b := buf.Bytes()[headerSize:]
	for _, i := range []int{0, 8191, 8192, 16384, 20000} {
		if got := int16(binary.LittleEndian.Uint16(b[2*i:])); got != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 22050, 1, []int16{16384, -8192, 0}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	src, decoded := decodeAll(t, buf.Bytes())
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}

	assertSamples(t, decoded.Samples, []float64{0.5, -0.25, 0})
}

func TestWritePCM16_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
		want     error
	}{
		{"zero rate", 0, 1, nil, ErrInvalidSampleRate},
		{"no channels", 8000, 0, nil, ErrUnsupportedWavLayout},
		{"partial frame", 8000, 2, []int16{1, 2, 3}, ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WritePCM16(&buf, tt.rate, tt.channels, tt.samples); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: wrote %d bytes on error", tt.name, buf.Len())
		}
	}
}

func BenchmarkWritePCM16(b *testing.B) {
	samples := make([]int16, 2*480000)

	b.ReportAllocs()

	for b.Loop() {
		var buf bytes.Buffer
		if err := WritePCM16(&buf, 960000, 2, samples); err != nil {
			b.Fatal(err)
		}
	}
}
