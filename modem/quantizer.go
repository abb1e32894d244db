// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math"

	"github.com/ik5/fmiq/utils"
	"hz.tools/sdr"
)

// FullScale is the integer a value of 1.0 quantizes to.
const FullScale = math.MaxInt8

// IQ8 is the transmitter sample format: signed 8-bit values interleaved as
// I0, Q0, I1, Q1, ...
type IQ8 []int8

// Len returns the number of I/Q frames.
func (b IQ8) Len() int { return len(b) / 2 }

// Frame returns the i-th (I, Q) pair.
func (b IQ8) Frame(i int) (int8, int8) {
	return b[2*i], b[2*i+1]
}

// Frames copies the buffer into hz.tools frame layout.
func (b IQ8) Frames() sdr.SamplesI8 {
	frames := make(sdr.SamplesI8, b.Len())
	for i := range frames {
		frames[i] = [2]int8{b[2*i], b[2*i+1]}
	}

	return frames
}

// FromFrames interleaves hz.tools frames into an IQ8 buffer.
func FromFrames(frames sdr.SamplesI8) IQ8 {
	b := make(IQ8, 2*len(frames))
	for i, f := range frames {
		b[2*i] = f[0]
		b[2*i+1] = f[1]
	}

	return b
}

// Quantize converts frames to IQ8 using the given rounding. Values are
// clamped to [-1, 1] first, so the output stays within [-127, 127].
//
// A NaN or infinite value means an upstream stage broke its contract and
// Quantize panics.
func Quantize(frames []IQ, rounding Rounding) IQ8 {
	toInt8 := utils.Float64ToInt8
	if rounding == RoundHalfAwayFromZero {
		toInt8 = utils.Float64ToInt8Round
	}

	out := make(IQ8, 2*len(frames))
	for i, f := range frames {
		mustBeFinite(i, f.I)
		mustBeFinite(i, f.Q)

		out[2*i] = toInt8(f.I)
		out[2*i+1] = toInt8(f.Q)
	}

	return out
}

func mustBeFinite(frame int, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("modem: non-finite value %v in frame %d reached the quantizer", v, frame))
	}
}
