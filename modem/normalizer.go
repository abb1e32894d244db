// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Peak returns max(|s|) over samples, 0 for an empty slice.
func Peak(samples []float64) float64 {
	return vecmath.MaxAbs(samples)
}

// Normalize rescales samples so that the largest magnitude becomes 1.
// Silent, empty or non-finite input returns ErrDegenerateSignal.
func Normalize(samples []float64) ([]float64, error) {
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrDegenerateSignal, i, s)
		}
	}

	peak := Peak(samples)
	if peak == 0 {
		return nil, fmt.Errorf("%w: silent input of %d samples", ErrDegenerateSignal, len(samples))
	}

	out := make([]float64, len(samples))
	vecmath.ScaleBlock(out, samples, 1/peak)

	return out, nil
}
