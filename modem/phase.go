// SPDX-License-Identifier: EPL-2.0

package modem

// Accumulate integrates samples into a phase trajectory:
//
//	phase[0] = s[0]
//	phase[i] = phase[i-1] + s[i]
//
// The sum is strictly left to right so that successive differences are
// exactly the input samples as rounded by that order.
func Accumulate(samples []float64) []float64 {
	phase := make([]float64, len(samples))

	var acc float64
	for i, s := range samples {
		if i == 0 {
			acc = s
		} else {
			acc += s
		}
		phase[i] = acc
	}

	return phase
}
