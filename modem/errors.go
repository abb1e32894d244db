// SPDX-License-Identifier: EPL-2.0

package modem

import "errors"

var (
	// ErrResampling is returned when a rate conversion is invalid or the
	// filter cannot be built for it.
	ErrResampling = errors.New("resampling failed")

	// ErrDegenerateSignal is returned when a signal is silent, empty or not
	// finite and therefore cannot be normalized.
	ErrDegenerateSignal = errors.New("degenerate signal")

	// ErrInvalidConfig is returned by NewPipeline and Config.Validate.
	ErrInvalidConfig = errors.New("invalid modem configuration")
)
