// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidReadSize = errors.New("read size must be positive")
	ErrInvalidChannels = errors.New("source must have at least one channel")
	ErrInvalidRate     = errors.New("source sample rate must be positive")
	ErrNoProgress      = errors.New("source returned no samples and no error")
)
