// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

// ErrBadFormat is returned when a decoder reports no usable format.
var ErrBadFormat = errors.New("pcm: missing sample rate or channel count")
