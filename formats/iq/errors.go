// SPDX-License-Identifier: EPL-2.0

package iq

import "errors"

// ErrOddLength means a capture ended in the middle of a frame.
var ErrOddLength = errors.New("iq capture length is not a whole number of frames")
