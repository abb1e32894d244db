// SPDX-License-Identifier: EPL-2.0

package fmiq

import "errors"

// ErrUnsupportedFormat is returned for a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
