// SPDX-License-Identifier: EPL-2.0

package logging

import "errors"

// ErrUnknownLevel is returned for a level name other than none, error,
// warn, info or debug.
var ErrUnknownLevel = errors.New("unexpected log level")
