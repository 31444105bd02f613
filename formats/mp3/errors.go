// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3 indicates the stream holds no decodable MPEG audio frame.
var ErrNotMP3 = errors.New("not an MPEG audio stream")
