// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream does not start with a valid FLAC header
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates a stream whose parameters cannot be decoded
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
