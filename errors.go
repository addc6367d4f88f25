// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors returned by the decoder. Callers should compare against
// these with errors.Is; wrapped instances carry the input/output position
// at the point of failure.
var (
	// ErrUnexpectedEOF is returned when the source ends mid-instruction or
	// mid-literal, before the end-of-stream marker was observed.
	ErrUnexpectedEOF = errors.New("lzo1x: unexpected end of input")

	// ErrCorruptStream is returned for any invalid opcode relationship:
	// an invalid first opcode, an invalid second opcode after the
	// preamble, an end-of-stream marker with the wrong length, extended
	// length overflow, or a back-reference distance beyond the produced
	// output.
	ErrCorruptStream = errors.New("lzo1x: corrupt stream")

	// ErrUnsupported is returned for a requested mode this decoder does
	// not implement (e.g. an unsupported window size override).
	ErrUnsupported = errors.New("lzo1x: unsupported")

	// ErrInvalidArgument is returned when the supplied source is not
	// usable (nil).
	ErrInvalidArgument = errors.New("lzo1x: invalid argument")
)

// wrapf attaches decode-position context to a sentinel error without
// breaking errors.Is comparability (github.com/pkg/errors implements
// Unwrap since v0.9).
func wrapf(err error, inPos, outPos int64, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return pkgerrors.Wrapf(err, "%s (inPos=%d outPos=%d)", msg, inPos, outPos)
}
