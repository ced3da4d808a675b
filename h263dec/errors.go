/*
DESCRIPTION
  errors.go provides the error values returned by the h263dec package.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263dec

import (
	"io"

	"github.com/pkg/errors"
)

// Errors returned while decoding a picture. DecodePicture wraps these with
// positional context; use errors.Cause or errors.Is to test for them.
var (
	// ErrBitstreamExhausted indicates the bitstream ended in the middle of
	// a syntax element.
	ErrBitstreamExhausted = errors.New("bitstream exhausted mid element")

	// ErrCorruptCoefficients indicates block coefficient data that cannot
	// be valid, e.g. a run past the 64th coefficient or a forbidden level.
	ErrCorruptCoefficients = errors.New("corrupt block coefficient data")

	// ErrUnsupportedSyntax indicates a syntactically valid construct that
	// this decoder does not implement, e.g. PB-frames or arithmetic coding.
	ErrUnsupportedSyntax = errors.New("unsupported bitstream syntax")

	// ErrMissingDimensions indicates an inter picture arrived before any
	// picture that defined the frame dimensions.
	ErrMissingDimensions = errors.New("picture dimensions not yet known")

	// ErrInvalidBitstream indicates bit patterns forbidden by the syntax,
	// e.g. a reserved source format or an invalid INTRADC code.
	ErrInvalidBitstream = errors.New("invalid bitstream")

	// ErrInternalDecoder indicates an internal inconsistency. Seeing this
	// error is a bug in the decoder, not in the input.
	ErrInternalDecoder = errors.New("internal decoder error")
)

// exhausted maps the bit reader's end-of-data error onto the decoder's
// error taxonomy, leaving other errors untouched.
func exhausted(err error) error {
	if errors.Cause(err) == io.ErrUnexpectedEOF {
		return ErrBitstreamExhausted
	}
	return err
}
