package codestream

import "errors"

var (
	// ErrParseCancelled is returned by the push adapter once the parser has
	// been cancelled. It marks an expected early stop, not corrupt input.
	ErrParseCancelled = errors.New("codestream: parsing has been cancelled")

	// ErrCancelled is returned by control operations invoked on a parser
	// that was already cancelled.
	ErrCancelled = errors.New("codestream: parser was previously cancelled")

	ErrClosed         = errors.New("codestream: write to closed writer")
	ErrTruncated      = errors.New("codestream: segment extends past available data")
	ErrNotComment     = errors.New("codestream: segment is not a comment")
	ErrBinaryComment  = errors.New("codestream: comment has binary registration")
	ErrUnknownComment = errors.New("codestream: comment registration not recognized")
)
