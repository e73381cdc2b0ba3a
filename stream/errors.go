package stream

import "errors"

var (
	// ErrUnknownProperty indicates a segment property that cannot be tweened.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownSegment indicates a cue naming a segment the scene does not have.
	ErrUnknownSegment = errors.New("unknown segment")

	// ErrInvalidValue indicates a cue value that cannot be read as the property's kind.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrSinkClosed is returned by a Sink that will accept no more frames.
	ErrSinkClosed = errors.New("sink closed")
)
