package midi

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat is returned when the header chunk is not MThd or
	// the header fields cannot describe a playable file.
	ErrInvalidFormat = errors.New("invalid midi format")

	// ErrTruncatedStream is returned for any read past the end of input.
	ErrTruncatedStream = errors.New("truncated midi stream")

	// ErrMalformedTrackChunk marks a track chunk whose id is not MTrk. It
	// is recorded on the result and never aborts a parse.
	ErrMalformedTrackChunk = errors.New("malformed track chunk")

	// ErrMalformedEvent is returned for a data byte that has no status to
	// belong to, or a data byte with its high bit set.
	ErrMalformedEvent = errors.New("malformed midi event")
)
