package transform

import "errors"

// Common transformation errors used across the package.
var (
	// ErrUnknownKind is returned when no Transformer has been registered for
	// an entity kind. This indicates a wiring mistake and should be treated
	// as fatal at startup rather than surfaced to clients.
	ErrUnknownKind = errors.New("no transformer registered for kind")

	// ErrMalformedSelection is returned when a client selection expression
	// contains an empty or invalid segment (e.g. "comments..author").
	// It is a request error and safe to surface to clients.
	ErrMalformedSelection = errors.New("malformed selection expression")

	// ErrUndeclaredInclude is returned when a requested include name is not
	// declared by the Transformer of the resource it was requested on.
	// Requests with typos are rejected rather than silently ignored so that
	// clients get feedback.
	ErrUndeclaredInclude = errors.New("include not declared by transformer")

	// ErrMaxDepthExceeded is returned when a selection tree is deeper than
	// the Resolver's configured maximum. The bound exists to keep cyclic
	// relation graphs (post -> comments -> author -> posts -> ...) from
	// recursing without limit.
	ErrMaxDepthExceeded = errors.New("maximum include depth exceeded")
)
