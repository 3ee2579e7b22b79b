package inspect

import "errors"

var (
	// ErrEnrichmentUnavailable marks an optional lookup that failed or was
	// denied. It never reaches the user; the signal becomes unknown.
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

	// ErrNoForwardEvidence is returned when a message is not a forward.
	// Callers treat it as a no-op.
	ErrNoForwardEvidence = errors.New("no forward evidence")

	// ErrMissingReplyTarget is returned when a reply-based command was sent
	// without replying to a message.
	ErrMissingReplyTarget = errors.New("missing reply target")
)
