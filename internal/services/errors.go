package services

import "errors"

// Sentinel errors for the fault taxonomy. Handlers translate these into
// HTTP status classes with errors.Is; everything else is an internal error.
var (
	// ErrInvalidRequest marks a caller precondition violation. Never retried.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDocumentParse marks an unreadable uploaded document.
	ErrDocumentParse = errors.New("document parse failed")

	// ErrGatewayUnavailable marks a transport failure talking to the model service.
	ErrGatewayUnavailable = errors.New("model gateway unavailable")

	// ErrMediaProcessing marks media rejected by the model service.
	ErrMediaProcessing = errors.New("media processing failed")

	// ErrMediaProcessingTimeout marks media that never left the processing state
	// within the configured deadline.
	ErrMediaProcessingTimeout = errors.New("media processing timed out")
)
