package domain

import "errors"

// Error classes shared across the service layer. Handlers map these onto
// HTTP status codes; everything else rides along as wrapped detail.
var (
	// ErrInvalidInput covers malformed or missing client parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured means a required provider credential is absent.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrUpstream covers provider-side failures: non-200 responses,
	// malformed payloads, missing or non-finite critical fields.
	ErrUpstream = errors.New("upstream provider failure")
)
