// Package common defines shared constants and sentinel errors used across
// the releasedrop client layers. Callers should use errors.Is to match these
// values; typed errors elsewhere in the module unwrap to them.
package common

import "errors"

var (
	// Submission input errors.
	ErrMissingInput     = errors.New("missing input")
	ErrUploadInProgress = errors.New("upload already in progress")

	// Access policy errors.
	ErrUnknownSecret       = errors.New("unknown secret")
	ErrReleaseNotPermitted = errors.New("release not permitted")

	// Size policy errors.
	ErrUnknownRelease = errors.New("unknown release")
	ErrFileTooLarge   = errors.New("file too large")

	// Transport errors.
	ErrTransportFailure  = errors.New("transport failure")
	ErrServerRejected    = errors.New("server rejected upload")
	ErrMalformedResponse = errors.New("malformed response")
	ErrTimeout           = errors.New("upload timed out")

	// Configuration errors.
	ErrInvalidPolicy = errors.New("invalid policy tables")
)
