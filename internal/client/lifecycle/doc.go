// Package lifecycle drives a single upload attempt:
//
//	Idle -> Validating -> Submitting -> Succeeded | Failed
//
// Submit validates the request with policy.Validator, hands it to a
// transport.Transport and, on success, records the file name in the
// duplicate tracker and appends to the activity log before the Succeeded
// state becomes observable. Every failure ends in Failed with a
// user-readable message; nothing is retried. Only one attempt may be in
// flight per Lifecycle: a concurrent Submit gets common.ErrUploadInProgress.
//
// Presentation is kept behind Notifier; the lifecycle never renders anything.
package lifecycle
