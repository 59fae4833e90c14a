// Package transport moves a selected file to remote storage and reports the
// resulting download URL.
//
// Error contract for Send:
//   - common.ErrTransportFailure: no response was received (network error).
//   - common.ErrMalformedResponse: a response arrived but could not be decoded.
//   - common.ErrServerRejected: the remote side refused without a readable payload.
//   - common.ErrTimeout: the deadline set by WithTimeout expired.
//
// A decoded response is returned with a nil error even when it carries an
// error text or no URL; interpreting it is up to the caller.
package transport

import (
	"context"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
)

// Response is the JSON body returned by the upload endpoint.
type Response struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// Transport sends one file. Implementations must be safe to call again after
// a previous Send returned.
type Transport interface {
	Send(ctx context.Context, req models.UploadRequest) (*Response, error)
}
