package lifecycle

import (
	"errors"

	"github.com/dmitrijs2005/releasedrop/internal/common"
)

// User-facing messages.
const (
	MsgMissingInput     = "Please select a file and enter password"
	MsgUploadFailed     = "Upload failed. Please try again."
	MsgNetworkError     = "Network error. Please check your connection and try again."
	MsgTimeout          = "Upload timed out. Please try again."
	MsgUploadInProgress = "An upload is already in progress."
)

// Failure is the error returned by Submit. Kind is one of the sentinel
// errors in package common; Message is ready to show to a user.
type Failure struct {
	Kind    error
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() []error {
	if f.Cause == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.Cause}
}

// validationKinds lists the kinds reported through ValidationFailed.
var validationKinds = []error{
	common.ErrUnknownSecret,
	common.ErrReleaseNotPermitted,
	common.ErrUnknownRelease,
	common.ErrFileTooLarge,
}

func validationFailure(err error) *Failure {
	for _, k := range validationKinds {
		if errors.Is(err, k) {
			return &Failure{Kind: k, Message: err.Error(), Cause: err}
		}
	}
	return &Failure{Kind: err, Message: err.Error()}
}

// transportFailure classifies an error returned by a transport. The bool
// reports whether a response was received.
func transportFailure(err error) (*Failure, bool) {
	switch {
	case errors.Is(err, common.ErrTimeout):
		return &Failure{Kind: common.ErrTimeout, Message: MsgTimeout, Cause: err}, false
	case errors.Is(err, common.ErrMalformedResponse):
		return &Failure{Kind: common.ErrMalformedResponse, Message: MsgUploadFailed, Cause: err}, true
	case errors.Is(err, common.ErrServerRejected):
		return &Failure{Kind: common.ErrServerRejected, Message: MsgUploadFailed, Cause: err}, true
	default:
		return &Failure{Kind: common.ErrTransportFailure, Message: MsgNetworkError, Cause: err}, false
	}
}
