package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/dmitrijs2005/releasedrop/internal/sizex"
)

// AccessError reports a failed access check. Err is common.ErrUnknownSecret
// or common.ErrReleaseNotPermitted; Allowed is set for the latter.
type AccessError struct {
	Err     error
	Release string
	Allowed []string
}

func (e *AccessError) Error() string {
	if errors.Is(e.Err, common.ErrReleaseNotPermitted) {
		return "Access denied. You can only upload to: " + strings.Join(e.Allowed, ", ")
	}
	return "Invalid password"
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// SizeError reports a failed size check. Err is common.ErrFileTooLarge or
// common.ErrUnknownRelease; Limit is set for the former.
type SizeError struct {
	Err     error
	Release string
	Size    int64
	Limit   int64
}

func (e *SizeError) Error() string {
	if errors.Is(e.Err, common.ErrFileTooLarge) {
		return fmt.Sprintf("File too large. Max size for %s: %s", e.Release, sizex.Format(e.Limit))
	}
	return "No size limit configured for release " + e.Release
}

func (e *SizeError) Unwrap() error {
	return e.Err
}
