package common

// Multipart form field names expected by the upload endpoint.
const (
	FormFieldFile    = "file"
	FormFieldSecret  = "secret"
	FormFieldRelease = "release"
)

// MaxActivityLogEntries caps the persisted activity log.
const MaxActivityLogEntries = 50

// DefaultUserTag is recorded on activity entries when no tag is configured.
const DefaultUserTag = "current_user"
