package policy

import "github.com/dmitrijs2005/releasedrop/internal/client/models"

// DuplicateChecker reports whether a file name was already uploaded.
type DuplicateChecker interface {
	Contains(name string) bool
}

// DuplicateWarning is advisory: it never blocks a submission.
type DuplicateWarning struct {
	FileName string
}

func (w DuplicateWarning) String() string {
	return `File "` + w.FileName + `" already exists. Please rename or delete the old one.`
}

// Validator composes the access and size policies.
type Validator struct {
	access     *AccessPolicy
	sizes      *SizeLimitPolicy
	duplicates DuplicateChecker
}

func NewValidator(access *AccessPolicy, sizes *SizeLimitPolicy, duplicates DuplicateChecker) *Validator {
	return &Validator{access: access, sizes: sizes, duplicates: duplicates}
}

// NewValidatorFromTables validates t and builds both policies from it.
func NewValidatorFromTables(t Tables, duplicates DuplicateChecker) (*Validator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return NewValidator(NewAccessPolicy(t.Access), NewSizeLimitPolicy(t.Sizes), duplicates), nil
}

// Validate checks access first and size second, stopping at the first
// failure. Duplicate names are not checked here; see WarnIfDuplicate.
func (v *Validator) Validate(req models.UploadRequest) error {
	if err := v.access.CheckAccess(req.Secret, req.Release); err != nil {
		return err
	}
	return v.sizes.CheckSize(req.File.SizeBytes, req.Release)
}

// WarnIfDuplicate returns a warning when fileName was uploaded before.
func (v *Validator) WarnIfDuplicate(fileName string) *DuplicateWarning {
	if v.duplicates == nil || !v.duplicates.Contains(fileName) {
		return nil
	}
	return &DuplicateWarning{FileName: fileName}
}

func (v *Validator) Access() *AccessPolicy {
	return v.access
}

func (v *Validator) Sizes() *SizeLimitPolicy {
	return v.sizes
}
