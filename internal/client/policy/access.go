package policy

import (
	"slices"

	"github.com/dmitrijs2005/releasedrop/internal/common"
)

// AccessPolicy answers which releases a secret may upload to.
type AccessPolicy struct {
	table AccessTable
}

func NewAccessPolicy(table AccessTable) *AccessPolicy {
	return &AccessPolicy{table: table.clone()}
}

// CheckAccess returns nil when secret may upload to release, otherwise an
// *AccessError. It has no side effects.
func (p *AccessPolicy) CheckAccess(secret, release string) error {
	allowed, ok := p.table[secret]
	if !ok {
		return &AccessError{Err: common.ErrUnknownSecret, Release: release}
	}
	if !slices.Contains(allowed, release) {
		return &AccessError{Err: common.ErrReleaseNotPermitted, Release: release, Allowed: slices.Clone(allowed)}
	}
	return nil
}

// Allowed returns a copy of the releases granted to secret.
func (p *AccessPolicy) Allowed(secret string) ([]string, bool) {
	allowed, ok := p.table[secret]
	if !ok {
		return nil, false
	}
	return slices.Clone(allowed), true
}
