package policy

import "github.com/dmitrijs2005/releasedrop/internal/common"

// SizeLimitPolicy enforces per-release byte limits.
type SizeLimitPolicy struct {
	limits SizeLimitTable
}

func NewSizeLimitPolicy(limits SizeLimitTable) *SizeLimitPolicy {
	return &SizeLimitPolicy{limits: limits.clone()}
}

// CheckSize fails with common.ErrUnknownRelease for a release without a
// configured limit and with common.ErrFileTooLarge when size > limit.
func (p *SizeLimitPolicy) CheckSize(size int64, release string) error {
	limit, ok := p.limits[release]
	if !ok {
		return &SizeError{Err: common.ErrUnknownRelease, Release: release, Size: size}
	}
	if size > limit {
		return &SizeError{Err: common.ErrFileTooLarge, Release: release, Size: size, Limit: limit}
	}
	return nil
}

// Limit returns the configured limit for release.
func (p *SizeLimitPolicy) Limit(release string) (int64, bool) {
	limit, ok := p.limits[release]
	return limit, ok
}
