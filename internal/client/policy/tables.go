package policy

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dmitrijs2005/releasedrop/internal/common"
)

// AccessTable maps a secret to the ordered releases it may upload to.
type AccessTable map[string][]string

// SizeLimitTable maps a release to its maximum size in bytes.
type SizeLimitTable map[string]int64

// Tables bundles both lookup tables.
type Tables struct {
	Access AccessTable    `yaml:"access"`
	Sizes  SizeLimitTable `yaml:"size_limits"`
}

const gib = int64(1024 * 1024 * 1024)

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Access: AccessTable{
			"admin123":  {"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9"},
			"friend456": {"v3", "v6"},
			"tester789": {"v8"},
		},
		Sizes: SizeLimitTable{
			"v1": 2 * gib, // GTA PC
			"v2": 2 * gib, // GTA Android
			"v3": 2 * gib, // APK
			"v4": 2 * gib, // Windows
			"v5": 2 * gib, // Linux
			"v6": 2 * gib, // MOD APK
			"v7": 2 * gib, // Windows MOD
			"v8": 2 * gib, // Images
			"v9": 2 * gib,
		},
	}
}

// Validate checks that every release granted in Access has a positive limit
// in Sizes. The first problem found (in sorted secret order) is returned.
func (t Tables) Validate() error {
	if len(t.Access) == 0 {
		return fmt.Errorf("%w: access table is empty", common.ErrInvalidPolicy)
	}
	for release, limit := range t.Sizes {
		if limit <= 0 {
			return fmt.Errorf("%w: size limit for %q must be positive", common.ErrInvalidPolicy, release)
		}
	}

	secrets := make([]string, 0, len(t.Access))
	for s := range t.Access {
		secrets = append(secrets, s)
	}
	sort.Strings(secrets)

	// secrets are never echoed back; problems are reported by position
	for i, s := range secrets {
		releases := t.Access[s]
		if len(releases) == 0 {
			return fmt.Errorf("%w: secret #%d grants no releases", common.ErrInvalidPolicy, i+1)
		}
		for _, r := range releases {
			if _, ok := t.Sizes[r]; !ok {
				return fmt.Errorf("%w: release %q has no size limit", common.ErrInvalidPolicy, r)
			}
		}
	}
	return nil
}

// Releases returns every release with a size limit, sorted.
func (t Tables) Releases() []string {
	out := make([]string, 0, len(t.Sizes))
	for r := range t.Sizes {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func (t AccessTable) clone() AccessTable {
	out := make(AccessTable, len(t))
	for k, v := range t {
		out[k] = slices.Clone(v)
	}
	return out
}

func (t SizeLimitTable) clone() SizeLimitTable {
	out := make(SizeLimitTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
