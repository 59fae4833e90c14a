package policy

import (
	"testing"

	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables_AreConsistent(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())

	for secret, releases := range tables.Access {
		for _, r := range releases {
			_, ok := tables.Sizes[r]
			assert.True(t, ok, "release %s granted to %s has no limit", r, secret)
		}
	}
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9"}, tables.Releases())
}

func TestTables_Validate(t *testing.T) {
	tests := []struct {
		name   string
		tables Tables
		errSub string
	}{
		{
			name:   "empty access",
			tables: Tables{Sizes: SizeLimitTable{"v1": 1}},
			errSub: "access table is empty",
		},
		{
			name:   "missing size limit",
			tables: Tables{Access: AccessTable{"k": {"v1", "v2"}}, Sizes: SizeLimitTable{"v1": 1}},
			errSub: `release "v2" has no size limit`,
		},
		{
			name:   "non-positive limit",
			tables: Tables{Access: AccessTable{"k": {"v1"}}, Sizes: SizeLimitTable{"v1": 0}},
			errSub: "must be positive",
		},
		{
			name:   "secret without releases",
			tables: Tables{Access: AccessTable{"k": {}}, Sizes: SizeLimitTable{"v1": 1}},
			errSub: "grants no releases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tables.Validate()
			require.ErrorIs(t, err, common.ErrInvalidPolicy)
			assert.Contains(t, err.Error(), tt.errSub)
			assert.NotContains(t, err.Error(), `"k"`, "secrets must not leak into errors")
		})
	}
}
