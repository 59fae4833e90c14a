package policy

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicy_CheckAccess(t *testing.T) {
	p := NewAccessPolicy(DefaultTables().Access)

	tests := []struct {
		name    string
		secret  string
		release string
		wantErr error
		allowed []string
	}{
		{name: "admin any release", secret: "admin123", release: "v9"},
		{name: "friend permitted", secret: "friend456", release: "v3"},
		{name: "friend not permitted", secret: "friend456", release: "v8", wantErr: common.ErrReleaseNotPermitted, allowed: []string{"v3", "v6"}},
		{name: "tester not permitted", secret: "tester789", release: "v1", wantErr: common.ErrReleaseNotPermitted, allowed: []string{"v8"}},
		{name: "unknown secret", secret: "bogus", release: "v1", wantErr: common.ErrUnknownSecret},
		{name: "empty secret", secret: "", release: "v1", wantErr: common.ErrUnknownSecret},
		{name: "secret is case-sensitive", secret: "ADMIN123", release: "v1", wantErr: common.ErrUnknownSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckAccess(tt.secret, tt.release)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			var ae *AccessError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.allowed, ae.Allowed)
		})
	}
}

func TestAccessPolicy_NotPermittedListsEveryAllowedRelease(t *testing.T) {
	table := DefaultTables().Access
	p := NewAccessPolicy(table)

	for secret, allowed := range table {
		err := p.CheckAccess(secret, "no-such-release")
		var ae *AccessError
		require.True(t, errors.As(err, &ae), secret)
		assert.Equal(t, allowed, ae.Allowed)
	}
}

func TestAccessPolicy_Messages(t *testing.T) {
	p := NewAccessPolicy(DefaultTables().Access)

	assert.EqualError(t, p.CheckAccess("bogus", "v1"), "Invalid password")
	assert.EqualError(t, p.CheckAccess("friend456", "v8"), "Access denied. You can only upload to: v3, v6")
}

func TestAccessPolicy_IsolatedFromSourceTable(t *testing.T) {
	table := AccessTable{"k": {"v1"}}
	p := NewAccessPolicy(table)

	table["k"][0] = "v2"
	table["other"] = []string{"v1"}

	require.NoError(t, p.CheckAccess("k", "v1"))
	require.ErrorIs(t, p.CheckAccess("other", "v1"), common.ErrUnknownSecret)

	allowed, ok := p.Allowed("k")
	require.True(t, ok)
	allowed[0] = "mutated"
	again, _ := p.Allowed("k")
	assert.Equal(t, []string{"v1"}, again)

	_, ok = p.Allowed("missing")
	assert.False(t, ok)
}
