package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolIdentifierFullPath(t *testing.T) {
	tests := []struct {
		name      string
		partition string
		pool      string
		want      string
	}{
		{name: "explicit partition", partition: "PartitionX", pool: "pool-A", want: "/PartitionX/pool-A"},
		{name: "empty partition defaults to Common", partition: "", pool: "pool-A", want: "/Common/pool-A"},
		{name: "slashes around partition are trimmed", partition: "/Tenant/", pool: " web ", want: "/Tenant/web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPoolIdentifier(tt.partition, tt.pool).FullPath())
		})
	}
}

func TestPoolIdentifierValidate(t *testing.T) {
	require.NoError(t, NewPoolIdentifier("Common", "pool-A").Validate())
	assert.ErrorContains(t, NewPoolIdentifier("Common", "  ").Validate(), "pool name is required")
	assert.ErrorContains(t, NewPoolIdentifier("Common", "a/b").Validate(), "must not contain")
	assert.ErrorContains(t, NewPoolIdentifier("Ten/ant", "pool").Validate(), "partition")
}

func TestMemberIdentifierNaming(t *testing.T) {
	v4 := NewMemberIdentifier("", "10.0.0.5", 80)
	assert.Equal(t, "/Common/10.0.0.5", v4.Address())
	assert.Equal(t, "10.0.0.5:80", v4.Name())
	assert.Equal(t, "/Common/10.0.0.5:80", v4.FullPath())
	assert.Equal(t, "10.0.0.5:80", v4.String())

	v6 := NewMemberIdentifier("Common", "2001:db8::5", 443)
	assert.Equal(t, "/Common/2001:db8::5", v6.Address())
	assert.Equal(t, "2001:db8::5.443", v6.Name())
	assert.Equal(t, "[2001:db8::5]:443", v6.String())
}

func TestMemberIdentifierValidate(t *testing.T) {
	require.NoError(t, NewMemberIdentifier("Common", "10.0.0.5", 80).Validate())
	require.NoError(t, NewMemberIdentifier("Common", "10.0.0.5", 0).Validate())
	assert.ErrorContains(t, NewMemberIdentifier("Common", "", 80).Validate(), "host is required")
	assert.ErrorContains(t, NewMemberIdentifier("Common", "10.0.0.5", 70000).Validate(), "out of range")
	assert.ErrorContains(t, NewMemberIdentifier("Common", "10.0.0.5", -1).Validate(), "out of range")
	assert.ErrorContains(t, NewMemberIdentifier("Common", "10.0.0.5/24", 80).Validate(), "not a valid address")
}

func TestParseDesiredState(t *testing.T) {
	tests := []struct {
		raw     string
		want    DesiredState
		wantErr bool
	}{
		{raw: "", want: StatePresent},
		{raw: "present", want: StatePresent},
		{raw: "absent", want: StateAbsent},
		{raw: "Absent", wantErr: true},
		{raw: " absent ", wantErr: true},
		{raw: "enabled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDesiredState(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileResultNodeDeleted(t *testing.T) {
	deleted, known := ReconcileResult{Changed: true}.NodeDeleted()
	assert.False(t, deleted)
	assert.False(t, known)

	yes := true
	deleted, known = ReconcileResult{Changed: true, Deleted: &yes}.NodeDeleted()
	assert.True(t, deleted)
	assert.True(t, known)
}

func TestKindOfUnwrapsTypedErrors(t *testing.T) {
	err := fmt.Errorf("apply: %w", PreconditionError("check pool", ErrPoolNotFound))

	assert.Equal(t, KindPrecondition, KindOf(err))
	assert.ErrorIs(t, err, ErrPoolNotFound)
	assert.Equal(t, "apply: check pool: pool not found", err.Error())
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
