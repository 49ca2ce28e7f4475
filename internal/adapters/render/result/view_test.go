package result

import (
	"testing"

	"github.com/bnema/f5m/internal/application"
	"github.com/bnema/f5m/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestRenderChangedMember(t *testing.T) {
	output, err := Render([]application.Outcome{
		{
			Pool:            "/Common/pool-A",
			Member:          "10.0.0.5:80",
			State:           domain.StatePresent,
			ReconcileResult: domain.ReconcileResult{Changed: true},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "/Common/pool-A")
	assert.Contains(t, output, "10.0.0.5:80 present:")
	assert.Contains(t, output, "changed")
	assert.NotContains(t, output, "unchanged")
	assert.NotContains(t, output, "node deleted")
	assert.NotContains(t, output, "(check mode)")
}

func TestRenderAbsentMemberShowsNodeVerdict(t *testing.T) {
	output, err := Render([]application.Outcome{
		{
			Pool:            "/Common/pool-A",
			Member:          "10.0.0.5:80",
			State:           domain.StateAbsent,
			ReconcileResult: domain.ReconcileResult{Changed: true, Deleted: boolPtr(false)},
		},
		{
			Pool:            "/Common/pool-B",
			Member:          "10.0.0.6:80",
			State:           domain.StateAbsent,
			ReconcileResult: domain.ReconcileResult{Changed: true, Deleted: boolPtr(true)},
		},
	}, RenderOptions{Title: "Manifest"})

	require.NoError(t, err)
	assert.Contains(t, output, "Manifest")
	assert.Contains(t, output, "members: 2, changed: 2")
	assert.Contains(t, output, "node deleted: no")
	assert.Contains(t, output, "node deleted: yes")
}

func TestRenderCheckModeMarker(t *testing.T) {
	output, err := Render([]application.Outcome{
		{
			Pool:   "/Common/pool-A",
			Member: "10.0.0.5:80",
			State:  domain.StatePresent,
		},
	}, RenderOptions{CheckMode: true})

	require.NoError(t, err)
	assert.Contains(t, output, "unchanged")
	assert.Contains(t, output, "(check mode)")
}

func TestRenderEmptyOutcomes(t *testing.T) {
	output, err := Render(nil, RenderOptions{Title: "Manifest"})

	require.NoError(t, err)
	assert.Contains(t, output, "members: 0, changed: 0")
	assert.Contains(t, output, "No pool members to reconcile.")
}
