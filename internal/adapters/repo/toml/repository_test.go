package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/f5m/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, contents string) *ManifestRepository {
	t.Helper()

	manifestPath := filepath.Join(t.TempDir(), "members.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(contents), 0o600))

	config := viper.New()
	config.Set(ManifestPathKey, manifestPath)

	repo, err := NewManifestRepository(config)
	require.NoError(t, err)
	return repo
}

func TestManifestRepositoryLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, `version = 1

[defaults]
partition = "Tenant"
state = "absent"

[[members]]
pool = "pool-A"
host = "10.0.0.5"
port = 80

[[members]]
name = "pool-B"
partition = "Common"
host = "10.0.0.6"
port = 443
state = "present"
`)

	manifest, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ManifestEntry{
		{
			Pool:   domain.PoolIdentifier{Partition: "Tenant", Name: "pool-A"},
			Member: domain.MemberIdentifier{Partition: "Tenant", Host: "10.0.0.5", Port: 80},
			State:  domain.StateAbsent,
		},
		{
			Pool:   domain.PoolIdentifier{Partition: "Common", Name: "pool-B"},
			Member: domain.MemberIdentifier{Partition: "Common", Host: "10.0.0.6", Port: 443},
			State:  domain.StatePresent,
		},
	}, manifest.Entries)
}

func TestManifestRepositoryDefaultsToCommonAndPresent(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, `[[members]]
pool = "web"
host = "192.0.2.10"
port = 8080
`)

	manifest, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, manifest.Entries, 1)
	assert.Equal(t, "/Common/web", manifest.Entries[0].Pool.FullPath())
	assert.Equal(t, domain.StatePresent, manifest.Entries[0].State)
}

func TestManifestRepositoryRejectsInvalidState(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, `version = 1

[[members]]
pool = "web"
host = "192.0.2.10"
port = 80
state = "disabled"
`)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "members[0]")
	assert.Contains(t, err.Error(), `unsupported state "disabled"`)
}

func TestManifestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, "version = 2\n")

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest schema version 2")
}

func TestManifestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, "[[members]\npool = ")

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode manifest file")
}

func TestManifestRepositoryMissingFileReturnsError(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set(ManifestPathKey, filepath.Join(t.TempDir(), "absent.toml"))
	repo, err := NewManifestRepository(config)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManifestRepositoryRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewManifestRepository(viper.New())
	require.EqualError(t, err, "manifest path is empty")
}

func TestManifestRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, "version = 1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestManifestRepositoryFallsBackToConfiguredPartition(t *testing.T) {
	t.Parallel()

	manifestPath := filepath.Join(t.TempDir(), "members.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`version = 1

[[members]]
pool = "pool-A"
host = "10.0.0.5"
port = 80

[[members]]
pool = "pool-B"
partition = "Common"
host = "10.0.0.6"
port = 80
`), 0o600))

	config := viper.New()
	config.Set(ManifestPathKey, manifestPath)
	config.Set(PartitionKey, "Tenant")

	repo, err := NewManifestRepository(config)
	require.NoError(t, err)

	manifest, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, manifest.Entries, 2)
	assert.Equal(t, "/Tenant/pool-A", manifest.Entries[0].Pool.FullPath())
	assert.Equal(t, "/Tenant/10.0.0.5:80", manifest.Entries[0].Member.FullPath())
	assert.Equal(t, "/Common/pool-B", manifest.Entries[1].Pool.FullPath())
}

func TestManifestRepositoryDefaultsPartitionWinOverConfig(t *testing.T) {
	t.Parallel()

	manifestPath := filepath.Join(t.TempDir(), "members.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`version = 1

[defaults]
partition = "Edge"

[[members]]
pool = "pool-A"
host = "10.0.0.5"
port = 80
`), 0o600))

	config := viper.New()
	config.Set(ManifestPathKey, manifestPath)
	config.Set(PartitionKey, "Tenant")

	repo, err := NewManifestRepository(config)
	require.NoError(t, err)

	manifest, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, manifest.Entries, 1)
	assert.Equal(t, "/Edge/pool-A", manifest.Entries[0].Pool.FullPath())
}
