package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/f5m/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/etc/shadow", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "nested traversal", key: "bigip/../../escape", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Get(context.Background(), tc.key)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "f5m/prod/admin", "hunter2"))

	got, err := store.Get(context.Background(), "f5m/prod/admin")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	info, err := os.Stat(filepath.Join(root, "f5m", "prod", "admin"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretMode), info.Mode().Perm())
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "admin"), []byte("hunter2\n"), 0o600))

	got, err := NewStore(root).Get(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestStoreGetMissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), "f5m/missing")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Delete(context.Background(), "f5m/prod/admin"))
	require.NoError(t, store.Delete(context.Background(), "f5m/prod/admin"))
}

func TestStorePutReplacesExistingSecretWithoutLeftovers(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "bigip/admin", "old"))
	require.NoError(t, store.Put(context.Background(), "bigip/admin", "new"))

	got, err := store.Get(context.Background(), "bigip/admin")
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	entries, err := os.ReadDir(filepath.Join(root, "bigip"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].Name())
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore(t.TempDir()).Get(ctx, "bigip/admin")
	require.ErrorIs(t, err, context.Canceled)
}
