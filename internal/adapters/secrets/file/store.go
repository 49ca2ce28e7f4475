// Package file is the plain-file password backend used when pass(1) is not
// available. Each password_ref maps to one 0600 file below the root directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
)

const (
	dirMode    = 0o700
	secretMode = 0o600
)

type Store struct {
	root string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Put writes value through a temporary file and a rename, so a reader never
// sees a half-written password.
func (s *Store) Put(ctx context.Context, ref string, value string) error {
	path, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create secret directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".f5m-secret-*")
	if err != nil {
		return fmt.Errorf("create temp secret for %q: %w", ref, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(secretMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod secret %q: %w", ref, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write secret %q: %w", ref, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close secret %q: %w", ref, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store secret %q: %w", ref, err)
	}

	return nil
}

// Get drops trailing line breaks, so a file written with echo or an editor
// still yields the bare password.
func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	path, err := s.resolve(ctx, ref)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("secret file %q: %w", ref, domain.ErrSecretNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read secret %q: %w", ref, err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

// Delete succeeds when the file is already gone.
func (s *Store) Delete(ctx context.Context, ref string) error {
	path, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete secret %q: %w", ref, err)
	}

	return nil
}

// resolve maps a slash-separated reference such as "bigip/prod/admin" to a
// path that must stay below root.
func (s *Store) resolve(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	rel := filepath.FromSlash(trimmed)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("invalid secret key %q", ref)
	}

	return filepath.Join(s.root, rel), nil
}
