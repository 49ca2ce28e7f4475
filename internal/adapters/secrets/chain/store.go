// Package chain resolves password references across several backends,
// consulted in order.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/f5m/internal/adapters/secrets/file"
	passstore "github.com/bnema/f5m/internal/adapters/secrets/pass"
	"github.com/bnema/f5m/internal/ports"
)

var errNoBackends = errors.New("secret chain needs at least one backend")

// Backend is one named link of the chain. Name only labels errors.
type Backend struct {
	Name  string
	Store ports.SecretStore
}

type Store struct {
	backends []Backend
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(backends ...Backend) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret backend %d (%s) is nil", i, backend.Name)
		}
	}

	return &Store{backends: backends}, nil
}

// NewPasswordStore is the chain f5m uses: pass(1) first, then files below fileRoot.
func NewPasswordStore(fileRoot string) (*Store, error) {
	return NewStore(
		Backend{Name: "pass", Store: passstore.NewStore()},
		Backend{Name: "file", Store: filestore.NewStore(fileRoot)},
	)
}

// Get returns the value from the first backend that has it.
func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	var errs []error
	for _, backend := range s.backends {
		value, err := backend.Store.Get(ctx, ref)
		if err == nil {
			return value, nil
		}
		if isContextErr(err) {
			return "", err
		}
		errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
	}

	return "", fmt.Errorf("resolve secret %q: %w", ref, errors.Join(errs...))
}

// Put stores the value in the first backend that accepts it.
func (s *Store) Put(ctx context.Context, ref string, value string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Store.Put(ctx, ref, value)
		if err == nil {
			return nil
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
	}

	return fmt.Errorf("store secret %q: %w", ref, errors.Join(errs...))
}

// Delete clears the reference from every backend, since an earlier Put may
// have landed in any of them. It fails only when no backend succeeded.
func (s *Store) Delete(ctx context.Context, ref string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Store.Delete(ctx, ref)
		if err == nil {
			continue
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
	}

	if len(errs) == len(s.backends) {
		return fmt.Errorf("delete secret %q: %w", ref, errors.Join(errs...))
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
