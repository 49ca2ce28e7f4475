package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
)

// ResolvePassword fills endpoint.Password from the secret store when only a
// reference is configured. A literal password always wins.
func ResolvePassword(ctx context.Context, store ports.SecretStore, endpoint ports.Endpoint, passwordRef string) (ports.Endpoint, error) {
	ref := strings.TrimSpace(passwordRef)
	if endpoint.Password != "" || ref == "" {
		return endpoint, nil
	}

	password, err := store.Get(ctx, ref)
	if err != nil {
		return ports.Endpoint{}, domain.ConfigurationError("resolve password", fmt.Errorf("password_ref %q: %w", ref, err))
	}
	if password == "" {
		return ports.Endpoint{}, domain.ConfigurationError("resolve password", fmt.Errorf("password_ref %q resolved to an empty secret", ref))
	}

	endpoint.Password = password
	return endpoint, nil
}
