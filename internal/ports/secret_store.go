package ports

import "context"

// SecretStore holds appliance credentials addressed by a reference such as "f5m/prod/admin".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
