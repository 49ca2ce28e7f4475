package ports

import (
	"context"

	"github.com/bnema/f5m/internal/domain"
)

type ManifestRepository interface {
	Load(ctx context.Context) (domain.Manifest, error)
}
