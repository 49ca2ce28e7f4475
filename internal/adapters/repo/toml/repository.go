package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// ManifestPathKey is the viper key holding the manifest location.
	ManifestPathKey = "manifest.path"
	// PartitionKey is the viper key of the partition used by entries that name
	// none, when the manifest has no [defaults] partition either.
	PartitionKey = "partition"
)

// ManifestRepository reads the desired members of a pool fleet from a TOML file:
//
//	version = 1
//
//	[defaults]
//	partition = "Common"
//
//	[[members]]
//	pool = "pool-A"
//	host = "10.0.0.5"
//	port = 80
//	state = "present"
//
// A member's partition comes from the member, then [defaults], then the
// configured partition, then Common.
type ManifestRepository struct {
	manifestPath     string
	defaultPartition string
}

var _ ports.ManifestRepository = (*ManifestRepository)(nil)

func NewManifestRepository(cfg *viper.Viper) (*ManifestRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	manifestPath := cfg.GetString(ManifestPathKey)
	if manifestPath == "" {
		return nil, errors.New("manifest path is empty")
	}

	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}

	return &ManifestRepository{
		manifestPath:     filepath.Clean(absPath),
		defaultPartition: strings.TrimSpace(cfg.GetString(PartitionKey)),
	}, nil
}

func (r *ManifestRepository) Load(ctx context.Context) (domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Manifest{}, err
	}

	file, err := r.readSchema()
	if err != nil {
		return domain.Manifest{}, err
	}

	entries := make([]domain.ManifestEntry, 0, len(file.Members))
	for i, member := range file.Members {
		entry, err := fromSchema(member)
		if err != nil {
			return domain.Manifest{}, fmt.Errorf("members[%d]: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return domain.Manifest{Entries: entries}, nil
}

func (r *ManifestRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.manifestPath)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read manifest file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode manifest file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults(r.defaultPartition)

	return file, nil
}

func fromSchema(member memberSchema) (domain.ManifestEntry, error) {
	state, err := domain.ParseDesiredState(member.State)
	if err != nil {
		return domain.ManifestEntry{}, err
	}

	return domain.ManifestEntry{
		Pool:   domain.NewPoolIdentifier(member.Partition, member.Pool),
		Member: domain.NewMemberIdentifier(member.Partition, member.Host, member.Port),
		State:  state,
	}, nil
}
