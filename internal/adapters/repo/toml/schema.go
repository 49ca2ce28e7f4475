package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int            `toml:"version"`
	Defaults defaultsSchema `toml:"defaults"`
	Members  []memberSchema `toml:"members"`
}

type defaultsSchema struct {
	Partition string `toml:"partition"`
	State     string `toml:"state"`
}

type memberSchema struct {
	Pool      string `toml:"pool"`
	Name      string `toml:"name"`
	Partition string `toml:"partition"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	State     string `toml:"state"`
}

// applyDefaults fills member fields from [defaults]. fallbackPartition is used
// when the manifest names no default partition of its own.
func (s *fileSchema) applyDefaults(fallbackPartition string) {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Defaults.Partition == "" {
		s.Defaults.Partition = fallbackPartition
	}

	for i := range s.Members {
		member := &s.Members[i]
		if member.Pool == "" {
			member.Pool = member.Name
		}
		if member.Partition == "" {
			member.Partition = s.Defaults.Partition
		}
		if member.State == "" {
			member.State = s.Defaults.State
		}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported manifest schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
