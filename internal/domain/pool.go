package domain

import (
	"fmt"
	"strings"
)

// DefaultPartition is the BIG-IP administrative partition used when none is given.
const DefaultPartition = "Common"

// PoolIdentifier names a pool inside a partition. It is a lookup key only.
type PoolIdentifier struct {
	Partition string
	Name      string
}

func NewPoolIdentifier(partition, name string) PoolIdentifier {
	return PoolIdentifier{
		Partition: normalizePartition(partition),
		Name:      strings.TrimSpace(name),
	}
}

// FullPath returns the canonical "/partition/name" form.
func (p PoolIdentifier) FullPath() string {
	return "/" + p.Partition + "/" + p.Name
}

func (p PoolIdentifier) String() string {
	return p.FullPath()
}

func (p PoolIdentifier) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pool name is required")
	}
	if strings.Contains(p.Name, "/") {
		return fmt.Errorf("pool name %q must not contain '/'", p.Name)
	}
	return validatePartition(p.Partition)
}

func normalizePartition(partition string) string {
	trimmed := strings.Trim(strings.TrimSpace(partition), "/")
	if trimmed == "" {
		return DefaultPartition
	}
	return trimmed
}

func validatePartition(partition string) error {
	if partition == "" {
		return fmt.Errorf("partition is required")
	}
	if strings.Contains(partition, "/") {
		return fmt.Errorf("partition %q must not contain '/'", partition)
	}
	return nil
}
