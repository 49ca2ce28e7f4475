package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const maxPort = 65535

// MemberIdentifier is an address:port pair registered against a pool.
type MemberIdentifier struct {
	Partition string
	Host      string
	Port      int
}

func NewMemberIdentifier(partition, host string, port int) MemberIdentifier {
	return MemberIdentifier{
		Partition: normalizePartition(partition),
		Host:      strings.TrimSpace(host),
		Port:      port,
	}
}

// Address returns the node address path "/partition/host".
func (m MemberIdentifier) Address() string {
	return "/" + m.Partition + "/" + m.Host
}

// Name is the member name as BIG-IP stores it. IPv6 hosts use '.' before the port.
func (m MemberIdentifier) Name() string {
	sep := ":"
	if strings.Contains(m.Host, ":") {
		sep = "."
	}
	return m.Host + sep + strconv.Itoa(m.Port)
}

func (m MemberIdentifier) FullPath() string {
	return "/" + m.Partition + "/" + m.Name()
}

func (m MemberIdentifier) String() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}

func (m MemberIdentifier) Validate() error {
	if m.Host == "" {
		return fmt.Errorf("member host is required")
	}
	if strings.ContainsAny(m.Host, "/ ") {
		return fmt.Errorf("member host %q is not a valid address", m.Host)
	}
	if m.Port < 0 || m.Port > maxPort {
		return fmt.Errorf("member port %d out of range [0-%d]", m.Port, maxPort)
	}
	return validatePartition(m.Partition)
}
