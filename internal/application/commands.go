package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
)

// ReconcileCommand is the desired state of one pool member.
type ReconcileCommand struct {
	Pool      domain.PoolIdentifier
	Member    domain.MemberIdentifier
	State     domain.DesiredState
	CheckMode bool
}

func (c ReconcileCommand) Validate() error {
	if err := c.Pool.Validate(); err != nil {
		return err
	}
	if err := c.Member.Validate(); err != nil {
		return err
	}
	switch c.State {
	case domain.StatePresent, domain.StateAbsent:
		return nil
	default:
		return fmt.Errorf("unsupported state %q", c.State)
	}
}

func validateEndpoint(endpoint ports.Endpoint) error {
	var errs []error
	if strings.TrimSpace(endpoint.Server) == "" {
		errs = append(errs, errors.New("server is required"))
	}
	if strings.TrimSpace(endpoint.User) == "" {
		errs = append(errs, errors.New("user is required"))
	}
	if endpoint.Password == "" {
		errs = append(errs, errors.New("password is required"))
	}
	if endpoint.Port < 0 || endpoint.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", endpoint.Port))
	}
	return errors.Join(errs...)
}
