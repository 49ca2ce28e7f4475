package ports

import (
	"context"

	"github.com/bnema/f5m/internal/domain"
)

// Appliance is the remote management API of a load-balancer appliance.
//
// PoolExists returns domain.ErrPoolNotFound when the pool is missing.
// MemberExists reports false, not an error, for a missing member.
// DeleteNodeAddress returns domain.ErrNodeReferenced when another pool still uses the node.
// Close ends the session; the Appliance must not be used afterwards.
type Appliance interface {
	PoolExists(ctx context.Context, pool domain.PoolIdentifier) error
	MemberExists(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) (bool, error)
	AddMember(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) error
	RemoveMember(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) error
	DeleteNodeAddress(ctx context.Context, member domain.MemberIdentifier) error
	Close(ctx context.Context) error
}

type Endpoint struct {
	Server        string
	Port          int
	User          string
	Password      string
	ValidateCerts bool
}

// ApplianceDialer authenticates against an appliance and returns a session bound to it.
type ApplianceDialer interface {
	Dial(ctx context.Context, endpoint Endpoint) (Appliance, error)
}
