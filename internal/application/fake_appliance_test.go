package application

import (
	"context"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
)

// fakeAppliance keeps pool membership in memory. Node addresses referenced by
// members of other pools refuse deletion, like the real appliance.
type fakeAppliance struct {
	pools     map[string]struct{}
	members   map[string]domain.MemberIdentifier
	others    map[string]struct{}
	mutations int
	closed    int
}

var _ ports.Appliance = (*fakeAppliance)(nil)

func newFakeAppliance(pools ...domain.PoolIdentifier) *fakeAppliance {
	f := &fakeAppliance{
		pools:   map[string]struct{}{},
		members: map[string]domain.MemberIdentifier{},
		others:  map[string]struct{}{},
	}
	for _, pool := range pools {
		f.pools[pool.FullPath()] = struct{}{}
	}
	return f
}

func (f *fakeAppliance) PoolExists(_ context.Context, pool domain.PoolIdentifier) error {
	if _, ok := f.pools[pool.FullPath()]; !ok {
		return domain.ErrPoolNotFound
	}
	return nil
}

func (f *fakeAppliance) MemberExists(_ context.Context, _ domain.PoolIdentifier, member domain.MemberIdentifier) (bool, error) {
	_, ok := f.members[member.FullPath()]
	return ok, nil
}

func (f *fakeAppliance) AddMember(_ context.Context, _ domain.PoolIdentifier, member domain.MemberIdentifier) error {
	f.mutations++
	f.members[member.FullPath()] = member
	return nil
}

func (f *fakeAppliance) RemoveMember(_ context.Context, _ domain.PoolIdentifier, member domain.MemberIdentifier) error {
	f.mutations++
	delete(f.members, member.FullPath())
	return nil
}

func (f *fakeAppliance) DeleteNodeAddress(_ context.Context, member domain.MemberIdentifier) error {
	f.mutations++
	if _, ok := f.others[member.Address()]; ok {
		return domain.ErrNodeReferenced
	}
	return nil
}

func (f *fakeAppliance) Close(_ context.Context) error {
	f.closed++
	return nil
}
