package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Reconciler converges one pool member towards its desired state over an
// authenticated appliance session. It issues at most two mutating calls.
type Reconciler struct {
	appliance ports.Appliance
	logger    log.Logger
}

func NewReconciler(appliance ports.Appliance, logger log.Logger) *Reconciler {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Reconciler{appliance: appliance, logger: logger}
}

func (r *Reconciler) Reconcile(ctx context.Context, cmd ReconcileCommand) (domain.ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return domain.ReconcileResult{}, domain.ConfigurationError("validate member", err)
	}

	l := log.With(r.logger, "pool", cmd.Pool.FullPath(), "member", cmd.Member.FullPath(), "state", cmd.State)

	if err := r.appliance.PoolExists(ctx, cmd.Pool); err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			return domain.ReconcileResult{}, domain.PreconditionError("check pool",
				fmt.Errorf("non-existent pool %s: %w", cmd.Pool.FullPath(), err))
		}
		return domain.ReconcileResult{}, domain.RemoteError("check pool", err)
	}

	exists, err := r.appliance.MemberExists(ctx, cmd.Pool, cmd.Member)
	if err != nil {
		return domain.ReconcileResult{}, domain.RemoteError("check member", err)
	}
	_ = level.Debug(l).Log("op", "observe", "exists", exists, "check_mode", cmd.CheckMode)

	switch cmd.State {
	case domain.StateAbsent:
		if !exists {
			return domain.ReconcileResult{Changed: false}, nil
		}
		if cmd.CheckMode {
			return domain.ReconcileResult{Changed: true}, nil
		}
		return r.removeMember(ctx, l, cmd)
	default:
		if exists {
			return domain.ReconcileResult{Changed: false}, nil
		}
		if cmd.CheckMode {
			return domain.ReconcileResult{Changed: true}, nil
		}
		if err := r.appliance.AddMember(ctx, cmd.Pool, cmd.Member); err != nil {
			return domain.ReconcileResult{}, domain.RemoteError("add member", err)
		}
		_ = level.Debug(l).Log("op", "addMember", "msg", "member added")
		return domain.ReconcileResult{Changed: true}, nil
	}
}

func (r *Reconciler) removeMember(ctx context.Context, l log.Logger, cmd ReconcileCommand) (domain.ReconcileResult, error) {
	if err := r.appliance.RemoveMember(ctx, cmd.Pool, cmd.Member); err != nil {
		return domain.ReconcileResult{}, domain.RemoteError("remove member", err)
	}
	_ = level.Debug(l).Log("op", "removeMember", "msg", "member removed")

	deleted := true
	if err := r.appliance.DeleteNodeAddress(ctx, cmd.Member); err != nil {
		if !errors.Is(err, domain.ErrNodeReferenced) {
			return domain.ReconcileResult{}, domain.RemoteError("delete node address", err)
		}
		deleted = false
		_ = level.Debug(l).Log("op", "deleteNodeAddress", "node", cmd.Member.Address(), "msg", "node address still in use, kept")
	}

	return domain.ReconcileResult{Changed: true, Deleted: &deleted}, nil
}
