package application

import (
	"context"
	"fmt"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Outcome pairs a reconciled member with its result.
type Outcome struct {
	Pool   string              `json:"pool"`
	Member string              `json:"member"`
	State  domain.DesiredState `json:"state"`
	domain.ReconcileResult
}

// Service opens an appliance session per invocation and reconciles members over it.
type Service struct {
	dialer ports.ApplianceDialer
	logger log.Logger
}

func NewService(dialer ports.ApplianceDialer, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Service{dialer: dialer, logger: logger}
}

func (s *Service) ReconcileMember(ctx context.Context, endpoint ports.Endpoint, cmd ReconcileCommand) (domain.ReconcileResult, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return domain.ReconcileResult{}, domain.ConfigurationError("validate connection", err)
	}
	if err := cmd.Validate(); err != nil {
		return domain.ReconcileResult{}, domain.ConfigurationError("validate member", err)
	}

	appliance, err := s.connect(ctx, endpoint)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	defer s.release(ctx, appliance)

	return NewReconciler(appliance, s.logger).Reconcile(ctx, cmd)
}

// ApplyManifest reconciles every manifest entry in order and stops at the first failure.
// Outcomes gathered before the failure are returned with the error.
func (s *Service) ApplyManifest(ctx context.Context, endpoint ports.Endpoint, repo ports.ManifestRepository, checkMode bool) ([]Outcome, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return nil, domain.ConfigurationError("validate connection", err)
	}

	manifest, err := repo.Load(ctx)
	if err != nil {
		return nil, domain.ConfigurationError("load manifest", err)
	}

	commands := make([]ReconcileCommand, 0, len(manifest.Entries))
	for i, entry := range manifest.Entries {
		cmd := ReconcileCommand{Pool: entry.Pool, Member: entry.Member, State: entry.State, CheckMode: checkMode}
		if err := cmd.Validate(); err != nil {
			return nil, domain.ConfigurationError(fmt.Sprintf("validate manifest entry %d", i+1), err)
		}
		commands = append(commands, cmd)
	}

	if len(commands) == 0 {
		return []Outcome{}, nil
	}

	appliance, err := s.connect(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, appliance)

	reconciler := NewReconciler(appliance, s.logger)
	outcomes := make([]Outcome, 0, len(commands))
	for _, cmd := range commands {
		result, err := reconciler.Reconcile(ctx, cmd)
		if err != nil {
			return outcomes, fmt.Errorf("reconcile %s in %s: %w", cmd.Member, cmd.Pool, err)
		}

		outcomes = append(outcomes, Outcome{
			Pool:            cmd.Pool.FullPath(),
			Member:          cmd.Member.FullPath(),
			State:           cmd.State,
			ReconcileResult: result,
		})
	}

	return outcomes, nil
}

func (s *Service) connect(ctx context.Context, endpoint ports.Endpoint) (ports.Appliance, error) {
	appliance, err := s.dialer.Dial(ctx, endpoint)
	if err != nil {
		return nil, domain.RemoteError("authenticate", err)
	}
	_ = level.Debug(s.logger).Log("op", "authenticate", "server", endpoint.Server, "user", endpoint.User)

	return appliance, nil
}

// release ends the appliance session even when ctx was canceled mid-run, so
// an interrupted invocation does not leave its token behind.
func (s *Service) release(ctx context.Context, appliance ports.Appliance) {
	if err := appliance.Close(context.WithoutCancel(ctx)); err != nil {
		_ = level.Warn(s.logger).Log("op", "release session", "msg", "session token not released", "error", err)
	}
}
