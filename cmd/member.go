package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/f5m/internal/adapters/render/result"
	"github.com/bnema/f5m/internal/application"
	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type outputOptions struct {
	check   bool
	asJSON  bool
	verbose bool
}

func addOutputFlags(flags *pflag.FlagSet, opts *outputOptions) {
	flags.BoolVar(&opts.check, "check", false, "Report what would change without modifying the appliance")
	flags.BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log debug details to stderr")
}

func newMemberCmd(app *app) *cobra.Command {
	var opts outputOptions
	var state string
	var pool string
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "member",
		Short: "Ensure a pool member is present or absent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(app.config, cmd.Flags(), map[string]string{keyPartition: "partition"}); err != nil {
				return domain.ConfigurationError("bind flags", err)
			}

			var missing []error
			if pool == "" {
				missing = append(missing, errors.New("--name is required"))
			}
			if host == "" {
				missing = append(missing, errors.New("--host is required"))
			}
			if !cmd.Flags().Changed("port") {
				missing = append(missing, errors.New("--port is required"))
			}
			if err := errors.Join(missing...); err != nil {
				return domain.ConfigurationError("validate member", err)
			}

			desired, err := domain.ParseDesiredState(state)
			if err != nil {
				return domain.ConfigurationError("validate member", err)
			}

			partition := app.config.GetString(keyPartition)
			reconcile := application.ReconcileCommand{
				Pool:      domain.NewPoolIdentifier(partition, pool),
				Member:    domain.NewMemberIdentifier(partition, host, port),
				State:     desired,
				CheckMode: opts.check,
			}

			return runMember(cmd, app, reconcile, opts)
		},
	}

	addConnectionFlags(cmd.Flags())
	addOutputFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&state, "state", string(domain.StatePresent), "Desired member state (present|absent)")
	cmd.Flags().StringVar(&pool, "name", "", "Pool name (alias --pool)")
	cmd.Flags().String("partition", domain.DefaultPartition, "Administrative partition of the pool and member")
	cmd.Flags().StringVar(&host, "host", "", "Member address")
	cmd.Flags().IntVar(&port, "port", 0, "Member service port")
	cmd.Flags().SetNormalizeFunc(poolAliasNormalizer)

	return cmd
}

func poolAliasNormalizer(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "pool" {
		name = "name"
	}
	return pflag.NormalizedName(name)
}

func runMember(cmd *cobra.Command, app *app, reconcile application.ReconcileCommand, opts outputOptions) error {
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	endpoint, err := app.resolveEndpoint(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}

	service := app.newService(logger)
	var outcome domain.ReconcileResult
	err = runReconcileSpinner(cmd, app, opts, func(ctx context.Context) error {
		var reconcileErr error
		outcome, reconcileErr = service.ReconcileMember(ctx, endpoint, reconcile)
		return reconcileErr
	})
	if err != nil {
		return err
	}

	if opts.asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(outcome)
	}

	return writeOutcomes(cmd, app, []application.Outcome{{
		Pool:            reconcile.Pool.FullPath(),
		Member:          reconcile.Member.String(),
		State:           reconcile.State,
		ReconcileResult: outcome,
	}}, result.RenderOptions{CheckMode: reconcile.CheckMode})
}

func writeOutcomes(cmd *cobra.Command, app *app, outcomes []application.Outcome, opts result.RenderOptions) error {
	rendered, err := app.resultRenderer(outcomes, opts)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
