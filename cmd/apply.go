package cmd

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bnema/f5m/internal/adapters/render/result"
	tomlrepo "github.com/bnema/f5m/internal/adapters/repo/toml"
	"github.com/bnema/f5m/internal/application"
	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/logging"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *app) *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile every pool member listed in a TOML manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, app, opts)
		},
	}

	addConnectionFlags(cmd.Flags())
	addOutputFlags(cmd.Flags(), &opts)
	cmd.Flags().String("file", "", "Path to the manifest file")
	cmd.Flags().String("partition", domain.DefaultPartition, "Partition for entries when the manifest sets none")

	return cmd
}

func runApply(cmd *cobra.Command, app *app, opts outputOptions) error {
	if err := bindFlags(app.config, cmd.Flags(), map[string]string{
		tomlrepo.ManifestPathKey: "file",
		tomlrepo.PartitionKey:    "partition",
	}); err != nil {
		return domain.ConfigurationError("bind flags", err)
	}
	if app.config.GetString(tomlrepo.ManifestPathKey) == "" {
		return domain.ConfigurationError("validate manifest", errors.New("--file is required"))
	}

	repo, err := tomlrepo.NewManifestRepository(app.config)
	if err != nil {
		return domain.ConfigurationError("open manifest", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)
	endpoint, err := app.resolveEndpoint(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}

	service := app.newService(logger)
	var outcomes []application.Outcome
	applyErr := runReconcileSpinner(cmd, app, opts, func(ctx context.Context) error {
		var err error
		outcomes, err = service.ApplyManifest(ctx, endpoint, repo, opts.check)
		return err
	})
	if applyErr != nil && len(outcomes) == 0 {
		return applyErr
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcomes); err != nil {
			return err
		}
		return applyErr
	}

	if err := writeOutcomes(cmd, app, outcomes, result.RenderOptions{
		CheckMode: opts.check,
		Title:     "Manifest " + app.config.GetString(tomlrepo.ManifestPathKey),
	}); err != nil {
		return err
	}

	return applyErr
}
