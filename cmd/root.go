package cmd

import (
	"github.com/bnema/f5m/internal/domain"
	"github.com/spf13/cobra"
)

const (
	exitFailure       = 1
	exitConfiguration = 2
	exitPrecondition  = 3
)

func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindConfiguration:
		return exitConfiguration
	case domain.KindPrecondition:
		return exitPrecondition
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return buildRootCmd(app, err)
}

func buildRootCmd(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "f5m",
		Short:         "Manage BIG-IP LTM pool members",
		Long:          "f5m converges BIG-IP LTM pool members to a desired state over iControl REST, one member at a time or from a TOML manifest.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newMemberCmd(app),
		newApplyCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
