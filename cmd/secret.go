package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/f5m/internal/domain"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage passwords referenced by password_ref",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var ref string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a password under a reference (reads stdin when --value is omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("value") {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return domain.ConfigurationError("read secret value", fmt.Errorf("stdin: %w", err))
				}
				value = strings.TrimRight(line, "\r\n")
			}
			if value == "" {
				return domain.ConfigurationError("store secret", errors.New("secret value is empty"))
			}

			if err := app.secretStore.Put(cmd.Context(), ref, value); err != nil {
				return fmt.Errorf("store secret %s: %w", ref, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Secret-store key")
	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a stored password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), ref); err != nil {
				return fmt.Errorf("remove secret %s: %w", ref, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Secret-store key")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}
