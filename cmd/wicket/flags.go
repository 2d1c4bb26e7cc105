package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hearthcheck/wicket/pkg/featureflags"
	"github.com/hearthcheck/wicket/pkg/flags"
)

// NewFlagsCommand dumps the feature flags enabled in an environment.
func NewFlagsCommand() *cobra.Command {
	envFlags := flags.NewEnvironmentFlags()

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "List feature flags enabled in an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envFlags.Validate(); err != nil {
				return errors.WithMessage(err, "error validating options")
			}

			enabled := featureflags.Default().EnabledFlags(envFlags.GetEnvironment())
			out, err := json.MarshalIndent(&enabled, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}

	envFlags.BindFlags(cmd.Flags())
	return cmd
}
