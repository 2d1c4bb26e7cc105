package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/navigation"
)

// NewRoutesCommand dumps the registered route table with a decision
// per route for the given environment and roles.
func NewRoutesCommand() *cobra.Command {
	f := NewCheckFlags()

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List registered routes and their access decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.EnvironmentFlags.Validate(); err != nil {
				return errors.WithMessage(err, "error validating options")
			}

			evaluator := gatekeeping.NewEvaluator(
				navigation.Default(),
				f.GoldenPathFlags.GetResolver(),
				f.EnvironmentFlags.GetEnvironment(),
			)
			decisions := evaluator.AllDecisions(sets.NewString(f.Roles...), f.EnvironmentFlags.ShowExperimental)

			out, err := json.MarshalIndent(&decisions, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	return cmd
}
