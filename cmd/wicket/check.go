package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hearthcheck/wicket/pkg/flags"
	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/navigation"
)

type CheckFlags struct {
	ConfigFlags      *flags.ConfigFlags
	EnvironmentFlags *flags.EnvironmentFlags
	GoldenPathFlags  *flags.GoldenPathFlags

	Roles  []string
	Output string
}

func NewCheckFlags() *CheckFlags {
	return &CheckFlags{
		ConfigFlags:      flags.NewConfigFlags(),
		EnvironmentFlags: flags.NewEnvironmentFlags(),
		GoldenPathFlags:  flags.NewGoldenPathFlags(),
	}
}

func (f *CheckFlags) BindFlags(flagSet *pflag.FlagSet) {
	f.ConfigFlags.BindFlags(flagSet)
	f.EnvironmentFlags.BindFlags(flagSet)
	f.GoldenPathFlags.BindFlags(flagSet)

	flagSet.StringSliceVar(&f.Roles, "roles", f.Roles, "Roles to evaluate as, e.g. --roles=admin,inspector")
	flagSet.StringVarP(&f.Output, "output", "o", "", "Output format; available options are 'yaml' and 'json' (default)")
}

// NewCheckCommand evaluates one path and prints the decision, handy
// for debugging why a page is hidden in an environment.
func NewCheckCommand() *cobra.Command {
	f := NewCheckFlags()

	cmd := &cobra.Command{
		Use:   "check PATH",
		Short: "Evaluate route access for a single path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.EnvironmentFlags.Validate(); err != nil {
				return errors.WithMessage(err, "error validating options")
			}

			evaluator := gatekeeping.NewEvaluator(
				navigation.Default(),
				f.GoldenPathFlags.GetResolver(),
				f.EnvironmentFlags.GetEnvironment(),
			)
			decision := evaluator.Evaluate(args[0], sets.NewString(f.Roles...), f.EnvironmentFlags.ShowExperimental)

			switch strings.ToLower(f.Output) {
			case "", "json":
				out, err := json.MarshalIndent(&decision, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(out))
			case "yaml":
				out, err := yaml.Marshal(&decision)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(out))
			default:
				return errors.Errorf("invalid output format: %s", f.Output)
			}

			if !decision.Allowed {
				os.Exit(1)
			}
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	return cmd
}
