package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hearthcheck/wicket/pkg/version"
)

// NewVersionCommand prints out wicket version information, in a similar style to other kube tools.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Report version information for wicket",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.Get()
			const flag = "output"
			of, err := cmd.Flags().GetString(flag)
			if err != nil {
				return errors.Wrapf(err, "error accessing flag %s for command %s", flag, cmd.Name())
			}
			switch of {
			case "":
				fmt.Fprintf(os.Stdout, "wicket built from %s\n", v.GitCommit)
			case "short":
				fmt.Fprintf(os.Stdout, "%s\n", v.GitCommit)
			case "yaml":
				y, err := yaml.Marshal(&v)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(y))
			case "json":
				y, err := json.MarshalIndent(&v, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(y))
			default:
				return errors.Errorf("invalid output format: %s", of)
			}

			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output format; available options are 'yaml', 'json' and 'short'")
	return cmd
}
