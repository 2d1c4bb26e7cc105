package flags

import (
	"fmt"

	"github.com/spf13/pflag"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

// EnvironmentFlags carry the single explicit environment value the
// evaluator is constructed with. The gatekeeper never infers its
// environment from ambient runtime state.
type EnvironmentFlags struct {
	Environment      string
	ShowExperimental bool
}

func NewEnvironmentFlags() *EnvironmentFlags {
	return &EnvironmentFlags{
		Environment: string(gatekeepingv1.EnvironmentDevelopment),
	}
}

func (f *EnvironmentFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Environment, "environment", f.Environment,
		"Environment to evaluate against: {development,staging,production}")
	fs.BoolVar(&f.ShowExperimental, "show-experimental", f.ShowExperimental,
		"Opt this process in to experimental routes (development only)")
}

func (f *EnvironmentFlags) Validate() error {
	for _, env := range gatekeepingv1.Environments() {
		if f.Environment == string(env) {
			return nil
		}
	}
	return fmt.Errorf("invalid environment %q, expected one of %v", f.Environment, gatekeepingv1.Environments())
}

func (f *EnvironmentFlags) GetEnvironment() gatekeepingv1.Environment {
	return gatekeepingv1.Environment(f.Environment)
}
