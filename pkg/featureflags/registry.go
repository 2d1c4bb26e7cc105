// Package featureflags holds the static feature flag table. Flags are
// declared in source and loaded once at process start; there is no
// runtime mutation API, flags change by redeploying.
package featureflags

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

type Registry struct {
	order []string
	flags map[string]gatekeepingv1.FeatureFlag
}

func NewRegistry() *Registry {
	return &Registry{
		flags: map[string]gatekeepingv1.FeatureFlag{},
	}
}

// IsEnabled reports whether the named flag is active in the given
// environment. Unknown keys are logged and treated as disabled, never
// an error.
func (r *Registry) IsEnabled(key string, env gatekeepingv1.Environment) bool {
	flag, ok := r.flags[key]
	if !ok {
		log.Warningf("feature flag lookup for unknown key %q, treating as disabled", key)
		return false
	}
	return flag.Environments.Has(string(env))
}

// Get returns the flag for key, if registered.
func (r *Registry) Get(key string) (gatekeepingv1.FeatureFlag, bool) {
	flag, ok := r.flags[key]
	return flag, ok
}

// Flags returns every registered flag in declaration order.
func (r *Registry) Flags() []gatekeepingv1.FeatureFlag {
	all := make([]gatekeepingv1.FeatureFlag, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.flags[key])
	}
	return all
}

// EnabledFlags returns the flags active in env, in declaration order.
func (r *Registry) EnabledFlags(env gatekeepingv1.Environment) []gatekeepingv1.FeatureFlag {
	enabled := []gatekeepingv1.FeatureFlag{}
	for _, key := range r.order {
		if flag := r.flags[key]; flag.Environments.Has(string(env)) {
			enabled = append(enabled, flag)
		}
	}
	return enabled
}

func (r *Registry) addFlag(in gatekeepingv1.FeatureFlag) error {
	if len(in.Key) == 0 {
		return fmt.Errorf("flag key must be specified")
	}
	if len(in.Name) == 0 {
		return fmt.Errorf("flag name must be specified for %s", in.Key)
	}
	switch in.Maturity {
	case gatekeepingv1.MaturityExperimental, gatekeepingv1.MaturityBeta, gatekeepingv1.MaturityGA:
	default:
		return fmt.Errorf("flag %s has invalid maturity %q", in.Key, in.Maturity)
	}
	if in.Environments.Len() == 0 {
		return fmt.Errorf("flag %s must name at least one environment", in.Key)
	}
	for _, env := range in.Environments.List() {
		switch gatekeepingv1.Environment(env) {
		case gatekeepingv1.EnvironmentDevelopment, gatekeepingv1.EnvironmentStaging, gatekeepingv1.EnvironmentProduction:
		default:
			return fmt.Errorf("flag %s names unknown environment %q", in.Key, env)
		}
	}
	if _, ok := r.flags[in.Key]; ok {
		return fmt.Errorf("flag %s registered twice", in.Key)
	}
	r.order = append(r.order, in.Key)
	r.flags[in.Key] = in
	return nil
}

func (r *Registry) mustAddFlag(in gatekeepingv1.FeatureFlag) {
	if err := r.addFlag(in); err != nil {
		panic(err)
	}
}
