// Package gatekeeping decides, per route, whether a caller may access
// a feature in the current environment. Decisions combine route
// maturity, golden-path test status and required roles; the evaluator
// always returns a decision and never an error.
package gatekeeping

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
	"github.com/hearthcheck/wicket/pkg/goldenpath"
	"github.com/hearthcheck/wicket/pkg/navigation"
)

type Evaluator struct {
	routes      *navigation.Registry
	goldenPaths *goldenpath.Resolver
	environment gatekeepingv1.Environment
}

func NewEvaluator(routes *navigation.Registry, goldenPaths *goldenpath.Resolver, environment gatekeepingv1.Environment) *Evaluator {
	return &Evaluator{
		routes:      routes,
		goldenPaths: goldenPaths,
		environment: environment,
	}
}

func (e *Evaluator) Environment() gatekeepingv1.Environment {
	return e.environment
}

// Evaluate runs the gate checks for one path. Checks short-circuit in
// a fixed precedence: route lookup, golden-path gate, maturity
// visibility, roles.
//
// An unregistered path is allowed: the registry only describes routes
// under progressive rollout, and a gate that denied everything it had
// never heard of would take the rest of the platform down with it.
// The golden-path gate leans the other way, denying when its report
// cannot be read. Both defaults are deliberate and pinned by tests.
func (e *Evaluator) Evaluate(path string, roles sets.String, showExperimental bool) gatekeepingv1.RouteAccessDecision {
	route, ok := e.routes.FindRoute(path)
	if !ok {
		return gatekeepingv1.RouteAccessDecision{
			Allowed:  true,
			Maturity: gatekeepingv1.MaturityGA,
			Message:  fmt.Sprintf("%s is not a registered route, open by default", path),
		}
	}

	if route.GoldenPathID != "" {
		status := e.goldenPaths.StatusFor(route.GoldenPathID)
		if !status.Passing() {
			return gatekeepingv1.RouteAccessDecision{
				Allowed:    false,
				Maturity:   route.Maturity,
				Badge:      gatekeepingv1.BadgeNotReady,
				Message:    goldenPathMessage(route.GoldenPathID, status),
				RedirectTo: navigation.GoldenPathStatusRoute,
				Route:      route,
			}
		}
	}

	if !maturityVisible(route.Maturity, e.environment, showExperimental) {
		return gatekeepingv1.RouteAccessDecision{
			Allowed:    false,
			Maturity:   route.Maturity,
			Badge:      maturityBadge(route.Maturity),
			Message:    fmt.Sprintf("%s routes are not available in %s", route.Maturity, e.environment),
			RedirectTo: navigation.HomeRoute,
			Route:      route,
		}
	}

	if route.RequiredRoles.Len() > 0 && !roles.HasAny(route.RequiredRoles.UnsortedList()...) {
		return gatekeepingv1.RouteAccessDecision{
			Allowed:    false,
			Maturity:   route.Maturity,
			Message:    fmt.Sprintf("requires one of roles: %v", route.RequiredRoles.List()),
			RedirectTo: navigation.HomeRoute,
			Route:      route,
		}
	}

	return gatekeepingv1.RouteAccessDecision{
		Allowed:  true,
		Maturity: route.Maturity,
		Badge:    maturityBadge(route.Maturity),
		Route:    route,
	}
}

// maturityVisible applies the environment visibility matrix:
// production carries only GA routes, staging adds beta, development
// adds experimental for callers who opted in.
func maturityVisible(maturity gatekeepingv1.Maturity, env gatekeepingv1.Environment, showExperimental bool) bool {
	switch env {
	case gatekeepingv1.EnvironmentProduction:
		return maturity == gatekeepingv1.MaturityGA
	case gatekeepingv1.EnvironmentStaging:
		return maturity == gatekeepingv1.MaturityGA || maturity == gatekeepingv1.MaturityBeta
	case gatekeepingv1.EnvironmentDevelopment:
		if maturity == gatekeepingv1.MaturityExperimental {
			return showExperimental
		}
		return true
	default:
		return maturity == gatekeepingv1.MaturityGA
	}
}

// maturityBadge is informational on allowed decisions for non-GA
// routes, and names the blocking tier on maturity denials.
func maturityBadge(maturity gatekeepingv1.Maturity) gatekeepingv1.Badge {
	switch maturity {
	case gatekeepingv1.MaturityBeta:
		return gatekeepingv1.BadgeBeta
	case gatekeepingv1.MaturityExperimental:
		return gatekeepingv1.BadgeExperimental
	default:
		return ""
	}
}

func goldenPathMessage(testID string, status gatekeepingv1.GoldenPathStatus) string {
	if status.State == gatekeepingv1.GoldenPathReportUnavailable {
		return fmt.Sprintf("golden path %s has no readable report, gate closed", testID)
	}
	return fmt.Sprintf("golden path %s is not passing", testID)
}
