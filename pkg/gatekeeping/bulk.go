package gatekeeping

import (
	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

// AccessibleRoutes evaluates every registered route and returns the
// allowed decisions, in registry declaration order.
func (e *Evaluator) AccessibleRoutes(roles sets.String, showExperimental bool) []gatekeepingv1.RouteAccessDecision {
	accessible := []gatekeepingv1.RouteAccessDecision{}
	for _, route := range e.routes.Routes() {
		decision := e.Evaluate(route.Path, roles, showExperimental)
		if decision.Allowed {
			accessible = append(accessible, decision)
		}
	}
	return accessible
}

// NavigationRoutes narrows AccessibleRoutes to routes flagged for the
// navigation menu.
func (e *Evaluator) NavigationRoutes(roles sets.String, showExperimental bool) []gatekeepingv1.RouteAccessDecision {
	nav := []gatekeepingv1.RouteAccessDecision{}
	for _, decision := range e.AccessibleRoutes(roles, showExperimental) {
		if decision.Route != nil && decision.Route.ShowInNav {
			nav = append(nav, decision)
		}
	}
	return nav
}

// AllDecisions evaluates every registered route, allowed or not. The
// routes CLI and the /api/routes endpoint use it to show the full
// table.
func (e *Evaluator) AllDecisions(roles sets.String, showExperimental bool) []gatekeepingv1.RouteAccessDecision {
	decisions := make([]gatekeepingv1.RouteAccessDecision, 0, len(e.routes.Routes()))
	for _, route := range e.routes.Routes() {
		decisions = append(decisions, e.Evaluate(route.Path, roles, showExperimental))
	}
	return decisions
}

// DeclaredGoldenPaths returns the distinct golden-path ids declared
// across the route table, in first-declared order.
func (e *Evaluator) DeclaredGoldenPaths() []string {
	seen := sets.String{}
	ids := []string{}
	for _, route := range e.routes.Routes() {
		if route.GoldenPathID == "" || seen.Has(route.GoldenPathID) {
			continue
		}
		seen.Insert(route.GoldenPathID)
		ids = append(ids, route.GoldenPathID)
	}
	return ids
}
