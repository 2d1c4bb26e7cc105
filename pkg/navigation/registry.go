// Package navigation holds the static route table and the pattern
// matcher the gatekeeper evaluates against. Like the feature flag
// table, routes are declared in source and never mutated at runtime.
package navigation

import (
	"fmt"
	"strings"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

type Registry struct {
	order  []string
	routes map[string]gatekeepingv1.RouteMetadata
}

func NewRegistry() *Registry {
	return &Registry{
		routes: map[string]gatekeepingv1.RouteMetadata{},
	}
}

// FindRoute resolves a concrete request path to its registry entry.
// Exact matches win; otherwise parameterized patterns are tried in
// declaration order and the first match is returned. When two patterns
// could both match a path, the one declared first wins.
func (r *Registry) FindRoute(path string) (*gatekeepingv1.RouteMetadata, bool) {
	if route, ok := r.routes[path]; ok {
		return &route, true
	}
	for _, pattern := range r.order {
		if !strings.Contains(pattern, ":") {
			continue
		}
		if matchPattern(pattern, path) {
			route := r.routes[pattern]
			return &route, true
		}
	}
	return nil, false
}

// matchPattern requires identical segment counts and literal equality
// at every non-":param" position.
func matchPattern(pattern, path string) bool {
	patternSegments := strings.Split(pattern, "/")
	pathSegments := strings.Split(path, "/")
	if len(patternSegments) != len(pathSegments) {
		return false
	}
	for i, seg := range patternSegments {
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != pathSegments[i] {
			return false
		}
	}
	return true
}

// Routes returns every registered route in declaration order.
func (r *Registry) Routes() []gatekeepingv1.RouteMetadata {
	all := make([]gatekeepingv1.RouteMetadata, 0, len(r.order))
	for _, path := range r.order {
		all = append(all, r.routes[path])
	}
	return all
}

// NavigationRoutes returns the routes flagged for the navigation menu,
// in declaration order.
func (r *Registry) NavigationRoutes() []gatekeepingv1.RouteMetadata {
	nav := []gatekeepingv1.RouteMetadata{}
	for _, path := range r.order {
		if route := r.routes[path]; route.ShowInNav {
			nav = append(nav, route)
		}
	}
	return nav
}

// Breadcrumbs returns the trail from the root to the route matching
// path, root first. An unmatched path yields an empty trail.
func (r *Registry) Breadcrumbs(path string) []gatekeepingv1.RouteMetadata {
	route, ok := r.FindRoute(path)
	if !ok {
		return nil
	}
	trail := []gatekeepingv1.RouteMetadata{*route}
	seen := map[string]bool{route.Path: true}
	for route.Parent != "" && !seen[route.Parent] {
		parent, ok := r.routes[route.Parent]
		if !ok {
			break
		}
		seen[parent.Path] = true
		trail = append([]gatekeepingv1.RouteMetadata{parent}, trail...)
		route = &parent
	}
	return trail
}

func (r *Registry) addRoute(in gatekeepingv1.RouteMetadata) error {
	if !strings.HasPrefix(in.Path, "/") {
		return fmt.Errorf("route path %q must begin with /", in.Path)
	}
	if len(in.Title) == 0 {
		return fmt.Errorf("route %s must have a title", in.Path)
	}
	switch in.Maturity {
	case gatekeepingv1.MaturityExperimental, gatekeepingv1.MaturityBeta, gatekeepingv1.MaturityGA:
	default:
		return fmt.Errorf("route %s has invalid maturity %q", in.Path, in.Maturity)
	}
	if in.Parent != "" && !strings.HasPrefix(in.Parent, "/") {
		return fmt.Errorf("route %s parent %q must begin with /", in.Path, in.Parent)
	}
	if _, ok := r.routes[in.Path]; ok {
		return fmt.Errorf("route %s registered twice", in.Path)
	}
	r.order = append(r.order, in.Path)
	r.routes[in.Path] = in
	return nil
}

func (r *Registry) mustAddRoute(in gatekeepingv1.RouteMetadata) {
	if err := r.addRoute(in); err != nil {
		panic(err)
	}
}
