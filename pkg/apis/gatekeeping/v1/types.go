package v1

import (
	"time"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Maturity is the release-readiness tier of a route or feature flag.
type Maturity string

const (
	// MaturityExperimental routes are visible in development only, and
	// only to callers who opted in to experimental features.
	MaturityExperimental Maturity = "experimental"

	// MaturityBeta routes are visible in development and staging.
	MaturityBeta Maturity = "beta"

	// MaturityGA routes are visible everywhere.
	MaturityGA Maturity = "ga"
)

// Environment identifies the deployment the gatekeeper is running in.
// It is injected once at startup, never inferred from ambient runtime
// state.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Environments returns every valid environment value.
func Environments() []Environment {
	return []Environment{EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction}
}

// Badge annotates a decision for display next to a navigation link.
type Badge string

const (
	BadgeBeta         Badge = "beta"
	BadgeExperimental Badge = "experimental"

	// BadgeNotReady means the route's golden path is not currently
	// passing, regardless of maturity or roles.
	BadgeNotReady Badge = "not-ready"
)

// FeatureFlag is one entry in the static flag table. Flags are
// declared in source and never mutated at runtime; changing one means
// redeploying.
type FeatureFlag struct {
	Key          string      `json:"key"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Owner        string      `json:"owner,omitempty"`
	Maturity     Maturity    `json:"maturity"`
	Environments sets.String `json:"environments"`
	Created      time.Time   `json:"created,omitempty"`
}

// RouteMetadata describes one registered route pattern. Patterns may
// contain ":param" segments, e.g. "/jobs/:id".
type RouteMetadata struct {
	Path          string      `json:"path"`
	Title         string      `json:"title"`
	Maturity      Maturity    `json:"maturity"`
	RequiredRoles sets.String `json:"requiredRoles,omitempty"`

	// GoldenPathID names the upstream acceptance test gating this
	// route, e.g. "GP-03". Empty means the route is not gated.
	GoldenPathID string `json:"goldenPathID,omitempty"`

	// Parent is the path of the route above this one in the breadcrumb
	// hierarchy.
	Parent string `json:"parent,omitempty"`

	ShowInNav bool `json:"showInNav"`
}

// GoldenPathState is the resolved condition of a golden-path test.
// ReportUnavailable is deliberately distinct from Failed: the first
// means we could not learn anything from the report, the second means
// the report says the test did not pass. Both deny access.
type GoldenPathState string

const (
	// GoldenPathNotRequired applies when a route declares no golden
	// path; gating passes automatically.
	GoldenPathNotRequired GoldenPathState = "not-required"

	GoldenPathPassed GoldenPathState = "passed"
	GoldenPathFailed GoldenPathState = "failed"

	// GoldenPathReportUnavailable covers a missing or unreadable
	// report, or a report with no section for the requested test id.
	GoldenPathReportUnavailable GoldenPathState = "report-unavailable"
)

// GoldenPathStatus is computed fresh on every lookup; it is never
// stored or cached.
type GoldenPathStatus struct {
	TestID   string          `json:"testID,omitempty"`
	State    GoldenPathState `json:"state"`
	LastRun  *time.Time      `json:"lastRun,omitempty"`
	Duration string          `json:"duration,omitempty"`
}

// Passing reports whether this status clears the golden-path gate.
func (s GoldenPathStatus) Passing() bool {
	return s.State == GoldenPathPassed || s.State == GoldenPathNotRequired
}

// RouteAccessDecision is the result of one gatekeeper evaluation. The
// evaluator always returns a decision, never an error: every failure
// mode is expressed as a denied (or, for unknown routes, allowed)
// decision with an explanatory message.
type RouteAccessDecision struct {
	Allowed  bool     `json:"allowed"`
	Maturity Maturity `json:"maturity"`
	Badge    Badge    `json:"badge,omitempty"`
	Message  string   `json:"message,omitempty"`

	// RedirectTo is set on denied decisions so a page-level guard can
	// send the caller somewhere useful.
	RedirectTo string `json:"redirectTo,omitempty"`

	// Route is a copy of the matched registry entry, nil when no entry
	// matched.
	Route *RouteMetadata `json:"route,omitempty"`
}
