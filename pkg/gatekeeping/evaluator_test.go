package gatekeeping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
	"github.com/hearthcheck/wicket/pkg/goldenpath"
	"github.com/hearthcheck/wicket/pkg/navigation"
)

type staticSource []byte

func (s staticSource) Fetch() ([]byte, error) { return s, nil }

type failingSource struct{}

func (failingSource) Fetch() ([]byte, error) { return nil, errors.New("report not published") }

// allPassingReport covers every golden path the route table declares.
const allPassingReport = `# Golden Path Report

## GP-01
Status: 🟢 Passed
## GP-02
Status: 🟢 Passed
## GP-03
Status: 🟢 Passed
## GP-04
Status: 🟢 Passed
## GP-05
Status: 🟢 Passed
## GP-06
Status: 🟢 Passed
`

const payoutsFailingReport = `# Golden Path Report

## GP-01
Status: 🟢 Passed
## GP-02
Status: 🟢 Passed
## GP-03
Status: 🟢 Passed
## GP-04
Status: 🔴 Failed
## GP-05
Status: 🟢 Passed
## GP-06
Status: 🟢 Passed
`

func newEvaluator(env gatekeepingv1.Environment, source goldenpath.Source) *Evaluator {
	return NewEvaluator(navigation.Default(), goldenpath.NewResolver(source), env)
}

func TestEvaluateUnregisteredRouteIsOpen(t *testing.T) {
	for _, env := range gatekeepingv1.Environments() {
		decision := newEvaluator(env, failingSource{}).Evaluate("/totally-unknown", nil, false)
		assert.True(t, decision.Allowed, "unknown route should be open in %s", env)
		assert.Equal(t, gatekeepingv1.MaturityGA, decision.Maturity)
		assert.Nil(t, decision.Route)
		assert.NotEmpty(t, decision.Message)
	}
}

func TestEvaluateMaturityVisibility(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		env              gatekeepingv1.Environment
		showExperimental bool
		wantAllowed      bool
		wantBadge        gatekeepingv1.Badge
	}{
		{
			name:        "ga route in production",
			path:        "/builders",
			env:         gatekeepingv1.EnvironmentProduction,
			wantAllowed: true,
		},
		{
			name:        "beta route denied in production",
			path:        "/calendar",
			env:         gatekeepingv1.EnvironmentProduction,
			wantAllowed: false,
			wantBadge:   gatekeepingv1.BadgeBeta,
		},
		{
			name:        "beta route allowed in staging with badge",
			path:        "/calendar",
			env:         gatekeepingv1.EnvironmentStaging,
			wantAllowed: true,
			wantBadge:   gatekeepingv1.BadgeBeta,
		},
		{
			name:        "experimental route denied in production",
			path:        "/builder-portal",
			env:         gatekeepingv1.EnvironmentProduction,
			wantAllowed: false,
			wantBadge:   gatekeepingv1.BadgeExperimental,
		},
		{
			name:        "experimental route denied in staging",
			path:        "/builder-portal",
			env:         gatekeepingv1.EnvironmentStaging,
			wantAllowed: false,
			wantBadge:   gatekeepingv1.BadgeExperimental,
		},
		{
			name:        "experimental route denied in development without opt-in",
			path:        "/builder-portal",
			env:         gatekeepingv1.EnvironmentDevelopment,
			wantAllowed: false,
			wantBadge:   gatekeepingv1.BadgeExperimental,
		},
		{
			name:             "experimental route allowed in development with opt-in",
			path:             "/builder-portal",
			env:              gatekeepingv1.EnvironmentDevelopment,
			showExperimental: true,
			wantAllowed:      true,
			wantBadge:        gatekeepingv1.BadgeExperimental,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := newEvaluator(tt.env, staticSource(allPassingReport))
			decision := evaluator.Evaluate(tt.path, nil, tt.showExperimental)

			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			assert.Equal(t, tt.wantBadge, decision.Badge)
			require.NotNil(t, decision.Route)
			if !tt.wantAllowed {
				assert.Equal(t, navigation.HomeRoute, decision.RedirectTo)
			}
		})
	}
}

func TestEvaluateGoldenPathGateWinsOverEverything(t *testing.T) {
	// GP-04 gates /payouts; a failing run denies the route in every
	// environment and for every role, maturity notwithstanding.
	for _, env := range gatekeepingv1.Environments() {
		for _, roles := range []sets.String{nil, sets.NewString("admin")} {
			evaluator := newEvaluator(env, staticSource(payoutsFailingReport))
			decision := evaluator.Evaluate("/payouts", roles, true)

			assert.False(t, decision.Allowed)
			assert.Equal(t, gatekeepingv1.BadgeNotReady, decision.Badge)
			assert.Equal(t, navigation.GoldenPathStatusRoute, decision.RedirectTo)
		}
	}
}

func TestEvaluateUnreadableReportClosesGatedRoutes(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentDevelopment, failingSource{})

	gated := evaluator.Evaluate("/jobs", nil, false)
	assert.False(t, gated.Allowed)
	assert.Equal(t, gatekeepingv1.BadgeNotReady, gated.Badge)

	// Routes without a golden path are untouched by the report.
	ungated := evaluator.Evaluate("/builders", nil, false)
	assert.True(t, ungated.Allowed)
}

func TestEvaluateRoles(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentProduction, staticSource(allPassingReport))

	denied := evaluator.Evaluate("/settings", sets.NewString("inspector"), false)
	assert.False(t, denied.Allowed)
	assert.Empty(t, denied.Badge)
	assert.Equal(t, navigation.HomeRoute, denied.RedirectTo)

	allowed := evaluator.Evaluate("/settings", sets.NewString("admin"), false)
	assert.True(t, allowed.Allowed)

	// Any one of the required roles suffices.
	office := evaluator.Evaluate("/invoices", sets.NewString("office"), false)
	assert.True(t, office.Allowed)
}

func TestEvaluateParameterizedPath(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentProduction, staticSource(allPassingReport))

	decision := evaluator.Evaluate("/jobs/42", nil, false)
	assert.True(t, decision.Allowed)
	require.NotNil(t, decision.Route)
	assert.Equal(t, "/jobs/:id", decision.Route.Path)
}

func TestAccessibleRoutesProduction(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentProduction, staticSource(allPassingReport))

	paths := sets.String{}
	for _, decision := range evaluator.AccessibleRoutes(sets.NewString("admin"), false) {
		require.NotNil(t, decision.Route)
		assert.True(t, decision.Allowed)
		paths.Insert(decision.Route.Path)
	}

	assert.True(t, paths.HasAll("/", "/jobs", "/builders", "/invoices", "/settings"))
	// Beta and experimental routes never surface in production.
	assert.False(t, paths.HasAny("/payouts", "/calendar", "/builder-portal"))
}

func TestNavigationRoutesFilterToMenuEntries(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentProduction, staticSource(allPassingReport))

	for _, decision := range evaluator.NavigationRoutes(sets.NewString("admin"), false) {
		require.NotNil(t, decision.Route)
		assert.True(t, decision.Route.ShowInNav)
	}
}

func TestDeclaredGoldenPaths(t *testing.T) {
	evaluator := newEvaluator(gatekeepingv1.EnvironmentDevelopment, staticSource(allPassingReport))
	assert.Equal(t, []string{"GP-01", "GP-02", "GP-03", "GP-04", "GP-05", "GP-06"}, evaluator.DeclaredGoldenPaths())
}
