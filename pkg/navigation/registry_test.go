package navigation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

func TestFindRouteExactMatches(t *testing.T) {
	// Every literal route in the table must resolve to itself.
	for _, route := range Default().Routes() {
		if strings.Contains(route.Path, ":") {
			continue
		}
		found, ok := Default().FindRoute(route.Path)
		require.True(t, ok, "no match for registered route %s", route.Path)
		assert.Equal(t, route.Path, found.Path)
	}
}

func TestFindRoutePatterns(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantMatch bool
		wantRoute string
	}{
		{
			name:      "job detail matches :id pattern",
			path:      "/jobs/42",
			wantMatch: true,
			wantRoute: "/jobs/:id",
		},
		{
			name:      "extra segment does not match",
			path:      "/jobs/42/extra",
			wantMatch: false,
		},
		{
			name:      "inspection id pattern",
			path:      "/inspection/abc123",
			wantMatch: true,
			wantRoute: "/inspection/:id",
		},
		{
			name:      "unregistered path",
			path:      "/unheard-of",
			wantMatch: false,
		},
		{
			name:      "literal segment must be equal",
			path:      "/gizmos/42",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, ok := Default().FindRoute(tt.path)
			if !tt.wantMatch {
				assert.False(t, ok, "expected no match for %s, got %+v", tt.path, found)
				return
			}
			require.True(t, ok, "expected a match for %s", tt.path)
			assert.Equal(t, tt.wantRoute, found.Path)
		})
	}
}

func TestFindRouteInspectionMetadata(t *testing.T) {
	found, ok := Default().FindRoute("/inspection/abc123")
	require.True(t, ok)
	assert.Equal(t, gatekeepingv1.MaturityGA, found.Maturity)
	assert.Equal(t, "GP-02", found.GoldenPathID)
}

func TestFindRouteFirstDeclaredPatternWins(t *testing.T) {
	registry := NewRegistry()
	registry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:     "/audits/:id",
		Title:    "Audit by id",
		Maturity: gatekeepingv1.MaturityGA,
	})
	registry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:     "/:section/latest",
		Title:    "Latest in section",
		Maturity: gatekeepingv1.MaturityGA,
	})

	// Both patterns match /audits/latest; declaration order decides.
	found, ok := registry.FindRoute("/audits/latest")
	require.True(t, ok)
	assert.Equal(t, "/audits/:id", found.Path)
}

func TestAddRouteValidation(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.addRoute(gatekeepingv1.RouteMetadata{Path: "no-slash", Title: "x", Maturity: gatekeepingv1.MaturityGA}))
	assert.Error(t, registry.addRoute(gatekeepingv1.RouteMetadata{Path: "/x", Maturity: gatekeepingv1.MaturityGA}))
	assert.Error(t, registry.addRoute(gatekeepingv1.RouteMetadata{Path: "/x", Title: "x", Maturity: "shipped"}))

	require.NoError(t, registry.addRoute(gatekeepingv1.RouteMetadata{Path: "/x", Title: "x", Maturity: gatekeepingv1.MaturityGA}))
	assert.Error(t, registry.addRoute(gatekeepingv1.RouteMetadata{Path: "/x", Title: "again", Maturity: gatekeepingv1.MaturityGA}))
}

func TestNavigationRoutes(t *testing.T) {
	for _, route := range Default().NavigationRoutes() {
		assert.True(t, route.ShowInNav)
	}
	// Detail pages never show up in the menu.
	for _, route := range Default().NavigationRoutes() {
		assert.NotContains(t, route.Path, ":")
	}
}

func TestBreadcrumbs(t *testing.T) {
	trail := Default().Breadcrumbs("/invoices/42")
	require.Len(t, trail, 3)
	assert.Equal(t, HomeRoute, trail[0].Path)
	assert.Equal(t, "/invoices", trail[1].Path)
	assert.Equal(t, "/invoices/:id", trail[2].Path)

	assert.Empty(t, Default().Breadcrumbs("/not-registered"))
}
