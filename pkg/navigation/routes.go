package navigation

import (
	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

// Well-known paths referenced by the evaluator's redirect targets.
const (
	HomeRoute             = "/"
	GoldenPathStatusRoute = "/status/golden-paths"
)

var defaultRegistry = NewRegistry()

// Default returns the process-wide route registry.
func Default() *Registry {
	return defaultRegistry
}

func init() {
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:      HomeRoute,
		Title:     "Dashboard",
		Maturity:  gatekeepingv1.MaturityGA,
		ShowInNav: true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/jobs",
		Title:        "Jobs",
		Maturity:     gatekeepingv1.MaturityGA,
		GoldenPathID: "GP-01",
		Parent:       HomeRoute,
		ShowInNav:    true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/jobs/:id",
		Title:        "Job detail",
		Maturity:     gatekeepingv1.MaturityGA,
		GoldenPathID: "GP-01",
		Parent:       "/jobs",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/inspection/:id",
		Title:        "Inspection",
		Maturity:     gatekeepingv1.MaturityGA,
		GoldenPathID: "GP-02",
		Parent:       "/jobs",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:      "/builders",
		Title:     "Builders",
		Maturity:  gatekeepingv1.MaturityGA,
		Parent:    HomeRoute,
		ShowInNav: true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:     "/builders/:id",
		Title:    "Builder detail",
		Maturity: gatekeepingv1.MaturityGA,
		Parent:   "/builders",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:          "/invoices",
		Title:         "Invoices",
		Maturity:      gatekeepingv1.MaturityGA,
		RequiredRoles: sets.NewString("admin", "office"),
		GoldenPathID:  "GP-03",
		Parent:        HomeRoute,
		ShowInNav:     true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:          "/invoices/:id",
		Title:         "Invoice detail",
		Maturity:      gatekeepingv1.MaturityGA,
		RequiredRoles: sets.NewString("admin", "office"),
		GoldenPathID:  "GP-03",
		Parent:        "/invoices",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:          "/payouts",
		Title:         "Payouts",
		Maturity:      gatekeepingv1.MaturityBeta,
		RequiredRoles: sets.NewString("admin"),
		GoldenPathID:  "GP-04",
		Parent:        HomeRoute,
		ShowInNav:     true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/reports",
		Title:        "Audit reports",
		Maturity:     gatekeepingv1.MaturityGA,
		GoldenPathID: "GP-05",
		Parent:       HomeRoute,
		ShowInNav:    true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/reports/:id",
		Title:        "Report detail",
		Maturity:     gatekeepingv1.MaturityGA,
		GoldenPathID: "GP-05",
		Parent:       "/reports",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:         "/calendar",
		Title:        "Calendar",
		Maturity:     gatekeepingv1.MaturityBeta,
		GoldenPathID: "GP-06",
		Parent:       HomeRoute,
		ShowInNav:    true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:     "/photos/:jobId",
		Title:    "Job photos",
		Maturity: gatekeepingv1.MaturityBeta,
		Parent:   "/jobs",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:      "/builder-portal",
		Title:     "Builder portal",
		Maturity:  gatekeepingv1.MaturityExperimental,
		Parent:    HomeRoute,
		ShowInNav: true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:          "/settings",
		Title:         "Settings",
		Maturity:      gatekeepingv1.MaturityGA,
		RequiredRoles: sets.NewString("admin"),
		Parent:        HomeRoute,
		ShowInNav:     true,
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:          "/settings/flags",
		Title:         "Feature flags",
		Maturity:      gatekeepingv1.MaturityExperimental,
		RequiredRoles: sets.NewString("admin"),
		Parent:        "/settings",
	})
	defaultRegistry.mustAddRoute(gatekeepingv1.RouteMetadata{
		Path:     GoldenPathStatusRoute,
		Title:    "Golden path status",
		Maturity: gatekeepingv1.MaturityGA,
		Parent:   HomeRoute,
	})
}
