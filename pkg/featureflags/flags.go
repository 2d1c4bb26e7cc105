package featureflags

import (
	"time"

	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

// Flag keys referenced elsewhere in the platform.
const (
	FlagInvoiceAutoReminders = "invoice-auto-reminders"
	FlagPayoutDashboard      = "payout-dashboard"
	FlagCalendarSync         = "calendar-sync"
	FlagBuilderPortal        = "builder-portal"
	FlagPhotoAnnotations     = "photo-annotations"
	FlagReportSummaries      = "report-summaries"
)

var defaultRegistry = NewRegistry()

// Default returns the process-wide flag registry.
func Default() *Registry {
	return defaultRegistry
}

func init() {
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagInvoiceAutoReminders,
		Name:        "Invoice auto reminders",
		Description: "Nightly reminder emails for invoices past their due date.",
		Owner:       "billing",
		Maturity:    gatekeepingv1.MaturityGA,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
			string(gatekeepingv1.EnvironmentStaging),
			string(gatekeepingv1.EnvironmentProduction),
		),
		Created: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagPayoutDashboard,
		Name:        "Inspector payout dashboard",
		Description: "Per-inspector payout totals and period breakdowns.",
		Owner:       "payroll",
		Maturity:    gatekeepingv1.MaturityBeta,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
			string(gatekeepingv1.EnvironmentStaging),
		),
		Created: time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
	})
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagCalendarSync,
		Name:        "Calendar sync",
		Description: "Two-way sync of inspection appointments with external calendars.",
		Owner:       "scheduling",
		Maturity:    gatekeepingv1.MaturityBeta,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
			string(gatekeepingv1.EnvironmentStaging),
		),
		Created: time.Date(2025, time.July, 22, 0, 0, 0, 0, time.UTC),
	})
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagBuilderPortal,
		Name:        "Builder self-service portal",
		Description: "Read-only job and report access for builder contacts.",
		Owner:       "field-ops",
		Maturity:    gatekeepingv1.MaturityExperimental,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
		),
		Created: time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC),
	})
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagPhotoAnnotations,
		Name:        "Photo annotations",
		Description: "Markup tools on uploaded inspection photos.",
		Owner:       "field-ops",
		Maturity:    gatekeepingv1.MaturityExperimental,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
		),
		Created: time.Date(2026, time.February, 17, 0, 0, 0, 0, time.UTC),
	})
	defaultRegistry.mustAddFlag(gatekeepingv1.FeatureFlag{
		Key:         FlagReportSummaries,
		Name:        "Report summaries",
		Description: "Generated plain-language summary page in audit report PDFs.",
		Owner:       "reporting",
		Maturity:    gatekeepingv1.MaturityGA,
		Environments: sets.NewString(
			string(gatekeepingv1.EnvironmentDevelopment),
			string(gatekeepingv1.EnvironmentStaging),
			string(gatekeepingv1.EnvironmentProduction),
		),
		Created: time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
	})
}
