package goldenpath

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

type staticSource []byte

func (s staticSource) Fetch() ([]byte, error) { return s, nil }

type failingSource struct{}

func (failingSource) Fetch() ([]byte, error) { return nil, errors.New("report not published") }

const sampleReport = `# Golden Path Report

## GP-01: Create and schedule a job

Status: 🟢 Passed
Last run: 2026-08-30
Duration: 4m12s

## GP-02: Complete an inspection end to end

Status: ✅ Complete
Last executed: 2026-08-30 02:15:00
Duration: 9m45s

## GP-07: Regenerate stale report PDFs

Status: 🔴 Failed (renderer timeout)
Last run: 2026-08-29
Duration: 12m07s

## GP-08: Orphaned section with no fields

Some prose, but no labeled lines at all.

## GP-09: Uppercase marker

STATUS: PASS
`

func TestStatusForNoTestID(t *testing.T) {
	status := NewResolver(failingSource{}).StatusFor("")
	assert.Equal(t, gatekeepingv1.GoldenPathNotRequired, status.State)
	assert.True(t, status.Passing())
}

func TestStatusForPassing(t *testing.T) {
	resolver := NewResolver(staticSource(sampleReport))

	status := resolver.StatusFor("GP-01")
	assert.Equal(t, gatekeepingv1.GoldenPathPassed, status.State)
	assert.True(t, status.Passing())
	require.NotNil(t, status.LastRun)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), *status.LastRun)
	assert.Equal(t, "4m12s", status.Duration)
}

func TestStatusForMarkers(t *testing.T) {
	resolver := NewResolver(staticSource(sampleReport))

	tests := []struct {
		name   string
		testID string
		want   gatekeepingv1.GoldenPathState
	}{
		{name: "checkmark and complete", testID: "GP-02", want: gatekeepingv1.GoldenPathPassed},
		{name: "red circle fails", testID: "GP-07", want: gatekeepingv1.GoldenPathFailed},
		{name: "case-insensitive pass", testID: "GP-09", want: gatekeepingv1.GoldenPathPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := resolver.StatusFor(tt.testID)
			assert.Equal(t, tt.want, status.State)
		})
	}
}

func TestStatusForFailedKeepsRunDetails(t *testing.T) {
	status := NewResolver(staticSource(sampleReport)).StatusFor("GP-07")
	assert.Equal(t, gatekeepingv1.GoldenPathFailed, status.State)
	assert.False(t, status.Passing())
	require.NotNil(t, status.LastRun)
	assert.Equal(t, "12m07s", status.Duration)
}

func TestStatusForMissingSection(t *testing.T) {
	status := NewResolver(staticSource(sampleReport)).StatusFor("GP-04")
	assert.Equal(t, gatekeepingv1.GoldenPathReportUnavailable, status.State)
	assert.False(t, status.Passing())
	assert.Nil(t, status.LastRun)
}

func TestStatusForSectionWithoutStatusLine(t *testing.T) {
	status := NewResolver(staticSource(sampleReport)).StatusFor("GP-08")
	assert.Equal(t, gatekeepingv1.GoldenPathReportUnavailable, status.State)
	assert.False(t, status.Passing())
}

func TestStatusForUnreadableReport(t *testing.T) {
	status := NewResolver(failingSource{}).StatusFor("GP-01")
	assert.Equal(t, gatekeepingv1.GoldenPathReportUnavailable, status.State)
	assert.False(t, status.Passing())
	assert.Nil(t, status.LastRun)
}

func TestStatusTestIDIsWholeToken(t *testing.T) {
	report := `## GP-10: Bulk photo upload

Status: 🟢 Passed
`
	// GP-1 must not match the GP-10 heading.
	status := NewResolver(staticSource(report)).StatusFor("GP-1")
	assert.Equal(t, gatekeepingv1.GoldenPathReportUnavailable, status.State)
}

// TestSampleReportArtifact validates the checked-in report sample the
// default configuration points at.
func TestSampleReportArtifact(t *testing.T) {
	resolver := NewFileResolver("../../config/golden-path-report.md")

	assert.Equal(t, gatekeepingv1.GoldenPathPassed, resolver.StatusFor("GP-01").State)
	assert.Equal(t, gatekeepingv1.GoldenPathPassed, resolver.StatusFor("GP-05").State)
	assert.Equal(t, gatekeepingv1.GoldenPathFailed, resolver.StatusFor("GP-04").State)
	assert.Equal(t, gatekeepingv1.GoldenPathFailed, resolver.StatusFor("GP-06").State)
}
