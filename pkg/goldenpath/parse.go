package goldenpath

import (
	"regexp"
	"strings"
	"time"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

var (
	statusLineRegexp   = regexp.MustCompile(`(?i)^[-*\s]*status\s*:\s*(.+)$`)
	lastRunLineRegexp  = regexp.MustCompile(`(?i)^[-*\s]*last\s*(?:run|executed)\s*:\s*(.+)$`)
	durationLineRegexp = regexp.MustCompile(`(?i)^[-*\s]*duration\s*:\s*(.+)$`)
)

// A status line counts as passing when it carries one of these
// markers, case-insensitively.
var passMarkers = []string{"🟢", "✅", "pass", "complete"}

// layouts tried against the last-run line, most specific first.
var lastRunLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// parseStatus locates the report section whose heading names testID
// and extracts its status, last-run and duration lines. A report with
// no section for testID says nothing about it, which resolves to
// report-unavailable.
func parseStatus(report []byte, testID string) gatekeepingv1.GoldenPathStatus {
	section, ok := findSection(string(report), testID)
	if !ok {
		return gatekeepingv1.GoldenPathStatus{
			TestID: testID,
			State:  gatekeepingv1.GoldenPathReportUnavailable,
		}
	}

	status := gatekeepingv1.GoldenPathStatus{
		TestID: testID,
		State:  gatekeepingv1.GoldenPathReportUnavailable,
	}
	for _, line := range section {
		if m := statusLineRegexp.FindStringSubmatch(line); m != nil {
			if classifyStatus(m[1]) {
				status.State = gatekeepingv1.GoldenPathPassed
			} else {
				status.State = gatekeepingv1.GoldenPathFailed
			}
			continue
		}
		if m := lastRunLineRegexp.FindStringSubmatch(line); m != nil {
			if ts := parseLastRun(m[1]); ts != nil {
				status.LastRun = ts
			}
			continue
		}
		if m := durationLineRegexp.FindStringSubmatch(line); m != nil {
			status.Duration = strings.TrimSpace(m[1])
		}
	}
	return status
}

// findSection returns the lines between the heading containing testID
// and the next heading of any level.
func findSection(report, testID string) ([]string, bool) {
	lines := strings.Split(report, "\n")
	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if start >= 0 {
			return lines[start+1 : i], true
		}
		if headingNames(line, testID) {
			start = i
		}
	}
	if start >= 0 {
		return lines[start+1:], true
	}
	return nil, false
}

// headingNames reports whether the heading line names testID as a
// whole token, so "GP-1" does not match a "GP-10" heading.
func headingNames(line, testID string) bool {
	text := strings.TrimLeft(strings.TrimSpace(line), "# ")
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ':' || r == '(' || r == ')' || r == '\t'
	}) {
		if strings.EqualFold(token, testID) {
			return true
		}
	}
	return false
}

func classifyStatus(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range passMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func parseLastRun(text string) *time.Time {
	trimmed := strings.TrimSpace(text)
	for _, layout := range lastRunLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return &ts
		}
	}
	return nil
}
