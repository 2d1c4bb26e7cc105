// Package goldenpath resolves the pass/fail state of upstream
// acceptance tests ("golden paths") from the report artifact their
// runner publishes. The report is read fresh on every lookup and a
// lookup never fails: any read or parse problem resolves to a
// report-unavailable status, which denies gated routes.
package goldenpath

import (
	"os"

	log "github.com/sirupsen/logrus"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
)

// Source supplies the raw report document.
type Source interface {
	Fetch() ([]byte, error)
}

// FileSource reads the report from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch() ([]byte, error) {
	return os.ReadFile(s.Path)
}

type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

func NewFileResolver(path string) *Resolver {
	return NewResolver(FileSource{Path: path})
}

// StatusFor resolves the named golden path. An empty testID means the
// caller declared no golden path, which passes automatically.
func (r *Resolver) StatusFor(testID string) gatekeepingv1.GoldenPathStatus {
	if testID == "" {
		return gatekeepingv1.GoldenPathStatus{State: gatekeepingv1.GoldenPathNotRequired}
	}

	data, err := r.source.Fetch()
	if err != nil {
		log.WithError(err).Warningf("could not read golden path report for %s", testID)
		return gatekeepingv1.GoldenPathStatus{
			TestID: testID,
			State:  gatekeepingv1.GoldenPathReportUnavailable,
		}
	}

	return parseStatus(data, testID)
}
