package flags

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hearthcheck/wicket/pkg/goldenpath"
)

// GoldenPathFlags locate the report artifact the acceptance test
// runner publishes out of band.
type GoldenPathFlags struct {
	ReportPath string
}

func NewGoldenPathFlags() *GoldenPathFlags {
	return &GoldenPathFlags{
		ReportPath: "config/golden-path-report.md",
	}
}

func (f *GoldenPathFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.ReportPath, "golden-path-report", f.ReportPath,
		"Path to the golden path report artifact, re-read on every evaluation")
}

func (f *GoldenPathFlags) Validate() error {
	if f.ReportPath == "" {
		return fmt.Errorf("golden-path-report must be specified")
	}
	// An absent report is not fatal, gated routes just resolve to
	// report-unavailable. Warn-level handling happens at read time.
	if _, err := os.Stat(f.ReportPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *GoldenPathFlags) GetResolver() *goldenpath.Resolver {
	return goldenpath.NewFileResolver(f.ReportPath)
}
