package version

// Set via ldflags at build time, e.g.
// -X github.com/hearthcheck/wicket/pkg/version.gitCommit=$(git rev-parse HEAD)
var (
	gitVersion = "v0.0.0-unknown"
	gitCommit  = "unknown"
	buildDate  = "unknown"
)

type Info struct {
	GitVersion string `json:"gitVersion" yaml:"gitVersion"`
	GitCommit  string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate  string `json:"buildDate" yaml:"buildDate"`
}

func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
	}
}
