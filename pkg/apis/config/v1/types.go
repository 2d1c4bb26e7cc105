package v1

type WicketConfig struct {
	// Environment the gatekeeper evaluates against:
	// development, staging or production.
	Environment string `yaml:"environment"`

	GoldenPath GoldenPathConfig `yaml:"goldenPath"`
	Server     ServerConfig     `yaml:"server,omitempty"`
}

type GoldenPathConfig struct {
	// ReportPath is the location of the golden-path report artifact
	// produced by the out-of-band acceptance test runner. The file is
	// re-read on every evaluation.
	ReportPath string `yaml:"reportPath"`
}

type ServerConfig struct {
	// ListenAddr is the address the decision API is served on.
	ListenAddr string `yaml:"listenAddr,omitempty"`

	// MetricsAddr is the address prometheus metrics are served on.
	MetricsAddr string `yaml:"metricsAddr,omitempty"`
}
