package flags

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	v1 "github.com/hearthcheck/wicket/pkg/apis/config/v1"
)

// ConfigFlags holds the location of wicket's optional configuration
// file. Flags given on the command line win over config file values.
type ConfigFlags struct {
	Path string
}

func NewConfigFlags() *ConfigFlags {
	return &ConfigFlags{}
}

func (f *ConfigFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Path,
		"config",
		f.Path,
		"Configuration file for wicket")
}

func (f *ConfigFlags) GetConfig() (*v1.WicketConfig, error) {
	var config v1.WicketConfig

	if f.Path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.WithMessage(err, "could not load config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.WithMessage(err, "couldn't unmarshal config")
	}

	return &config, nil
}
