package main

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hearthcheck/wicket/pkg/featureflags"
	"github.com/hearthcheck/wicket/pkg/flags"
	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/navigation"
	"github.com/hearthcheck/wicket/pkg/wicketserver"
	"github.com/hearthcheck/wicket/pkg/wicketserver/metrics"
)

type ServerFlags struct {
	ConfigFlags      *flags.ConfigFlags
	EnvironmentFlags *flags.EnvironmentFlags
	GoldenPathFlags  *flags.GoldenPathFlags

	ListenAddr  string
	MetricsAddr string
}

func NewServerFlags() *ServerFlags {
	return &ServerFlags{
		ConfigFlags:      flags.NewConfigFlags(),
		EnvironmentFlags: flags.NewEnvironmentFlags(),
		GoldenPathFlags:  flags.NewGoldenPathFlags(),
		ListenAddr:       ":8080",
		MetricsAddr:      ":2112",
	}
}

func (f *ServerFlags) BindFlags(flagSet *pflag.FlagSet) {
	f.ConfigFlags.BindFlags(flagSet)
	f.EnvironmentFlags.BindFlags(flagSet)
	f.GoldenPathFlags.BindFlags(flagSet)

	flagSet.StringVar(&f.ListenAddr, "listen", f.ListenAddr, "The address to serve route decisions on (default :8080)")
	flagSet.StringVar(&f.MetricsAddr, "listen-metrics", f.MetricsAddr, "The address to serve prometheus metrics on (default :2112)")
}

func (f *ServerFlags) Validate() error {
	if err := f.EnvironmentFlags.Validate(); err != nil {
		return err
	}
	return f.GoldenPathFlags.Validate()
}

// applyConfig lets the config file fill in anything not set on the
// command line.
func (f *ServerFlags) applyConfig(flagSet *pflag.FlagSet) error {
	config, err := f.ConfigFlags.GetConfig()
	if err != nil {
		return err
	}
	if config.Environment != "" && !flagSet.Changed("environment") {
		f.EnvironmentFlags.Environment = config.Environment
	}
	if config.GoldenPath.ReportPath != "" && !flagSet.Changed("golden-path-report") {
		f.GoldenPathFlags.ReportPath = config.GoldenPath.ReportPath
	}
	if config.Server.ListenAddr != "" && !flagSet.Changed("listen") {
		f.ListenAddr = config.Server.ListenAddr
	}
	if config.Server.MetricsAddr != "" && !flagSet.Changed("listen-metrics") {
		f.MetricsAddr = config.Server.MetricsAddr
	}
	return nil
}

func NewServeCommand() *cobra.Command {
	f := NewServerFlags()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wicket decision server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.applyConfig(cmd.Flags()); err != nil {
				return errors.WithMessage(err, "error loading config")
			}
			if err := f.Validate(); err != nil {
				return errors.WithMessage(err, "error validating options")
			}

			resolver := f.GoldenPathFlags.GetResolver()
			evaluator := gatekeeping.NewEvaluator(
				navigation.Default(),
				resolver,
				f.EnvironmentFlags.GetEnvironment(),
			)

			server := wicketserver.NewServer(
				f.ListenAddr,
				evaluator,
				navigation.Default(),
				featureflags.Default(),
				resolver,
			)

			if f.MetricsAddr != "" {
				// Do an immediate metrics update
				metrics.Refresh(evaluator, resolver)

				// Refresh our metrics every 5 minutes:
				ticker := time.NewTicker(5 * time.Minute)
				go func() {
					for range ticker.C {
						metrics.Refresh(evaluator, resolver)
					}
				}()

				// Serve our metrics endpoint for prometheus to scrape
				go func() {
					http.Handle("/metrics", promhttp.Handler())
					err := http.ListenAndServe(f.MetricsAddr, nil) //nolint
					if err != nil {
						panic(err)
					}
				}()
			}

			log.WithField("environment", f.EnvironmentFlags.Environment).Info("starting wicket")
			server.Serve()
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	return cmd
}
