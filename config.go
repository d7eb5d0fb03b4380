package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	port           int
	production     bool
	assetRoot      string
	staticCacheAge time.Duration
	rateLimitRPS   int
	rateLimitBurst int
	verbose        bool
	version        bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.rateLimitBurst < 1 {
		return fmt.Errorf("invalid rate limit burst (must be at least 1): %d", c.rateLimitBurst)
	}
	if c.staticCacheAge < 0 {
		return errors.New("static cache age must not be negative")
	}
	return nil
}

func (c *Config) env() string {
	if c.production {
		return "production"
	}
	return "development"
}

// bindEnv makes every flag of fs settable through NEGATRIS_<FLAG_NAME>.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newCmd(cfg *Config) *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Serve Negatris, a falling-word game about negative prefixes.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cfg.production, cfg.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			app, err := newApp(cfg)
			if err != nil {
				return err
			}
			return app.startServer(ctx, app.setupRouter())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: NEGATRIS_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: NEGATRIS_PORT)")
	fs.BoolVar(&cfg.production, "production", false, "serve minified assets from dist/ and cache static files (env: NEGATRIS_PRODUCTION)")
	fs.StringVar(&cfg.assetRoot, "assets", ".", "directory containing templates/ and static/ (env: NEGATRIS_ASSETS)")
	fs.DurationVar(&cfg.staticCacheAge, "static-cache-age", 5*time.Minute, "max-age for static assets in production (env: NEGATRIS_STATIC_CACHE_AGE)")
	fs.IntVar(&cfg.rateLimitRPS, "rate-limit-rps", 5, "requests per second allowed per client on limited routes (env: NEGATRIS_RATE_LIMIT_RPS)")
	fs.IntVar(&cfg.rateLimitBurst, "rate-limit-burst", 10, "burst size for rate-limited routes (env: NEGATRIS_RATE_LIMIT_BURST)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: NEGATRIS_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: NEGATRIS_VERSION)")
	bindEnv(v, fs)

	cmd.AddCommand(newWordsCmd(), newSimulateCmd(v))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("negatris v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
