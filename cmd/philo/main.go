package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/philo/internal/adapters/console"
	"github.com/bft-labs/philo/internal/cliconfig"
	"github.com/bft-labs/philo/pkg/log"
	"github.com/bft-labs/philo/pkg/philo"
	"github.com/bft-labs/philo/plugins/stopfile"
)

const helpDescription = `
Seat N philosophers at a round table with one fork between each pair and
watch them eat, sleep and think until one starves or all have eaten enough.

Each action is printed as "<elapsed_ms> philosopher <id> <action>".
Exits with status 1 when a philosopher starves.

Configuration is read from flags, then PHILO_* environment variables, then
the config file. Positional arguments count as flags.
`

var exampleUsage = strings.TrimSpace(`
  philo 5 800 200 200
  philo 5 800 200 200 7 --strategy ordered
  philo 4 410 200 200 --color never --stop-file /tmp/philo.stop
  philo topology 5 --format dot | dot -Tsvg > table.svg
`)

// errStarved makes the process exit 1 without printing an error.
var errStarved = errors.New("a philosopher starved")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errStarved) {
			logger := cliconfig.Logger(zerolog.InfoLevel)
			logger.Error().Err(err).Msg("philo")
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "philo <philosophers> <time_to_die_ms> <time_to_eat_ms> <time_to_sleep_ms> [required_feeds]",
		Short:   "Simulate the dining philosophers",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		// ParseArgs checks the count; without Args cobra treats the first
		// positional argument as an unknown subcommand.
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := cliconfig.ParseArgs(args, &cfg, changed); err != nil {
				return err
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (PHILO_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.philo/config.toml)")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "how often each watchdog checks its philosopher")
	root.Flags().DurationVar(&cfg.Stagger, "stagger", cfg.Stagger, "head start for odd-numbered philosophers")
	root.Flags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "fork acquisition order: left-first, right-first or ordered")
	root.Flags().StringVar(&cfg.Color, "color", cfg.Color, "colour the action stream: auto, always or never")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level on stderr")
	root.Flags().StringVar(&cfg.StopFile, "stop-file", cfg.StopFile, "stop the simulation when this file is created")

	root.AddCommand(newTopologyCmd())

	return root
}

// run executes one simulation. Config must be validated.
func run(ctx context.Context, cfg cliconfig.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	strategy, _ := cfg.DiningStrategy()
	colorMode, _ := cfg.ColorMode()
	level, _ := cfg.Level()

	zl := cliconfig.NewLogger(stderr, level)
	logger := log.NewZerologAdapterWithLogger(zl)
	logger.Debug("configuration", log.Any("config", cfg))

	opts := []philo.Option{
		philo.WithLogger(logger),
		philo.WithReporter(console.NewReporter(stdout, colorMode)),
		philo.WithStrategy(strategy),
	}
	if cfg.StopFile != "" {
		opts = append(opts, stopfile.WithPath(cfg.StopFile))
	}

	sim, err := philo.New(cfg.Simulation(), opts...)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}
	defer func() {
		if err := sim.Close(); err != nil {
			logger.Warn("shutdown incomplete", log.Err(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := sim.Start(ctx); err != nil {
		return fmt.Errorf("start simulation: %w", err)
	}

	go func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		logger.Info("received signal, stopping", log.String("signal", sig.String()))
		_ = sim.Stop("signal " + sig.String())
	}()

	verdict, err := sim.Wait(ctx)
	if err != nil {
		return err
	}
	if verdict.Kind == philo.VerdictStarved {
		return errStarved
	}
	return nil
}
