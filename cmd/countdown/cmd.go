package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/countdown"
	"github.com/AnatoleLucet/countdown/display"
)

type options struct {
	configPath string
	format     string
	seed       int64
	runFor     time.Duration
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show a random number and the seconds left until the next one",
		Long: `countdown prints a new random number every interval, along with a
countdown that restarts each time the number changes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	flags.Int64Var(&opts.seed, "seed", 0, "randomizer seed, 0 seeds from the current time")
	flags.DurationVar(&opts.runFor, "for", 0, "stop after this long, 0 runs until interrupted")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	cfg := countdown.DefaultConfig()
	if opts.configPath != "" {
		if cfg, err = countdown.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	surface, err := display.New(opts.format, stdout, log)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.runFor)
		defer cancel()
	}

	loop := countdown.NewLoop(countdown.WithLoopLogger(log))

	app, err := countdown.Mount(loop, surface, cfg, log)
	if err != nil {
		return err
	}
	defer app.Unmount()

	err = loop.Run(ctx)
	switch errors.Cause(err) {
	case context.Canceled, context.DeadlineExceeded:
		return nil
	default:
		return err
	}
}
