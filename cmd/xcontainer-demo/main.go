package main

import (
	"fmt"
	"log/slog"
	"os"

	"deedles.dev/xcontainer/internal/demo"
	"github.com/spf13/cobra"
)

var (
	config   = demo.DefaultConfig()
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "xcontainer-demo",
	Short:        "Exercise the xcontainer queue and stack",
	SilenceUsage: true,
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Fill, copy, drain and move a queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return r.Queue()
	},
}

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Fill, copy, drain and assign a stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return r.Stack()
	},
}

func newRunner(cmd *cobra.Command) (demo.Runner, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return demo.Runner{}, fmt.Errorf("parse log level: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return demo.Runner{
		W:      cmd.OutOrStdout(),
		Log:    logger,
		Config: config,
	}, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&config.Start, "start", config.Start, "first pushed value")
	flags.IntVar(&config.Stop, "stop", config.Stop, "values stop below this bound")
	flags.IntVar(&config.Step, "step", config.Step, "difference between pushed values")
	flags.IntVar(&config.Pops, "pops", config.Pops, "pops attempted per drain")
	flags.StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(queueCmd, stackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
