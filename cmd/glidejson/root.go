// Package main implements the glidejson CLI: validate, format, and
// Base64 codec subcommands wired directly onto the glidejson library.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nzeid/glidejson-go"
)

// errSilentExit signals a subcommand already reported its own
// diagnostic (e.g. validate's "invalid" line) and Execute should just
// exit non-zero without logging the error a second time.
var errSilentExit = errors.New("silent non-zero exit")

// globalFlags mirrors the quiet/verbose pair every subcommand shares,
// with GLIDEJSON_LOG_LEVEL able to set the starting level before flags
// are parsed.
type globalFlags struct {
	quiet   bool
	verbose bool
}

type globalState struct {
	flags  globalFlags
	logger *logrus.Logger
	stdIn  io.Reader
	stdOut io.Writer
	stdErr io.Writer
}

func newGlobalState() *globalState {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if level, ok := os.LookupEnv("GLIDEJSON_LOG_LEVEL"); ok {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsed)
		}
	}
	return &globalState{
		logger: logger,
		stdIn:  os.Stdin,
		stdOut: os.Stdout,
		stdErr: os.Stderr,
	}
}

func rootPersistentFlagSet(gs *globalState) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&gs.flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&gs.flags.quiet, "quiet", "q", false, "only log warnings and errors")
	return flags
}

func (gs *globalState) applyLogLevel() {
	switch {
	case gs.flags.verbose:
		gs.logger.SetLevel(logrus.DebugLevel)
	case gs.flags.quiet:
		gs.logger.SetLevel(logrus.WarnLevel)
	}
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:           "glidejson",
		Short:         "validate, format, and Base64-encode JSON from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			gs.applyLogLevel()
			glidejson.SetLogger(gs.logger)
			return nil
		},
	}
	root.PersistentFlags().AddFlagSet(rootPersistentFlagSet(gs))
	root.SetOut(gs.stdOut)
	root.SetErr(gs.stdErr)
	root.SetIn(gs.stdIn)

	root.AddCommand(
		newValidateCmd(gs),
		newFormatCmd(gs),
		newB64EncodeCmd(gs),
		newB64DecodeCmd(gs),
	)
	return root
}

// Execute runs the root command and maps a failure to a non-zero exit
// code, the one place this binary is allowed to call os.Exit.
func Execute() {
	gs := newGlobalState()
	root := newRootCommand(gs)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errSilentExit) {
			gs.logger.Error(err)
		}
		os.Exit(1)
	}
}

func readInput(gs *globalState, args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(gs.stdIn)
}
