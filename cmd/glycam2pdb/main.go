// Package main provides the glycam2pdb command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/batch"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError marks errors caused by invalid invocation.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(normalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := root.ExecuteContext(ctx)
	_ = a.logger.Sync()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if exitCode(err) == ExitUsage {
		fmt.Fprintf(stderr, "Hint: run 'glycam2pdb --help' for usage\n")
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) || errors.Is(err, batch.ErrNotFileOrDir) ||
		strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsage
	}
	return ExitError
}

// normalizeArgs rewrites single-dash long flags ("-input") to their
// double-dash form. Shorthands such as "-o" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			name, _, _ := strings.Cut(a[1:], "=")
			if longFlags[name] {
				a = "-" + a
			}
		}
		out = append(out, a)
	}
	return out
}

// longFlags are the long flag names accepted with a single dash.
var longFlags = map[string]bool{
	"input": true, "output": true, "validate": true, "summary": true,
	"config": true, "verbose": true, "version": true, "help": true,
	"receiver": true, "donor": true, "glycan-index": true,
	"trim-clashing": true, "user-messages": true,
	"cap-marker": true, "model-marker": true, "strict": true,
	"atom-aliases": true, "store": true, "skip-unchanged": true,
	"status": true, "clear": true,
	"engine-command": true, "engine-url": true, "engine-timeout": true,
}

var rootFlagKeys = map[string]string{
	"engine-command": keyEngineCommand,
	"engine-url":     keyEngineURL,
	"engine-timeout": keyEngineTimeout,
	"store":          keyStorePath,
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string
	var verbose bool

	root := &cobra.Command{
		Use:   "glycam2pdb",
		Short: "Convert GLYCAM glycan models into PDB nomenclature",
		Long: `glycam2pdb rewrites GLYCAM-named coordinate files into wwPDB residue and
atom naming so that carbohydrate validation software can read them.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usagef("a command is required")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			if err := bindFlags(cmd.Flags(), rootFlagKeys); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), verbose)
			if err != nil {
				return usagef("%v", err)
			}
			a.logger = logger
			return nil
		},
	}
	root.SetVersionTemplate("glycam2pdb version {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.glycam2pdb.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("engine-command", "", "Validation engine bridge command (JSON on stdin/stdout)")
	root.PersistentFlags().String("engine-url", "", "Validation engine bridge service URL")
	root.PersistentFlags().Duration("engine-timeout", 5*time.Minute, "Timeout for one engine request")
	root.PersistentFlags().String("store", "", "DuckDB file recording conversion and validation results")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newGraftCmd(a))
	root.AddCommand(newMMCIFCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newConfigCmd())

	return root
}
