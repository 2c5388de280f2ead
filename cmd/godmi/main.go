package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"godmi/internal/app"
	"godmi/internal/dmitype"
	"godmi/internal/options"
)

// Exit codes
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

var errColor = color.New(color.FgRed)

// usageError marks failures of the command line itself
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// keywordList joins the --type keyword names for the long help
func keywordList() string {
	kws := dmitype.Keywords()
	names := make([]string, len(kws))
	for i, kw := range kws {
		names[i] = kw.Name
	}
	return strings.Join(names, ", ")
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   app.ProgName + " [OPTIONS]",
		Short: "SMBIOS table decoder",
		Long: `Select and decode SMBIOS entries read from a memory device.

Entries can be restricted with --type, which accepts a keyword
(` + keywordList() + `) or a list of numeric types:
  godmi --type memory --type 0x20,32`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := options.Parse(args)
			if err != nil {
				return &usageError{err: err}
			}

			application := app.NewApplication(config, cmd.OutOrStdout())
			application.Logger().SetOutput(cmd.ErrOrStderr())
			return application.Run(cmd.Context())
		},
	}
}

// run executes the command with args (program name excluded) and returns
// the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errColor.Fprintf(stderr, "Error: %v\n", err)

		var ue *usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitRuntime
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
