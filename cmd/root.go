package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/ui"
)

// version is set at build time with -ldflags "-X github.com/xll-gen/bin2c/cmd.version=...".
var version = "dev"

// rootFlags holds the values of the command-line flags for one invocation.
type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	verify     bool
	quiet      bool
}

// newRootCmd builds the bin2c command. Each call returns an independent
// command so flag values never leak between invocations.
func newRootCmd(stdout io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "bin2c <dest-dir> <output-name> <file> [type]",
		Short: "Embed a file into a C header/source pair",
		Long: `bin2c converts a file into <dest-dir>/<output-name>.h and <dest-dir>/<output-name>.c.
The source file defines a const array named <output-name> holding the file's bytes
as a string literal; the header declares it together with <output-name>_size.

Type:
  text  declare a char array with room for a NUL terminator
  bin   declare an unsigned char array of the exact file size (default)`,
		Version:       version,
		Args:          validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := ui.New(stdout)
			printer.SetQuiet(flags.quiet)
			return runGenerate(cmd, flags, args, printer)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errs.ErrArgument, err)
	})

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Path to a yaml configuration file")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	f.BoolVar(&flags.verify, "verify", false, "Decode the generated source and compare it with the input")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the generated file names")

	return cmd
}

// validateArgs checks the positional arguments before anything is read or written.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("expected 3 or 4 arguments, got %d: %w", len(args), errs.ErrArgument)
	}
	if len(args) == 4 {
		if _, err := config.ParseContentType(args[3]); err != nil {
			return err
		}
	}
	return config.ValidateName(args[1])
}

// run executes the command with the given arguments and returns the exit status.
// Argument errors are followed by the usage text.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		ui.New(stderr).PrintError("error", err.Error())
		if errors.Is(err, errs.ErrArgument) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return errs.ExitCode(err)
}

// Execute runs the bin2c command with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
