package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/internal/source"
	"github.com/xll-gen/bin2c/internal/ui"
	"github.com/xll-gen/bin2c/pkg/log"
)

// runGenerate loads the configuration, reads the input file and writes the
// header and source files.
//
// Returns:
//   - error: An error if any step fails. Nothing is written when the input
//     cannot be read.
func runGenerate(cmd *cobra.Command, flags *rootFlags, args []string, printer *ui.Printer) error {
	// 1. Configuration, command-line values win
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Logging.Path = flags.logFile
	}
	if cmd.Flags().Changed("verify") {
		cfg.Verify = flags.verify
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	closeLog, err := log.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w: %w", errs.ErrIO, err)
	}
	defer closeLog()

	opts, err := config.NewOptions(args, cfg)
	if err != nil {
		return err
	}

	// 2. Input
	buf, err := source.Load(opts.Input)
	if err != nil {
		return err
	}

	// 3. Output
	if err := generator.Generate(opts, buf); err != nil {
		return err
	}

	printer.PrintHeader(fmt.Sprintf("Embedded %s (%d bytes) as %s", opts.Input, buf.Size, opts.Target.Name))
	if opts.Type == config.Text && bytes.IndexByte(buf.Content(), 0) >= 0 {
		printer.PrintWarning("text", "input contains NUL bytes, C string functions will stop at the first one")
	}
	printer.PrintSuccess("header", opts.Target.HeaderPath())
	printer.PrintSuccess("source", opts.Target.SourcePath())
	if opts.Verify {
		printer.PrintSuccess("verified", fmt.Sprintf("%d bytes", buf.Size))
	}
	return nil
}
