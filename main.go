// Package main implements retroasm-layout, a tool that prints the segment layout of a
// target and generates ca65 linker configs from layout scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/cdl"
	"github.com/retroenv/retroasm/internal/cli"
	"github.com/retroenv/retroasm/internal/config"
	"github.com/retroenv/retroasm/internal/detector"
	"github.com/retroenv/retroasm/internal/layout"
	"github.com/retroenv/retroasm/internal/options"
	"github.com/retroenv/retroasm/internal/segment"
	"github.com/retroenv/retroasm/internal/symbols"
	"github.com/retroenv/retroasm/internal/writer"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Processing layout failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	target := detector.New(logger).Detect(opts)

	logger.Info("Processing layout",
		log.String("target", target.String()),
		log.String("layout", opts.Layout))

	manager := segment.New(logger)
	if !opts.NoDefaults {
		manager.CreateDefaultSegments(target)
	}

	if opts.Layout != "" {
		if err := layout.LoadFile(manager, opts.Layout, target); err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	manager.ValidateSegments()

	if err := writeSegmentMap(manager, opts.Output); err != nil {
		return err
	}

	if opts.Config != "" {
		if err := writeCa65Config(manager, opts.Config); err != nil {
			return err
		}
	}

	if opts.CodeDataLog != "" {
		if err := writeCodeDataLog(logger, target, manager, opts.CodeDataLog); err != nil {
			return err
		}
	}

	if err := manager.Err(); err != nil {
		return fmt.Errorf("segment layout has %d error(s): %w", len(manager.Errors()), err)
	}
	return nil
}

func writeSegmentMap(manager *segment.Manager, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		w = file
	}

	if err := writer.New(w).WriteSegmentMap(manager); err != nil {
		return fmt.Errorf("writing segment map: %w", err)
	}
	return nil
}

func writeCa65Config(manager *segment.Manager, path string) error {
	cfg, err := layout.GenerateCa65Config(manager)
	if err != nil {
		return fmt.Errorf("generating ca65 config: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		return fmt.Errorf("writing ca65 config: %w", err)
	}
	return nil
}

// writeCodeDataLog exports a code/data log that marks all bytes written to the
// segments as code. The log covers the file area of all ROM backed segments.
func writeCodeDataLog(logger *log.Logger, target arch.Target, manager *segment.Manager, path string) error {
	input := cdl.Input{
		Target:   target,
		Segments: manager.OutputSegments(),
		Symbols:  symbols.New(),
	}

	gen := cdl.New(logger)
	if err := gen.Export(path, input, fileSize(target, manager), cdl.FormatAuto); err != nil {
		return fmt.Errorf("exporting code/data log: %w", err)
	}
	return nil
}

// fileSize returns the size of the output file that the ROM backed segments span.
func fileSize(target arch.Target, manager *segment.Manager) int {
	var size int
	for _, seg := range manager.OrderedSegments() {
		switch seg.Type() {
		case segment.Code, segment.Data, segment.Rom:
		default:
			continue
		}
		if seg.MaxSize() == 0 {
			continue
		}

		last := seg.StartAddress() + uint32(seg.MaxSize()) - 1
		if offset, ok := arch.FileOffset(target, last); ok {
			size = max(size, offset+1)
		}
	}
	return size
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("retroasm-layout", log.String("version", buildinfo.Version(version, commit, date)))
	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
