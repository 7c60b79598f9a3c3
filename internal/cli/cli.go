// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if len(rest) > 1 {
		return opts, &UsageError{flags: flags, msg: "only one layout script can be passed"}
	}
	if len(rest) == 1 {
		if opts.Layout != "" {
			return opts, &UsageError{flags: flags, msg: "layout script passed as flag and argument"}
		}
		opts.Layout = rest[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retroasm-layout [options] [layout script]\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Target != "" {
		target, err := arch.TargetFromString(opts.Target)
		if err != nil {
			return fmt.Errorf("unsupported target: %w", err)
		}
		opts.Target = target.String()
	}

	if opts.NoDefaults && opts.Layout == "" {
		return fmt.Errorf("a layout script is required when default segments are disabled")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Layout, "l", "", "name of the Starlark layout script that defines segments")
	flags.StringVar(&opts.Output, "o", "", "name of the output segment map file, printed on console if no name given")
	flags.StringVar(&opts.Config, "c", "", "Config file name to write a ca65 linker config to")
	flags.StringVar(&opts.CodeDataLog, "cdl", "", "name of the .cdl Code/Data log file to write, fceux or mesen in the name selects the format")
	flags.StringVar(&opts.Target, "t", "", "target system (nes, snes, gb) - if not auto-detected from the layout script name")
	flags.BoolVar(&opts.NoDefaults, "nodefaults", false, "do not create the default segments of the target")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
