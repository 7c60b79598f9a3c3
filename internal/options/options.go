// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Layout      string `flag:"l" usage:"Starlark layout script that defines segments"`
	Output      string `flag:"o" usage:"output segment map file (default: stdout)"`
	Config      string `flag:"c" usage:"ca65 linker config file to write"`
	CodeDataLog string `flag:"cdl" usage:"Code/Data log file (.cdl) to write, format detected from the name"`
}

// Flags contains behavior options.
type Flags struct {
	Target     string `flag:"t" usage:"target system: nes, snes, gb (default: auto-detect)"`
	NoDefaults bool   `flag:"nodefaults" usage:"do not create the default segments of the target"`
	Debug      bool   `flag:"debug" usage:"enable debug logging"`
	Quiet      bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the layout tool.
type Program struct {
	Parameters
	Flags
}
