package cdl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/system/nes/codedatalog"
)

// ErrUnknownFormat is returned for format names that are not supported.
var ErrUnknownFormat = errors.New("unknown code/data log format")

// Format defines the wire format of a code/data log.
type Format uint8

// supported formats.
const (
	FormatAuto  Format = iota // detect from the output file name
	FormatFCEUX               // flag array without header
	FormatMesen               // header followed by the flag array
)

var formatNames = [...]string{
	FormatAuto:  "auto",
	FormatFCEUX: "fceux",
	FormatMesen: "mesen",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// FormatFromString returns the format for the given case-insensitive name.
func FormatFromString(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for format, formatName := range formatNames {
		if formatName == name {
			return Format(format), nil
		}
	}
	return FormatAuto, fmt.Errorf("%w '%s'", ErrUnknownFormat, name)
}

// flags of the FCEUX format, as read by the FCEUX code/data log reader.
const (
	FCEUXCode         = byte(codedatalog.Code)
	FCEUXData         = byte(codedatalog.Data)
	FCEUXIndirectCode = byte(codedatalog.IndirectCode)
	FCEUXIndexedData  = byte(codedatalog.IndirectData)
	FCEUXPCMAudio     = byte(codedatalog.PCMAudio)
)

// flags of the Mesen format.
const (
	MesenCode          = 0x01
	MesenData          = 0x02
	MesenJumpTarget    = 0x04
	MesenSubEntryPoint = 0x08
	MesenDrawn         = 0x10
	MesenRead          = 0x20
)

// header of the Mesen format.
const (
	Signature  = "CDL"
	Version    = 0x01
	HeaderSize = len(Signature) + 1
)

// flagSet maps the classifications that the generator sets to the bits of a format.
// A zero bit means that the format has no equivalent.
type flagSet struct {
	code          byte
	jumpTarget    byte
	subEntryPoint byte
	labelEntry    byte // set for labels with a subroutine name prefix
}

func (f Format) flags() flagSet {
	if f == FormatFCEUX {
		return flagSet{
			code:          FCEUXCode,
			subEntryPoint: FCEUXIndirectCode,
			labelEntry:    FCEUXIndirectCode,
		}
	}
	return flagSet{
		code:          MesenCode,
		jumpTarget:    MesenJumpTarget,
		subEntryPoint: MesenSubEntryPoint,
		labelEntry:    MesenSubEntryPoint,
	}
}

var formatFragments = []struct {
	fragment string
	format   Format
}{
	{"fceux", FormatFCEUX},
	{"mesen", FormatMesen},
}

// DetectFormat returns the format matching a vendor name contained in the file path.
// The Mesen format is returned if no vendor name matches.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	for _, f := range formatFragments {
		if strings.Contains(lower, f.fragment) {
			return f.format
		}
	}
	return FormatMesen
}
