package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retroasm/internal/segment"
)

var errNoSegments = errors.New("no segments defined")

const (
	memoryHeader  = "MEMORY {\n"
	memoryROLine  = "    %-12s start = $%04X,  size = $%04X,   type = ro, file = %%O, fill = yes%s;\n"
	memoryRWLine  = "    %-12s start = $%04X,  size = $%04X,   type = rw, file = \"\"%s;\n"
	segmentHeader = "SEGMENTS {\n"
	segmentLine   = "    %-12s load = %s, type = %s;\n"
	blockFooter   = "}\n"
)

// GenerateCa65Config generates a ca65 linker config that contains one memory area and
// one segment for every segment of the manager.
func GenerateCa65Config(manager *segment.Manager) (string, error) {
	segments := manager.OrderedSegments()
	if len(segments) == 0 {
		return "", errNoSegments
	}

	buf := &strings.Builder{}
	buf.WriteString(memoryHeader)
	for _, seg := range segments {
		line := memoryRWLine
		if memoryType(seg.Type()) == "ro" {
			line = memoryROLine
		}
		var bank string
		if seg.Bank() > 0 {
			bank = fmt.Sprintf(", bank = $%02X", seg.Bank())
		}

		if _, err := fmt.Fprintf(buf, line, seg.Name()+":", seg.StartAddress(), seg.MaxSize(), bank); err != nil {
			return "", fmt.Errorf("writing memory line: %w", err)
		}
	}
	buf.WriteString(blockFooter)
	buf.WriteString("\n")

	buf.WriteString(segmentHeader)
	for _, seg := range segments {
		if _, err := fmt.Fprintf(buf, segmentLine, seg.Name()+":", seg.Name(), segmentType(seg.Type())); err != nil {
			return "", fmt.Errorf("writing segment line: %w", err)
		}
	}
	buf.WriteString(blockFooter)

	return buf.String(), nil
}

func memoryType(typ segment.Type) string {
	switch typ {
	case segment.ZeroPage, segment.Ram, segment.Bss:
		return "rw"
	default:
		return "ro"
	}
}

func segmentType(typ segment.Type) string {
	switch typ {
	case segment.ZeroPage:
		return "zp"
	case segment.Bss:
		return "bss"
	case segment.Ram:
		return "rw"
	default:
		return "ro"
	}
}
