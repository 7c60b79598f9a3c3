package cdl

import (
	"fmt"
	"os"
)

// Export writes the code/data log to the given path. The format is detected from the
// path if FormatAuto is passed.
func (g *Generator) Export(path string, input Input, outputSize int, format Format) error {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	data := g.Generate(input, outputSize, format)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing code/data log file: %w", err)
	}
	return nil
}
