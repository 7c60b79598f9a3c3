// Package writer implements the segment map report output.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/retroasm/internal/segment"
)

const (
	headerLine = "%-16s %4s  %-8s %-8s %8s %8s  %s\n"
	rowLine    = "%-16s %4d  %-8s %-8s %8s %8s  %s%s\n"
)

// Writer writes reports of the segment layout.
type Writer struct {
	writer io.Writer
}

// New creates a new writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// WriteSegmentMap writes one row per segment in address order, followed by all
// errors that the manager recorded.
func (w Writer) WriteSegmentMap(manager *segment.Manager) error {
	if _, err := fmt.Fprintf(w.writer, headerLine, "Segment", "Bank", "Start", "End", "Used", "Size", "Type"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, seg := range manager.OrderedSegments() {
		if err := w.writeSegment(seg); err != nil {
			return err
		}
	}

	return w.writeErrors(manager.Errors())
}

func (w Writer) writeSegment(seg *segment.Segment) error {
	end := "-"
	if seg.MaxSize() > 0 {
		end = address(seg.StartAddress() + uint32(seg.MaxSize()) - 1)
	}

	var marker string
	if seg.HasOverflowed() {
		marker = "  OVERFLOW"
	}

	_, err := fmt.Fprintf(w.writer, rowLine, seg.Name(), seg.Bank(), address(seg.StartAddress()), end,
		size(seg.CurrentOffset()), size(seg.MaxSize()), seg.Type(), marker)
	if err != nil {
		return fmt.Errorf("writing segment line: %w", err)
	}
	return nil
}

func (w Writer) writeErrors(errs []segment.Error) error {
	if len(errs) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "\n%d error(s):\n", len(errs)); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	for _, e := range errs {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", e.Error()); err != nil {
			return fmt.Errorf("writing error line: %w", err)
		}
	}
	return nil
}

func address(addr uint32) string {
	if addr > 0xFFFF {
		return fmt.Sprintf("$%06X", addr)
	}
	return fmt.Sprintf("$%04X", addr)
}

func size(n int) string {
	return fmt.Sprintf("$%04X", n)
}
