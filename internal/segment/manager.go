package segment

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/retroenv/retroasm/internal/program"
	"github.com/retroenv/retroasm/internal/translate"
	"github.com/retroenv/retrogolib/log"
)

var f = translate.From

// Manager owns all segments of a compilation, the active segment and the current bank.
// Problems are recorded as errors and processing continues, a manager is not safe for
// concurrent use.
type Manager struct {
	logger *log.Logger

	segments map[string]*Segment // indexed by lower case name
	active   *Segment
	bank     int

	errors []Error
}

// New creates a new segment manager.
func New(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Manager{
		logger:   logger,
		segments: make(map[string]*Segment),
	}
}

// Define creates a new segment in the current bank. If a segment with the same
// case-insensitive name exists, an error referencing the original definition is
// recorded and the existing segment is returned unchanged.
func (m *Manager) Define(name string, start uint32, maxSize int, typ Type, location program.Location) *Segment {
	key := strings.ToLower(name)
	if existing, ok := m.segments[key]; ok {
		m.addError(location, f("segment '%s' is already defined at %s", name, existing.location.String()))
		return existing
	}

	seg := newSegment(name, start, maxSize, typ, m.bank, location)
	m.segments[key] = seg

	m.logger.Debug("Segment defined",
		log.String("name", name),
		log.String("start", hexAddress(start)),
		log.Int("size", maxSize),
		log.String("type", typ.String()),
		log.Int("bank", m.bank))
	return seg
}

// SwitchTo makes the named segment the target of following writes. If the segment
// does not exist, an error is recorded and the active segment is not changed.
func (m *Manager) SwitchTo(name string, location program.Location) bool {
	seg, ok := m.segments[strings.ToLower(name)]
	if !ok {
		m.addError(location, f("segment '%s' is not defined", name))
		return false
	}

	m.active = seg
	m.logger.Debug("Segment switched", log.String("name", seg.name))
	return true
}

// SwitchBank sets the bank that following segment definitions are placed in.
// Negative bank numbers are rejected.
func (m *Manager) SwitchBank(bank int, location program.Location) {
	if bank < 0 {
		m.addError(location, f("invalid bank number %s", strconv.Itoa(bank)))
		return
	}

	m.bank = bank
	m.logger.Debug("Bank switched", log.Int("bank", bank))
}

// CurrentBank returns the bank that new segments are defined in.
func (m *Manager) CurrentBank() int {
	return m.bank
}

// Active returns the active segment or nil if no segment is active.
func (m *Manager) Active() *Segment {
	return m.active
}

// Get returns the segment of the given case-insensitive name.
func (m *Manager) Get(name string) (*Segment, bool) {
	seg, ok := m.segments[strings.ToLower(name)]
	return seg, ok
}

// Len returns the number of defined segments.
func (m *Manager) Len() int {
	return len(m.segments)
}

// Emit writes a byte to the active segment. It returns false if no segment is active
// or the active segment overflowed.
func (m *Manager) Emit(value byte, location program.Location) bool {
	if m.active == nil {
		m.addError(location, f("no active segment to write to"))
		return false
	}
	return m.active.Emit(value)
}

// ValidateSegments records an error for every segment that overflowed. It is intended
// to be called once after code generation, the errors are recorded in address order.
func (m *Manager) ValidateSegments() {
	for _, seg := range m.OrderedSegments() {
		if !seg.HasOverflowed() {
			continue
		}
		m.addError(seg.location, f("segment '%s' overflow: offset %s exceeds maximum size %s",
			seg.name, hexSize(seg.offset), hexSize(seg.maxSize)))
	}
}

// OrderedSegments returns all segments sorted by start address. Segments with equal
// start addresses are sorted by bank and name.
func (m *Manager) OrderedSegments() []*Segment {
	segments := make([]*Segment, 0, len(m.segments))
	for _, seg := range m.segments {
		segments = append(segments, seg)
	}
	sort.Slice(segments, func(i, j int) bool {
		a, b := segments[i], segments[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.bank != b.bank {
			return a.bank < b.bank
		}
		return strings.ToLower(a.name) < strings.ToLower(b.name)
	})
	return segments
}

// OutputSegments returns the bytes of all materialized segments that contain data,
// in start address order.
func (m *Manager) OutputSegments() []program.OutputSegment {
	var output []program.OutputSegment
	for _, seg := range m.OrderedSegments() {
		if !seg.isMaterialized() || len(seg.data) == 0 {
			continue
		}
		output = append(output, program.OutputSegment{
			StartAddress: seg.start,
			Data:         seg.data,
		})
	}
	return output
}

// Errors returns a copy of all recorded errors in the order they were recorded.
func (m *Manager) Errors() []Error {
	return slices.Clone(m.errors)
}

// HasErrors returns whether any error was recorded.
func (m *Manager) HasErrors() bool {
	return len(m.errors) > 0
}

// Err returns all recorded errors joined as a single error, or nil.
func (m *Manager) Err() error {
	return joinErrors(m.errors)
}

func (m *Manager) addError(location program.Location, message string) {
	err := Error{
		Message:  message,
		Location: location,
	}
	m.errors = append(m.errors, err)
	m.logger.Debug("Segment error", log.String("error", err.Error()))
}
