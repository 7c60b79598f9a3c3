package segment

import (
	"errors"

	"github.com/retroenv/retroasm/internal/program"
)

// Error is a diagnostic that the manager recorded while processing segment directives.
type Error struct {
	Message  string
	Location program.Location
}

func (e Error) Error() string {
	if e.Location.IsZero() {
		return e.Message
	}
	return e.Location.String() + ": " + e.Message
}

// joinErrors returns all errors joined into a single error, nil if there are none.
func joinErrors(list []Error) error {
	if len(list) == 0 {
		return nil
	}
	errs := make([]error, len(list))
	for i, err := range list {
		errs[i] = err
	}
	return errors.Join(errs...)
}
