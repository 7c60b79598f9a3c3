// Package layout defines segments from Starlark layout scripts and renders
// segment layouts as ca65 linker configs.
package layout

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/program"
	"github.com/retroenv/retroasm/internal/segment"
	"github.com/retroenv/retroasm/internal/translate"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var errInvalidArgument = errors.New("invalid argument")

// addressSpaceEnd is the first address past the addressable range of a segment.
const addressSpaceEnd = math.MaxUint32 + 1

// Load executes a layout script. The script can call the predeclared functions
// segment(name, start, size, type="code") and bank(n), the name of the target is
// available as TARGET. Problems of segment definitions are recorded on the manager.
func Load(manager *segment.Manager, filename string, src []byte, target arch.Target) error {
	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	predeclared := starlark.StringDict{
		"segment": starlark.NewBuiltin("segment", segmentBuiltin(manager)),
		"bank":    starlark.NewBuiltin("bank", bankBuiltin(manager)),
		"TARGET":  starlark.String(target.String()),
	}

	if _, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared); err != nil {
		return fmt.Errorf("executing layout script '%s': %w", filename, err)
	}
	return nil
}

// LoadFile reads and executes the layout script at the given path.
func LoadFile(manager *segment.Manager, path string, target arch.Target) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading layout script: %w", err)
	}
	return Load(manager, path, src, target)
}

type builtinFunc func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple,
	kwargs []starlark.Tuple) (starlark.Value, error)

func segmentBuiltin(manager *segment.Manager) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple,
		kwargs []starlark.Tuple) (starlark.Value, error) {

		var name, typeName string
		var start, size int
		typeName = segment.Code.String()
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"name", &name, "start", &start, "size", &size, "type?", &typeName); err != nil {
			return nil, err
		}

		if name == "" {
			return nil, fmt.Errorf("%w: %s", errInvalidArgument, translate.From("segment name must not be empty"))
		}
		if start < 0 || size < 0 {
			return nil, fmt.Errorf("%w: %s", errInvalidArgument,
				translate.From("segment '%s' has a negative start or size", name))
		}
		if uint64(start)+uint64(size) > addressSpaceEnd {
			return nil, fmt.Errorf("%w: %s", errInvalidArgument,
				translate.From("segment '%s' exceeds the 32 bit address space", name))
		}
		typ, err := segment.TypeFromString(typeName)
		if err != nil {
			return nil, err
		}

		manager.Define(name, uint32(start), size, typ, callerLocation(thread))
		return starlark.None, nil
	}
}

func bankBuiltin(manager *segment.Manager) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple,
		kwargs []starlark.Tuple) (starlark.Value, error) {

		var bank int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &bank); err != nil {
			return nil, err
		}

		manager.SwitchBank(bank, callerLocation(thread))
		return starlark.None, nil
	}
}

// callerLocation returns the script position of the call to the running builtin.
func callerLocation(thread *starlark.Thread) program.Location {
	pos := thread.CallFrame(1).Pos
	return program.Location{
		File:   pos.Filename(),
		Line:   int(pos.Line),
		Column: int(pos.Col),
	}
}
