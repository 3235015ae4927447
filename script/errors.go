package script

import (
	"fmt"

	"github.com/gogpu/fbdraw"
)

// ArgumentError reports a step whose operation or arguments are unusable.
// It matches fbdraw.ErrInvalidArgument.
type ArgumentError struct {
	Line int
	Op   string
	Msg  string
}

func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("script: line %d: %s: %s", e.Line, e.Op, e.Msg)
}

// Is reports whether target is fbdraw.ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == fbdraw.ErrInvalidArgument
}

func argErrorf(line int, op, format string, args ...any) *ArgumentError {
	return &ArgumentError{Line: line, Op: op, Msg: fmt.Sprintf(format, args...)}
}
