package imui

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaExhausted is returned when the widget arena reached its configured
	// chunk limit. Widgets begun after the failure are nil and dropped.
	ErrArenaExhausted = errors.New("imui: widget arena exhausted")

	// ErrDuplicateName reports a surface or window name begun twice in one frame.
	ErrDuplicateName = errors.New("imui: duplicate name")

	// ErrStackDiscipline reports a begin/end pair that is not strictly nested.
	ErrStackDiscipline = errors.New("imui: begin/end out of order")

	// ErrFrameState reports a call made outside the phase it belongs to,
	// e.g. beginning a surface while no frame is open.
	ErrFrameState = errors.New("imui: invalid frame state")

	// ErrInvalidVertexFormat is returned by New when the vertex format cannot be encoded.
	ErrInvalidVertexFormat = errors.New("imui: invalid vertex format")

	// ErrFontParse is returned when a font file cannot be turned into a codepoint table.
	ErrFontParse = errors.New("imui: font parse failed")
)

// UsageError is the panic value for programmer errors in the calling
// application: duplicate names, unbalanced begin/end calls, calls outside a frame.
type UsageError struct {
	Op  string
	Err error
	Msg string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Msg)
}

func (e *UsageError) Unwrap() error { return e.Err }

// usagePanic panics with a *UsageError. These checks are always on.
func usagePanic(op string, err error, format string, args ...any) {
	panic(&UsageError{Op: op, Err: err, Msg: fmt.Sprintf(format, args...)})
}
