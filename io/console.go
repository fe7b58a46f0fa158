// Package io provides the devices the LS-8 machine writes to.
package io

import (
	"fmt"
	"io"
)

// Console receives the values printed by the PRN instruction.
type Console interface {
	// Print emits a single register value.
	Print(value byte) error
}

// Terminal prints each value as a decimal line on Output.
// A nil Output discards everything.
type Terminal struct {
	Output io.Writer

	Printed int // Number of values printed.
}

// Print writes value followed by a newline.
func (tc *Terminal) Print(value byte) (err error) {
	tc.Printed++

	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConsoleWrite, err)
	}

	return
}
