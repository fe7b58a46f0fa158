package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Print(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := &Terminal{Output: out}

	assert.NoError(tc.Print(22))
	assert.NoError(tc.Print(0))
	assert.NoError(tc.Print(255))

	assert.Equal("22\n0\n255\n", out.String())
	assert.Equal(3, tc.Printed)
}

func TestTerminal_Discard(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{}
	assert.NoError(tc.Print(7))
	assert.Equal(1, tc.Printed)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestTerminal_WriteError(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{Output: failWriter{}}
	err := tc.Print(1)
	assert.ErrorIs(err, ErrConsoleWrite)
}

func TestTerminal_Console(t *testing.T) {
	var console Console = &Terminal{}
	assert.NoError(t, console.Print(1))
}
