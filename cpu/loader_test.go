package cpu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printImage = `# print8.ls8: print the number 8
10000010 # LDI R0,8
00000000
00001000
01000111 # PRN R0
00000000

00000001 # HLT
`

func TestLoader_Parse(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(printImage))
	require.NoError(t, err)

	assert.Equal([]byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())
	assert.Equal(6, prog.Size())

	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal([]string{"LDI", "R0,8"}, prog.Lines[0].Words)
	assert.Equal(8, prog.Lines[5].LineNo)
	assert.Equal(5, prog.Lines[5].Addr)
}

func TestLoader_Whitespace(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader("  1   \n\t\n#\n  00000010#x\n\r\n"))
	assert.NoError(err)
	assert.Equal([]byte{1, 2}, prog.Binary())
}

func TestLoader_Empty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader("# nothing\n\n"))
	assert.NoError(err)
	assert.Equal(0, prog.Size())
	assert.Nil(prog.Binary())
}

func TestLoader_Malformed(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"00000001\n2\n",
		"00000001\nLDI\n",
		"00000001\n100000000\n", // 256
		"00000001\n-1\n",
		"00000001\n0b1\n",
		"00000001\n0 1\n",
	} {
		ld := &Loader{}
		_, err := ld.Parse(strings.NewReader(text))
		assert.ErrorIs(err, ErrMalformedLiteral, text)

		var syn ErrSyntax
		if assert.True(errors.As(err, &syn), text) {
			assert.Equal(2, syn.LineNo, text)
		}
	}
}

func TestLoader_TooLarge(t *testing.T) {
	assert := assert.New(t)

	image := strings.Repeat("00000001\n", MEMORY_SIZE)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(image))
	assert.NoError(err)
	assert.Equal(MEMORY_SIZE, prog.Size())

	_, err = ld.Parse(strings.NewReader(image + "00000001\n"))
	assert.ErrorIs(err, ErrProgramTooLarge)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestLoader_LoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "print8.ls8")
	require.NoError(t, os.WriteFile(path, []byte(printImage), 0o644))

	ld := &Loader{}
	prog, err := ld.LoadFile(path)
	assert.NoError(err)
	assert.Equal(6, prog.Size())
}

func TestLoader_NotFound(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	_, err := ld.LoadFile(filepath.Join(t.TempDir(), "missing.ls8"))
	assert.ErrorIs(err, ErrProgramNotFound)
	assert.ErrorIs(err, fs.ErrNotExist)
}
