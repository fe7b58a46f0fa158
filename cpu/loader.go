package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
)

// Loader reads binary images: one base-2 literal per line, '#' starting a
// comment, blank lines ignored.
type Loader struct {
	Verbose bool // If set, logs each loaded byte.
}

// LoadFile loads the image at path.
func (ld *Loader) LoadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%v: %w: %w", path, ErrProgramNotFound, err)
		}
		return
	}
	defer inf.Close()

	return ld.Parse(inf)
}

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	prog = &Program{}
	addr := 0

	for scanner.Scan() {
		text = scanner.Text()
		lineno++

		literal, comment, _ := strings.Cut(text, "#")
		literal = strings.TrimSpace(literal)
		if len(literal) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(literal, 2, 8)
		if err != nil {
			err = ErrMalformedLiteral
			return
		}

		if addr >= MEMORY_SIZE {
			err = errors.Join(ErrProgramTooLarge, ErrOutOfBounds)
			return
		}

		if ld.Verbose {
			log.Printf("loader: %02x: %08b", addr, value)
		}

		line := Line{
			LineNo: lineno,
			Addr:   addr,
			Bytes:  []byte{byte(value)},
		}
		if comment = strings.TrimSpace(comment); len(comment) > 0 {
			line.Words = strings.Fields(comment)
		}
		prog.Lines = append(prog.Lines, line)
		addr++
	}

	text = ""
	err = scanner.Err()
	return
}
