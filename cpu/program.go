package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line represents a line of source with the bytes it generated.
type Line struct {
	LineNo int
	Addr   int
	Words  []string
	Bytes  []byte
}

// Program is an ordered memory image with its source locations.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the source line that produced the byte at addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the memory image, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, value := range prog.Bytes() {
		bins = append(bins, value)
	}

	return
}

// Bytes iterates over each address and byte of the image.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, value byte) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(uint16(line.Addr+n), value) {
					return
				}
			}
		}
	}
}

// Size returns the image length in bytes.
func (prog *Program) Size() (size int) {
	if len(prog.Lines) == 0 {
		return
	}

	last := prog.Lines[len(prog.Lines)-1]
	return last.Addr + len(last.Bytes)
}

// WriteImage writes the program in the binary literal format read by the
// Loader, one byte per line, with the source words as comments.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, value := range line.Bytes {
			text := fmt.Sprintf("%08b", value)
			if n == 0 && len(line.Words) > 0 {
				text += " # " + strings.Join(line.Words, " ")
			}
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
		}
	}

	return
}
