package cpu

import (
	"fmt"
	"io"
	"strings"
)

// Trace writes a single diagnostic line with the PC, the three bytes at
// PC, PC+1 and PC+2, and every register. Bytes past the end of memory
// are shown as "--". Machine state is not modified.
func (cpu *Cpu) Trace(w io.Writer) (err error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		value, err := cpu.Memory.Read(cpu.Pc + uint16(n))
		if err != nil {
			sb.WriteString(" --")
			continue
		}
		fmt.Fprintf(&sb, " %02X", value)
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}
	sb.WriteString("\n")

	_, err = io.WriteString(w, sb.String())
	return
}

// Disassemble renders the instruction at addr, returning the text and the
// instruction size in bytes. Unnamed opcodes render as a .db directive.
func (cpu *Cpu) Disassemble(addr uint16) (text string, size int) {
	value, err := cpu.Memory.Read(addr)
	if err != nil {
		return
	}

	op := Opcode(value)
	if !op.Named() {
		return fmt.Sprintf(".db 0x%02x", value), 1
	}

	words := []string{op.String()}
	size = 1
	for n := range op.Operands() {
		arg, err := cpu.Memory.Read(addr + 1 + uint16(n))
		if err != nil {
			words = append(words, "--")
			continue
		}
		size++
		if op == OP_LDI && n == 1 {
			words = append(words, fmt.Sprintf("0x%02x", arg))
		} else {
			words = append(words, fmt.Sprintf("r%d", arg))
		}
	}

	text = words[0]
	if len(words) > 1 {
		text += " " + strings.Join(words[1:], ", ")
	}

	return
}
