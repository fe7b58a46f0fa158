package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpu_Trace(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, b(OP_LDI), 0, 10)
	cpu.Register[3] = 0xab

	out := &bytes.Buffer{}
	assert.NoError(cpu.Trace(out))
	assert.Equal("TRACE: 00 | 82 00 0A | 00 00 00 AB 00 00 00 F4\n", out.String())

	// Tracing has no effect on the machine.
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(0, cpu.Ticks)
}

func TestCpu_TraceEndOfMemory(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t)
	cpu.Pc = 0xfe
	cpu.Memory[0xfe] = 0x12
	cpu.Memory[0xff] = 0x34

	out := &bytes.Buffer{}
	assert.NoError(cpu.Trace(out))
	assert.Equal("TRACE: FE | 12 34 -- | 00 00 00 00 00 00 00 F4\n", out.String())
}

func TestCpu_Disassemble(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t,
		b(OP_LDI), 2, 0x1f,
		b(OP_ADD), 0, 1,
		b(OP_PRN), 7,
		b(OP_RET),
		0x02,
	)

	table := [](struct {
		addr uint16
		text string
		size int
	}){
		{0, "LDI r2, 0x1f", 3},
		{3, "ADD r0, r1", 3},
		{6, "PRN r7", 2},
		{8, "RET", 1},
		{9, ".db 0x02", 1},
	}

	for _, entry := range table {
		text, size := cpu.Disassemble(entry.addr)
		assert.Equal(entry.text, text)
		assert.Equal(entry.size, size)
	}

	text, size := cpu.Disassemble(MEMORY_SIZE)
	assert.Equal("", text)
	assert.Equal(0, size)
}
