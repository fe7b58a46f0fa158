package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     Opcode
		a, b   byte
		result byte
	}){
		{"add", OP_ADD, 10, 12, 22},
		{"add_wrap", OP_ADD, 200, 100, 44},
		{"add_max", OP_ADD, 0xff, 0xff, 0xfe},
		{"sub", OP_SUB, 12, 10, 2},
		{"sub_wrap", OP_SUB, 10, 12, 254},
		{"mul", OP_MUL, 8, 9, 72},
		{"mul_wrap", OP_MUL, 16, 16, 0},
		{"mul_wrap_odd", OP_MUL, 100, 3, 44},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register[0] = entry.a
		cpu.Register[1] = entry.b

		err := cpu.Alu(entry.op, 0, 1)
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, cpu.Register[0], entry.name)
		assert.Equal(entry.b, cpu.Register[1], entry.name)
	}
}

func TestAlu_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for a := range 256 {
		for b := range 256 {
			for op, expected := range map[Opcode]int{
				OP_ADD: a + b,
				OP_SUB: a - b,
				OP_MUL: a * b,
			} {
				cpu.Register[2] = byte(a)
				cpu.Register[3] = byte(b)
				err := cpu.Alu(op, 2, 3)
				if !assert.NoError(err) {
					return
				}
				if !assert.Equal(byte(expected&0xff), cpu.Register[2], "%v %d %d", op, a, b) {
					return
				}
			}
		}
	}
}

func TestAlu_SameRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[4] = 7
	assert.NoError(cpu.Alu(OP_ADD, 4, 4))
	assert.Equal(byte(14), cpu.Register[4])
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{
		OP_DIV, OP_MOD, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR, OP_NOT, OP_INC, OP_DEC, OP_CMP,
	} {
		cpu := NewCpu()
		cpu.Register[0] = 9
		cpu.Register[1] = 3
		err := cpu.Alu(op, 0, 1)
		assert.ErrorIs(err, ErrUnsupportedOperation, op.String())
		assert.Equal(byte(9), cpu.Register[0], op.String())
	}
}

func TestAlu_InvalidRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.ErrorIs(cpu.Alu(OP_ADD, 8, 0), ErrInvalidRegister)
	assert.ErrorIs(cpu.Alu(OP_ADD, 0, 8), ErrInvalidRegister)
}
