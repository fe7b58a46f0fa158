package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_GetSet(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}
	for index := range byte(REGISTER_COUNT) {
		assert.NoError(reg.Set(index, index+0x10))
	}
	for index := range byte(REGISTER_COUNT) {
		value, err := reg.Get(index)
		assert.NoError(err)
		assert.Equal(index+0x10, value)
	}
}

func TestRegisters_Invalid(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}
	snapshot := *reg

	_, err := reg.Get(REGISTER_COUNT)
	assert.ErrorIs(err, ErrInvalidRegister)

	err = reg.Set(0xff, 1)
	assert.ErrorIs(err, ErrInvalidRegister)
	assert.Equal(snapshot, *reg)
}

func TestRegisters_StackPointer(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}
	reg.Reset()
	assert.Equal(byte(ADDR_STACK), reg.StackPointer())
	assert.Equal(byte(ADDR_STACK), reg[REG_SP])

	reg.SetStackPointer(0x80)
	assert.Equal(byte(0x80), reg[REG_SP])

	assert.NoError(reg.Set(REG_SP, 0x40))
	assert.Equal(byte(0x40), reg.StackPointer())
}

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{1, 2, 3, 4, 5, 6, 7, 8}
	reg.Reset()
	assert.Equal(Registers{0, 0, 0, 0, 0, 0, 0, ADDR_STACK}, *reg)
}
