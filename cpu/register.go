package cpu

const (
	REGISTER_COUNT = 8

	REG_IM = 5 // Interrupt mask, reserved.
	REG_IS = 6 // Interrupt status, reserved.
	REG_SP = 7 // Stack pointer.
)

// Registers is the general-purpose register file. The reserved roles are
// only index conventions over the same array.
type Registers [REGISTER_COUNT]byte

// Get returns the value of register index.
func (reg *Registers) Get(index byte) (value byte, err error) {
	if int(index) >= len(reg) {
		err = ErrRegister(f("r%d", index))
		return
	}

	value = reg[index]
	return
}

// Set assigns value to register index.
func (reg *Registers) Set(index byte, value byte) (err error) {
	if int(index) >= len(reg) {
		err = ErrRegister(f("r%d", index))
		return
	}

	reg[index] = value
	return
}

// StackPointer returns r7.
func (reg *Registers) StackPointer() byte {
	return reg[REG_SP]
}

// SetStackPointer assigns r7.
func (reg *Registers) SetStackPointer(value byte) {
	reg[REG_SP] = value
}

// Reset zeros the register file and points the stack at ADDR_STACK.
func (reg *Registers) Reset() {
	clear(reg[:])
	reg[REG_SP] = ADDR_STACK
}
