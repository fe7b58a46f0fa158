package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.

	ADDR_VECTOR = 0xf8 // Interrupt vector table, I0 at 0xf8 up to I7 at 0xff.
	ADDR_KEY    = 0xf4 // Most recent key pressed.
	ADDR_STACK  = 0xf4 // Initial stack pointer; the first push lands at 0xf3.
)

// Memory is the byte addressable store shared by program, data and stack.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) (value byte, err error) {
	if int(addr) >= len(mem) {
		err = ErrOutOfBounds
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr. Writes outside of memory fail and leave
// memory unchanged.
func (mem *Memory) Write(addr uint16, value byte) (err error) {
	if int(addr) >= len(mem) {
		err = ErrOutOfBounds
		return
	}

	mem[addr] = value
	return
}

// Load copies an image into memory starting at address 0.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > len(mem) {
		err = ErrOutOfBounds
		return
	}

	copy(mem[:], image)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
