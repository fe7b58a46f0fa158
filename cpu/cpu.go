package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	lsio "github.com/ezrec/ls8/io"
)

// Console is the device PRN prints to.
type Console lsio.Console

// State is the execution state of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Program, data and stack.
	Register Registers // Register bank.
	Pc       uint16    // Address of the next opcode to fetch.
	Equal    bool      // Equal flag, set by CMP.
	State    State     // Running or halted.

	Console Console   // Destination of PRN.
	Tracer  io.Writer // If set, receives a trace line when the cpu faults.

	Ticks int // Instructions retired.
}

// NewCpu creates a reset CPU printing to stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Console: &lsio.Terminal{Output: os.Stdout},
	}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears memory and the registers.
// - Points the stack pointer at ADDR_STACK.
// - Sets PC to 0 and clears the flags.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Equal = false
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "equal", cpu.Equal)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", name, val)
	}

	return
}

// Fetch reads the opcode at PC and the operand bytes it needs.
// Operands of illegal opcodes are not read.
func (cpu *Cpu) Fetch() (op Opcode, a, b byte, err error) {
	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	op = Opcode(value)

	inst, ok := instructionSet[op]
	if !ok {
		return
	}

	var args [2]byte
	for n := range inst.Operands {
		args[n], err = cpu.Memory.Read(cpu.Pc + 1 + uint16(n))
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Opcode: op}, err)
			return
		}
	}

	a, b = args[0], args[1]
	return
}

// Tick executes a single CPU instruction cycle. Any error halts the CPU.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			if cpu.Tracer != nil {
				cpu.Trace(cpu.Tracer)
			}
			cpu.State = STATE_HALTED
		}
	}()

	op, a, b, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(op, a, b)
	return
}

// Run ticks the CPU until it halts. A program that never halts runs forever.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction located at PC.
func (cpu *Cpu) Execute(op Opcode, a, b byte) (err error) {
	pc := cpu.Pc
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: pc, Opcode: op}, err)
		}
	}()

	if cpu.Verbose {
		text, _ := cpu.Disassemble(pc)
		log.Printf("%02x: %v", pc, text)
	}

	inst, ok := instructionSet[op]
	if !ok {
		if op.Alu() && op.Named() {
			return errors.Join(ErrIllegalInstruction, ErrUnsupportedOperation)
		}
		return ErrIllegalInstruction
	}

	err = inst.Exec(cpu, a, b)
	if err != nil {
		return
	}

	if !inst.SetsPc {
		cpu.Pc = pc + 1 + uint16(inst.Operands)
	}

	cpu.Ticks++

	return
}

// push decrements SP and stores value at the new top of stack.
func (cpu *Cpu) push(value byte) (err error) {
	sp := cpu.Register.StackPointer() - 1
	err = cpu.Memory.Write(uint16(sp), value)
	if err != nil {
		return
	}
	cpu.Register.SetStackPointer(sp)
	return
}

// pop returns the top of stack and increments SP.
func (cpu *Cpu) pop() (value byte, err error) {
	value, err = cpu.Memory.Read(uint16(cpu.Register.StackPointer()))
	if err != nil {
		return
	}
	cpu.Register.SetStackPointer(cpu.Register.StackPointer() + 1)
	return
}

func (cpu *Cpu) opAdd(a, b byte) error {
	return cpu.Alu(OP_ADD, a, b)
}

func (cpu *Cpu) opSub(a, b byte) error {
	return cpu.Alu(OP_SUB, a, b)
}

func (cpu *Cpu) opMul(a, b byte) error {
	return cpu.Alu(OP_MUL, a, b)
}

func (cpu *Cpu) opLdi(a, b byte) error {
	return cpu.Register.Set(a, b)
}

func (cpu *Cpu) opPrn(a, _ byte) (err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	if cpu.Console != nil {
		err = cpu.Console.Print(value)
	}
	return
}

func (cpu *Cpu) opPush(a, _ byte) (err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	return cpu.push(value)
}

func (cpu *Cpu) opPop(a, _ byte) (err error) {
	value, err := cpu.Memory.Read(uint16(cpu.Register.StackPointer()))
	if err != nil {
		return
	}

	err = cpu.Register.Set(a, value)
	if err != nil {
		return
	}

	// Popping into SP overwrites it before the increment.
	cpu.Register.SetStackPointer(cpu.Register.StackPointer() + 1)
	return
}

func (cpu *Cpu) opCall(a, _ byte) (err error) {
	_, err = cpu.Register.Get(a)
	if err != nil {
		return
	}

	ret := cpu.Pc + 2
	if ret >= MEMORY_SIZE {
		err = ErrOutOfBounds
		return
	}

	err = cpu.push(byte(ret))
	if err != nil {
		return
	}

	// Read after the push, so CALL r7 lands on the new stack top.
	cpu.Pc = uint16(cpu.Register[a])
	return
}

func (cpu *Cpu) opRet(_, _ byte) (err error) {
	ret, err := cpu.pop()
	if err != nil {
		return
	}

	cpu.Pc = uint16(ret)
	return
}

func (cpu *Cpu) opCmp(a, b byte) (err error) {
	va, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	vb, err := cpu.Register.Get(b)
	if err != nil {
		return
	}

	cpu.Equal = va == vb
	return
}

func (cpu *Cpu) opJmp(a, _ byte) (err error) {
	return cpu.jump(a, true)
}

func (cpu *Cpu) opJeq(a, _ byte) (err error) {
	return cpu.jump(a, cpu.Equal)
}

func (cpu *Cpu) opJne(a, _ byte) (err error) {
	return cpu.jump(a, !cpu.Equal)
}

// jump sets PC to register a when taken, otherwise skips the two byte
// jump instruction. The register is validated either way.
func (cpu *Cpu) jump(a byte, taken bool) (err error) {
	target, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	if taken {
		cpu.Pc = uint16(target)
	} else {
		cpu.Pc += 2
	}
	return
}

func (cpu *Cpu) opHlt(_, _ byte) error {
	if cpu.Verbose {
		log.Printf("cpu: halt at %02x", cpu.Pc)
	}
	cpu.State = STATE_HALTED
	return nil
}
