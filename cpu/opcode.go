package cpu

import (
	"maps"
)

// Opcode is the first byte of every instruction.
//
// The reference encoding is AABCDDDD, where AA is the number of operand
// bytes, B marks an ALU operation, C marks an instruction that sets the PC,
// and DDDD identifies the instruction.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0b00000000) // NOP
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_IRET = Opcode(0b00010011) // IRET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_PRA  = Opcode(0b01001000) // PRA
	OP_CALL = Opcode(0b01010000) // CALL
	OP_INT  = Opcode(0b01010010) // INT
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_JGT  = Opcode(0b01010111) // JGT
	OP_JLT  = Opcode(0b01011000) // JLT
	OP_JLE  = Opcode(0b01011001) // JLE
	OP_JGE  = Opcode(0b01011010) // JGE
	OP_INC  = Opcode(0b01100101) // INC
	OP_DEC  = Opcode(0b01100110) // DEC
	OP_NOT  = Opcode(0b01101001) // NOT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_LD   = Opcode(0b10000011) // LD
	OP_ST   = Opcode(0b10000100) // ST
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_SUB  = Opcode(0b10100001) // SUB
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_DIV  = Opcode(0b10100011) // DIV
	OP_MOD  = Opcode(0b10100100) // MOD
	OP_CMP  = Opcode(0b10100111) // CMP
	OP_AND  = Opcode(0b10101000) // AND
	OP_OR   = Opcode(0b10101010) // OR
	OP_XOR  = Opcode(0b10101011) // XOR
	OP_SHL  = Opcode(0b10101100) // SHL
	OP_SHR  = Opcode(0b10101101) // SHR
)

// opcodeMap maps mnemonics to every named opcode, executable or reserved.
var opcodeMap = map[string]Opcode{}

func init() {
	for _, op := range []Opcode{
		OP_NOP, OP_HLT, OP_RET, OP_IRET, OP_PUSH, OP_POP, OP_PRN, OP_PRA,
		OP_CALL, OP_INT, OP_JMP, OP_JEQ, OP_JNE, OP_JGT, OP_JLT, OP_JLE,
		OP_JGE, OP_INC, OP_DEC, OP_NOT, OP_LDI, OP_LD, OP_ST, OP_ADD,
		OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_CMP, OP_AND, OP_OR, OP_XOR,
		OP_SHL, OP_SHR,
	} {
		opcodeMap[op.String()] = op
	}
}

// Opcodes returns all named opcodes, keyed by mnemonic.
func Opcodes() map[string]Opcode {
	return maps.Clone(opcodeMap)
}

// Named returns true if the opcode has a mnemonic.
func (op Opcode) Named() bool {
	_, ok := opcodeMap[op.String()]
	return ok
}

// Operands returns the operand count from the opcode encoding.
func (op Opcode) Operands() int {
	return int(op>>6) & 0x3
}

// Alu returns true if the encoding marks an ALU operation.
func (op Opcode) Alu() bool {
	return (op>>5)&1 == 1
}

// SetsPc returns true if the encoding marks an instruction that sets the PC.
func (op Opcode) SetsPc() bool {
	return (op>>4)&1 == 1
}

// Instruction describes how the dispatcher executes an opcode.
type Instruction struct {
	Operands int  // Operand bytes following the opcode.
	SetsPc   bool // Handler moves the PC itself; the loop must not advance it.
	Exec     func(cpu *Cpu, a, b byte) error
}

// instructionSet is the dispatch table. Opcodes missing from it are
// illegal instructions.
var instructionSet = map[Opcode]Instruction{
	OP_ADD:  {2, false, (*Cpu).opAdd},
	OP_SUB:  {2, false, (*Cpu).opSub},
	OP_MUL:  {2, false, (*Cpu).opMul},
	OP_LDI:  {2, false, (*Cpu).opLdi},
	OP_PRN:  {1, false, (*Cpu).opPrn},
	OP_PUSH: {1, false, (*Cpu).opPush},
	OP_POP:  {1, false, (*Cpu).opPop},
	OP_CALL: {1, true, (*Cpu).opCall},
	OP_RET:  {0, true, (*Cpu).opRet},
	OP_CMP:  {2, false, (*Cpu).opCmp},
	OP_JMP:  {1, true, (*Cpu).opJmp},
	OP_JEQ:  {1, true, (*Cpu).opJeq},
	OP_JNE:  {1, true, (*Cpu).opJne},
	OP_HLT:  {0, false, (*Cpu).opHlt},
}

// Lookup returns the dispatch entry for an opcode.
func Lookup(op Opcode) (inst Instruction, ok bool) {
	inst, ok = instructionSet[op]
	return
}
