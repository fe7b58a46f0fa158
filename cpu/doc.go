// Package cpu implements the processor, loader, and assembler for the LS-8
// teaching machine.
//
// The LS-8 is an 8-bit von Neumann machine with 256 bytes of memory, eight
// general-purpose byte registers (r0-r7, with r7 doubling as the stack
// pointer), a program counter, and a single Equal flag set by CMP.
// Instructions are one opcode byte followed by zero, one, or two operand
// bytes.
//
// Programs are supplied either as a binary image (one base-2 literal per
// line, see Loader) or as mnemonic assembly (see Assembler).
//
// A Cpu is not safe for concurrent use; callers embedding one in a larger
// host must serialize access.
package cpu
