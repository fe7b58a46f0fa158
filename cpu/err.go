package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrOutOfBounds          = errors.New(f("address out of bounds"))
	ErrInvalidRegister      = errors.New(f("register invalid"))
	ErrUnsupportedOperation = errors.New(f("unsupported alu operation"))
	ErrIllegalInstruction   = errors.New(f("illegal instruction"))
	ErrHalted               = errors.New(f("cpu halted"))

	// Loader errors
	ErrProgramNotFound  = errors.New(f("program not found"))
	ErrMalformedLiteral = errors.New(f("malformed binary literal"))
	ErrProgramTooLarge  = errors.New(f("program too large"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrDataSyntax      = errors.New(f(".db syntax"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrValueRange      = errors.New(f("value out of range"))
)

// ErrOpcode reports the opcode and address of a faulting instruction.
type ErrOpcode struct {
	Pc     uint16
	Opcode Opcode
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v at 0x%02x", byte(eo.Opcode), eo.Opcode.String(), eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrRegister string

func (er ErrRegister) Error() string {
	return f("'%v' is not a register", string(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrInvalidRegister
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
