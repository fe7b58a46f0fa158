package cpu

// Alu performs the requested ALU action on registers dst and src, storing
// the result in dst. Results wrap modulo 256.
func (cpu *Cpu) Alu(op Opcode, dst, src byte) (err error) {
	input, err := cpu.Register.Get(dst)
	if err != nil {
		return
	}
	value, err := cpu.Register.Get(src)
	if err != nil {
		return
	}

	output, err := doAlu(op, input, value)
	if err != nil {
		return
	}

	cpu.Register[dst] = output
	return
}

// doAlu returns the output value of an ALU operation.
func doAlu(op Opcode, input byte, value byte) (output byte, err error) {
	switch op {
	case OP_ADD: // add
		output = input + value
	case OP_SUB: // sub
		output = input - value
	case OP_MUL: // mul
		output = input * value
	default:
		err = ErrUnsupportedOperation
	}

	return
}
