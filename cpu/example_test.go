package cpu_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

func ExampleCpu_Run() {
	ld := &cpu.Loader{}
	prog, err := ld.Parse(strings.NewReader(`
10000010 # LDI R0,10
00000000
00001010
10000010 # LDI R1,12
00000001
00001100
10100000 # ADD R0,R1
00000000
00000001
01000111 # PRN R0
00000000
00000001 # HLT
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	ls8 := cpu.NewCpu()
	ls8.Console = &io.Terminal{Output: os.Stdout}
	if err = ls8.Memory.Load(prog.Binary()); err != nil {
		fmt.Println(err)
		return
	}

	err = ls8.Run()
	fmt.Println(ls8.State, err)
	// Output:
	// 22
	// halted <nil>
}

func ExampleAssembler_Parse() {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(`
LDI R0, 8
PRN R0
HLT
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	prog.WriteImage(os.Stdout)
	// Output:
	// 10000010 # LDI R0 8
	// 00000000
	// 00001000
	// 01000111 # PRN R0
	// 00000000
	// 00000001 # HLT
}

func ExampleCpu_Disassemble() {
	ls8 := cpu.NewCpu()
	ls8.Memory.Load([]byte{0x82, 0x02, 0x1f, 0xa0, 0x00, 0x01, 0x11})

	for addr := uint16(0); ; {
		text, size := ls8.Disassemble(addr)
		if size == 0 || text == "NOP" {
			break
		}
		fmt.Printf("%02x: %v\n", addr, text)
		addr += uint16(size)
	}
	// Output:
	// 00: LDI r2, 0x1f
	// 03: ADD r0, r1
	// 06: RET
}
