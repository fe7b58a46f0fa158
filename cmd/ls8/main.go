// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var list []string
	for key, value := range d {
		list = append(list, key+"="+value)
	}
	return strings.Join(list, ",")
}

func (d defines) Set(text string) error {
	key, value, ok := strings.Cut(text, "=")
	if !ok || len(key) == 0 {
		return fmt.Errorf("%v: expected NAME=VALUE", text)
	}
	d[key] = value
	return nil
}

func main() {
	var assemble bool
	var output string
	var trace bool
	var verbose bool
	predefine := defines{}

	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")

	flag.BoolVar(&assemble, "a", false, "Program is LS-8 assembly, not a binary image")
	flag.StringVar(&output, "o", "", "Write the binary image to this file, do not execute")
	flag.BoolVar(&trace, "t", false, "Trace every instruction to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(predefine, "D", "Predefine an assembler equate as NAME=VALUE")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [-a] [-o image] [-t] [-v] [-D NAME=VALUE] program", os.Args[0])
	}
	path := flag.Arg(0)

	var prog *cpu.Program
	var err error
	if assemble {
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range predefine {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	} else {
		ld := &cpu.Loader{Verbose: verbose}
		prog, err = ld.LoadFile(path)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		err = prog.WriteImage(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	if !trace {
		// Faulting instruction is still traced.
		emu.Cpu.Tracer = os.Stderr
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	for done := false; !done; {
		if trace {
			emu.Cpu.Trace(os.Stderr)
		}
		done, err = emu.Tick()
		if err != nil {
			log.Fatal(err)
		}
	}
}
