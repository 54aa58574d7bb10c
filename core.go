package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"seed8/common"
	"seed8/s8"
)

func usage() {
	fmt.Printf("Usage: %s [options] <ROM file>\n", os.Args[0])
	flag.PrintDefaults()
}

func loadROM(c *s8.Computer, file string, org uint16) error {
	rom, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "failed to read ROM file")
	}
	if len(rom) > s8.MemSize-int(org) {
		return errors.Errorf("ROM is %d bytes, does not fit at %04x", len(rom), org)
	}
	c.LoadProgram(rom, org)
	return nil
}

func main() {
	org := flag.Uint("org", 0, "Load address for the ROM.")
	cycles := flag.Int("cycles", 1000000, "Maximum number of cycles to run.")
	script := flag.String("script", "", "Script file to run.")
	console := flag.Bool("console", false, "Bridge the host terminal to the UART.")
	debug := flag.Bool("debug", false, "Start in the debug monitor.")
	disassemble := flag.Bool("disassemble", false, "Disassemble 32 instructions at the load address to stdout.")

	flag.Parse()

	romFile := flag.Arg(0)
	if romFile == "" {
		fmt.Printf("Missing required ROM file name!\n")
		usage()
		os.Exit(1)
	}

	c := s8.NewComputer()
	if err := loadROM(c, romFile, uint16(*org)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *disassemble {
		s8.DisasmRange(c.Bus(), uint16(*org), 32)
		return
	}

	common.InputReader = bufio.NewReader(os.Stdin)

	if *script != "" {
		if err := RunScript(c, *script); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if *debug {
		RunMonitor(c)
		return
	}

	if *console {
		if err := RunConsole(c, *cycles); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	ran := c.Run(*cycles)
	dumpState(c, ran)
}

func dumpState(c *s8.Computer, cycles int) {
	fmt.Printf("ran %d cycles, halted=%v\n", cycles, c.CPU().Halted())
	dumpRegs(c)
}

func dumpRegs(c *s8.Computer) {
	cpu := c.CPU()
	for i := 0; i < 4; i++ {
		fmt.Printf("R%d  %02x (%d)\n", i, cpu.Reg(i), cpu.Reg(i))
	}
	fmt.Printf("PC  %04x  SP  %04x  Z=%v C=%v IE=%v\n",
		cpu.PC(), cpu.SP(), cpu.Zero(), cpu.Carry(), cpu.InterruptsEnabled())
}
