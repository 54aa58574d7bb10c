package main

import (
	"fmt"
	"os"
	"strings"

	"seed8/common"
	"seed8/s8"
)

// Debug monitor: a line-oriented prompt for poking at the machine.

// DebugCommand captures a self-describing debug command.
type DebugCommand interface {
	Describe() string
	Run(m *Monitor, args []string)
}

type debugBlob struct {
	desc string
	f    func(*Monitor, []string)
}

func newCommand(desc string, f func(*Monitor, []string)) DebugCommand {
	return &debugBlob{desc: desc, f: f}
}

func (dbg *debugBlob) Describe() string {
	return dbg.desc
}

func (dbg *debugBlob) Run(m *Monitor, args []string) {
	dbg.f(m, args)
}

// Monitor wraps a Computer with breakpoints and a paused/running state.
type Monitor struct {
	c           *s8.Computer
	breakpoints []uint16
	paused      bool
}

var debugCommands = map[string]DebugCommand{
	"r": newCommand("Dump the (r)egisters", func(m *Monitor, args []string) {
		dumpRegs(m.c)
	}),
	"q": newCommand("(Q)uit the emulator", func(*Monitor, []string) { os.Exit(0) }),

	"c": newCommand("(C)ontinue execution", func(m *Monitor, args []string) {
		m.paused = false
	}),

	"s": newCommand("(S)tep forward, run next instruction", func(m *Monitor, args []string) {
		m.c.Step()
		fmt.Println(s8.DisasmOp(m.c.Bus(), m.c.CPU().PC()))
	}),

	"b": newCommand("Set a new (b)reakpoint at the given (hex) location",
		singleHexArg("No breakpoint location specified (needs hex number)",
			"Error parsing the location", func(m *Monitor, loc uint16) {
				m.breakpoints = append(m.breakpoints, loc)
				fmt.Printf("Breakpoint set at PC = %04x\n", loc)
			})),
	"m": newCommand("Print a value from (m)emory",
		singleHexArg("No memory location specified", "Error parsing location",
			func(m *Monitor, loc uint16) {
				x := m.c.Bus().ReadByte(loc)
				fmt.Printf("[%04x] = %02x (%d, '%c')\n", loc, x, x, rune(x))
			})),

	"i": newCommand("Disassemble the (i)nstructions at the given location, or at PC",
		func(m *Monitor, args []string) {
			loc := m.c.CPU().PC()
			if len(args) > 1 {
				var x uint16
				if _, err := fmt.Sscanf(args[1], "%x", &x); err != nil {
					fmt.Printf("Error parsing location: %v\n", err)
					return
				}
				loc = x
			}
			s8.DisasmRange(m.c.Bus(), loc, 8)
		}),
}

func singleHexArg(notSpecifiedMsg, parseErrorMsg string,
	cmd func(m *Monitor, arg uint16)) func(*Monitor, []string) {
	return func(m *Monitor, args []string) {
		if len(args) <= 1 {
			fmt.Println(notSpecifiedMsg)
			return
		}

		var x uint16
		_, err := fmt.Sscanf(args[1], "%x", &x)
		if err != nil {
			fmt.Printf(parseErrorMsg+": %v\n", err)
			return
		}

		cmd(m, x)
	}
}

func (m *Monitor) prompt() {
	fmt.Printf("%04x debug> ", m.c.CPU().PC())
	in, err := common.InputReader.ReadString('\n')
	if err != nil {
		fmt.Printf("error while reading input: %v\n", err)
		os.Exit(1)
	}

	args := strings.Split(strings.TrimSpace(in), " ")
	if cmd, ok := debugCommands[args[0]]; ok {
		cmd.Run(m, args)
	} else {
		fmt.Printf("Unknown command '%s'\n", args[0])
		fmt.Printf("Commands:\n")
		for key, dbg := range debugCommands {
			fmt.Printf("%s\t%s\n", key, dbg.Describe())
		}
	}
}

func (m *Monitor) atBreakpoint() bool {
	pc := m.c.CPU().PC()
	for _, bp := range m.breakpoints {
		if bp == pc {
			return true
		}
	}
	return false
}

// RunMonitor runs the machine under the debug monitor, starting paused.
func RunMonitor(c *s8.Computer) {
	m := &Monitor{c: c, paused: true}
	for {
		for !m.paused {
			m.c.Step()
			if m.c.CPU().Halted() {
				fmt.Println("CPU halted")
				m.paused = true
			} else if m.atBreakpoint() {
				fmt.Printf("Breakpoint hit at %04x\n", m.c.CPU().PC())
				m.paused = true
			}
		}
		m.prompt()
	}
}
