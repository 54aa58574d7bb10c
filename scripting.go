package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"seed8/s8"
)

// Script harness: a line-oriented command file for driving the machine
// without a terminal, handy for automated testing.

type command func(c *s8.Computer, args []string) error

var cmds = map[string]command{
	"send": cmdSendString,
	"type": cmdTypeChar,
	"recv": cmdRecv,
	"run":  cmdRun,
	"step": cmdStep,
	"regs": cmdRegs,
	"quit": cmdQuit,
}

// cmdSendString feeds each argument into the UART RX queue, with a
// space between arguments and a newline at the end.
func cmdSendString(c *s8.Computer, args []string) error {
	if len(args) < 1 {
		return errors.New("'send' requires 1 or more arguments to type")
	}
	for i, s := range args {
		if i > 0 {
			c.UART().SendChar(' ')
		}
		for _, ch := range s {
			c.UART().SendChar(uint8(ch))
		}
	}
	c.UART().SendChar('\n')
	return nil
}

func cmdTypeChar(c *s8.Computer, args []string) error {
	if len(args) < 1 {
		return errors.New("'type' requires a single character as an argument")
	}
	c.UART().SendChar(args[0][0])
	return nil
}

// cmdRecv drains the UART TX queue to stdout.
func cmdRecv(c *s8.Computer, args []string) error {
	for c.UART().HasOutput() {
		fmt.Printf("%c", c.UART().RecvChar())
	}
	return nil
}

func cmdRun(c *s8.Computer, args []string) error {
	if len(args) < 1 {
		return errors.New("'run' requires an argument giving the cycle count")
	}
	cycles, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Wrap(err, "'run' requires a positive integer argument")
	}
	c.Run(int(cycles))
	return nil
}

func cmdStep(c *s8.Computer, args []string) error {
	c.Step()
	return nil
}

func cmdRegs(c *s8.Computer, args []string) error {
	dumpRegs(c)
	return nil
}

func cmdQuit(c *s8.Computer, args []string) error {
	os.Exit(0)
	return nil
}

// RunScript executes each line of the file as a command.
func RunScript(c *s8.Computer, file string) error {
	contents, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "failed to read script file")
	}

	for _, line := range strings.Split(string(contents), "\n") {
		if len(line) == 0 {
			continue
		}

		args := strings.Split(line, " ")
		cmd, ok := cmds[args[0]]
		if !ok {
			return errors.Errorf("unknown command '%s'", args[0])
		}
		if err := cmd(c, args[1:]); err != nil {
			return err
		}
	}
	return nil
}
