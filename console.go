package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"seed8/s8"
)

// Interactive console: bridges the host terminal to the UART. Keys
// typed become RX bytes (each raising the UART interrupt); TX bytes are
// drained to stdout as the machine runs. Ctrl-C exits.

const ctrlC = 0x03

// RunConsole runs the machine with stdin in raw mode feeding the UART.
func RunConsole(c *s8.Computer, maxCycles int) error {
	fd := int(os.Stdin.Fd())

	// Raw mode: no OS echo or line buffering, the guest program decides
	// what to echo.
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "failed to set raw mode")
	}
	defer term.Restore(fd, oldState)

	if err := syscall.SetNonblock(fd, true); err != nil {
		return errors.Wrap(err, "failed to set nonblocking stdin")
	}
	defer syscall.SetNonblock(fd, false)

	buf := make([]byte, 1)
	cycles := 0
	for !c.CPU().Halted() && cycles < maxCycles {
		n, err := syscall.Read(fd, buf)
		if n > 0 {
			b := buf[0]
			if b == ctrlC {
				break
			}
			// Raw mode sends CR for Enter; the guest expects LF.
			if b == '\r' {
				b = '\n'
			}
			c.UART().SendChar(b)
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			err = nil
		}
		if err != nil {
			return errors.Wrap(err, "stdin read failed")
		}

		// A batch of cycles between polls keeps the guest responsive
		// without spinning the host CPU on stdin.
		for i := 0; i < 1000 && !c.CPU().Halted() && cycles < maxCycles; i++ {
			c.Step()
			cycles++
		}

		drainUART(c)
		if n == 0 {
			time.Sleep(time.Millisecond)
		}
	}

	drainUART(c)
	return nil
}

func drainUART(c *s8.Computer) {
	for c.UART().HasOutput() {
		fmt.Printf("%c", c.UART().RecvChar())
	}
}
