package s8

import (
	"seed8/common"
	"seed8/hw"
)

// Device register offsets within the I/O window.
const (
	TimerBase = 0x000 // regs 0-1
	UARTBase  = 0x002 // regs 0-1
)

// Computer is the top-level system: one bus, one CPU, and the built-in
// devices, wired together. Devices see the CPU only as an interrupt
// raiser; the bus sees the devices only through the I/O handler pair.
type Computer struct {
	bus     *Bus
	cpu     *CPU
	timer   *hw.Timer
	uart    *hw.UART
	devices []common.Device
}

// NewComputer builds and wires a complete machine.
func NewComputer() *Computer {
	bus := NewBus()
	cpu := NewCPU(bus)
	c := &Computer{
		bus:   bus,
		cpu:   cpu,
		timer: hw.NewTimer(cpu),
		uart:  hw.NewUART(cpu),
	}
	c.devices = []common.Device{c.timer, c.uart}

	bus.AttachIO(
		func(off uint16) uint8 {
			switch {
			case off < UARTBase:
				return c.timer.ReadReg(off - TimerBase)
			case off < UARTBase+2:
				return c.uart.ReadReg(off - UARTBase)
			}
			return 0
		},
		func(off uint16, val uint8) {
			switch {
			case off < UARTBase:
				c.timer.WriteReg(off-TimerBase, val)
			case off < UARTBase+2:
				c.uart.WriteReg(off-UARTBase, val)
			}
		},
	)
	return c
}

// LoadProgram writes a program image into memory at addr.
func (c *Computer) LoadProgram(data []byte, addr uint16) {
	c.bus.Load(addr, data)
}

// Step ticks every device, then executes one CPU step.
func (c *Computer) Step() {
	for _, d := range c.devices {
		d.Tick()
	}
	c.cpu.Step()
}

// Run steps the machine until the CPU halts or maxCycles steps have
// been taken, and reports how many steps ran.
func (c *Computer) Run(maxCycles int) int {
	cycles := 0
	for !c.cpu.Halted() && cycles < maxCycles {
		c.Step()
		cycles++
	}
	return cycles
}

// Reset resets the CPU and every device. RAM is preserved.
func (c *Computer) Reset() {
	c.cpu.Reset()
	for _, d := range c.devices {
		d.Reset()
	}
}

// CPU returns the processor.
func (c *Computer) CPU() *CPU { return c.cpu }

// Bus returns the system bus.
func (c *Computer) Bus() *Bus { return c.bus }

// Timer returns the built-in countdown timer.
func (c *Computer) Timer() *hw.Timer { return c.timer }

// UART returns the built-in serial device.
func (c *Computer) UART() *hw.UART { return c.uart }
