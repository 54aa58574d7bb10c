package s8

import "seed8/logic"

// SPReset is the stack pointer's reset value: the last byte below the
// I/O window, which is also the top byte of the IVT. The stack grows
// downward from here, so the first pushes land in IVT entry 7.
const SPReset = 0xEFFF

// CPU executes one instruction per Step. The datapath below the
// fetch/execute sequencing is built from the gate-level components; the
// scalar state (SP, halt, interrupt enable, pending mask) is plain
// machine state the way a microcoded sequencer would hold it.
type CPU struct {
	bus *Bus

	pc      *ProgramCounter
	ir      *InstructionRegister
	regs    *RegisterFile
	alu     *logic.ALU
	flags   *Flags
	control *ControlUnit
	aluBMux *logic.Mux2

	sp        uint16
	halted    bool
	intEnable bool
	pending   uint8
}

// NewCPU returns a CPU wired to the given bus, in reset state.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{
		bus:     bus,
		pc:      NewProgramCounter(),
		ir:      NewInstructionRegister(),
		regs:    NewRegisterFile(),
		alu:     logic.NewALU(8),
		flags:   NewFlags(),
		control: NewControlUnit(),
		aluBMux: logic.NewMux2(8),
	}
	c.Reset()
	return c
}

// Reset clears PC, SP, halt and interrupt state. Register file and RAM
// contents are left alone.
func (c *CPU) Reset() {
	c.pc.Reset()
	c.sp = SPReset
	c.halted = false
	c.intEnable = false
	c.pending = 0
}

// Halted reports whether the CPU has executed HLT since the last reset.
func (c *CPU) Halted() bool { return c.halted }

// PC returns the address of the next instruction to fetch.
func (c *CPU) PC() uint16 { return c.pc.Addr() }

// SP returns the stack pointer.
func (c *CPU) SP() uint16 { return c.sp }

// Reg returns general register i.
func (c *CPU) Reg(i int) uint8 { return c.regs.Reg(i) }

// Zero and Carry expose the latched ALU flags.
func (c *CPU) Zero() bool  { return c.flags.Zero }
func (c *CPU) Carry() bool { return c.flags.Carry }

// InterruptsEnabled reports the master interrupt enable.
func (c *CPU) InterruptsEnabled() bool { return c.intEnable }

// RaiseInterrupt flags hardware interrupt n as pending. Numbers outside
// 0..7 are silently ignored.
func (c *CPU) RaiseInterrupt(n uint8) {
	if n > 7 {
		return
	}
	c.pending |= 1 << n
}

// Step executes one instruction, or dispatches one pending interrupt.
func (c *CPU) Step() {
	if c.halted {
		return
	}

	// Interrupts are checked before fetch. Dispatching consumes the
	// step: the first handler instruction runs on the next one.
	if c.intEnable && c.pending != 0 {
		n := uint8(0)
		for c.pending&(1<<n) == 0 {
			n++
		}
		c.pending &^= 1 << n
		c.enterInterrupt(n)
		return
	}

	c.fetch()
	s := c.decode()
	c.execute(s)
}

// fetch reads the three instruction bytes at PC into the IR and then
// advances the PC by +3. Each sub-register load is a full clock edge.
func (c *CPU) fetch() {
	addr := c.pc.Addr()
	b0 := Bits8(c.bus.ReadByte(addr))
	b1 := Bits8(c.bus.ReadByte(addr + 1))
	b2 := Bits8(c.bus.ReadByte(addr + 2))

	c.ir.LoadByte0(false, true, b0)
	c.ir.LoadByte0(true, true, b0)
	c.ir.LoadByte1(false, true, b1)
	c.ir.LoadByte1(true, true, b1)
	c.ir.LoadByte2(false, true, b2)
	c.ir.LoadByte2(true, true, b2)

	unused := make([]bool, 16)
	c.pc.Clock(false, false, unused)
	c.pc.Clock(true, false, unused)
}

// decode derives the control signals and reads both register ports.
func (c *CPU) decode() ControlSignals {
	c.control.Decode(c.ir.Opcode(), c.flags.Zero)
	c.regs.Read(c.ir.Rd(), c.ir.Rs())
	return c.control.Signals
}

func (c *CPU) execute(s ControlSignals) {
	op := Byte(c.ir.Opcode())

	// Two sentinel opcodes bypass the signal-driven datapath.
	switch op {
	case OpMisc:
		c.executeMisc()
		return
	case OpCALL:
		// Push the return address, high byte first so the low byte
		// sits at the lower address, then jump.
		ret := c.pc.Addr()
		c.push(uint8(ret >> 8))
		c.push(uint8(ret))
		c.jump(c.ir.Imm16())
		return
	}

	// ALU input B: imm8 for ADDI, Rs otherwise.
	c.aluBMux.Select(s.AluSrcImm, c.regs.RsOut, c.ir.Imm8())

	// The ALU always runs; unused results are simply never written.
	c.alu.Compute(c.regs.RdOut, c.aluBMux.Out, s.AluOp0, s.AluOp1)

	var memData []bool
	if s.MemRead {
		memData = Bits8(c.bus.ReadByte(Word(c.ir.Imm16())))
	}

	if s.MemWrite {
		c.bus.WriteByte(Word(c.ir.Imm16()), Byte(c.regs.RdOut))
	}

	// Writeback mux, fixed priority: memory > immediate > mov > ALU.
	writeData := c.alu.Result
	switch {
	case s.RegSrcMem:
		writeData = memData
	case s.RegSrcImm:
		writeData = c.ir.Imm8()
	case s.IsMov:
		writeData = c.regs.RsOut
	}

	if s.RegWrite {
		c.regs.Write(false, c.ir.Rd(), true, writeData)
		c.regs.Write(true, c.ir.Rd(), true, writeData)
	}

	if s.FlagsWrite {
		c.flags.Update(false, true, c.alu.Carry, c.alu.Zero)
		c.flags.Update(true, true, c.alu.Carry, c.alu.Zero)
	}

	if s.PcJump {
		c.jump(c.ir.Imm16())
	}

	if s.Halt {
		c.halted = true
	}
}

// executeMisc handles opcode 0x0: stack, interrupt-control and flow
// operations selected by the rs field.
func (c *CPU) executeMisc() {
	switch Byte(c.ir.Rs()) {
	case miscSys:
		switch Byte(c.ir.Rd()) {
		case sysNOP:
		case sysCLI:
			c.intEnable = false
		case sysSTI:
			c.intEnable = true
		case sysRTI:
			c.returnFromInterrupt()
		}

	case miscPush:
		c.push(Byte(c.regs.RdOut))

	case miscPop:
		val := Bits8(c.pop())
		c.regs.Write(false, c.ir.Rd(), true, val)
		c.regs.Write(true, c.ir.Rd(), true, val)

	case miscFlow:
		switch Byte(c.ir.Rd()) {
		case flowRET:
			lo := c.pop()
			hi := c.pop()
			c.jump(Bits16(uint16(hi)<<8 | uint16(lo)))
		case flowSWI:
			c.enterInterrupt(Byte(c.ir.Imm8()))
		case flowJC:
			if c.flags.Carry {
				c.jump(c.ir.Imm16())
			}
		case flowJNC:
			if !c.flags.Carry {
				c.jump(c.ir.Imm16())
			}
		}
	}
}

// push decrements SP and stores one byte.
func (c *CPU) push(v uint8) {
	c.sp--
	c.bus.WriteByte(c.sp, v)
}

// pop reads one byte and increments SP.
func (c *CPU) pop() uint8 {
	v := c.bus.ReadByte(c.sp)
	c.sp++
	return v
}

// jump loads the PC with an absolute target through a full clock edge.
func (c *CPU) jump(addr []bool) {
	c.pc.Clock(false, true, addr)
	c.pc.Clock(true, true, addr)
}

// enterInterrupt runs the entry protocol for interrupt n, hardware or
// software: save flags+IE and PC on the stack, mask further interrupts,
// and vector through the IVT.
func (c *CPU) enterInterrupt(n uint8) {
	packed := c.flags.Pack()
	if c.intEnable {
		packed |= FlagIntEnable
	}

	ret := c.pc.Addr()
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(packed)

	c.intEnable = false

	handler := c.bus.ReadWord(IVTBase + 2*uint16(n))
	c.jump(Bits16(handler))
}

// returnFromInterrupt reverses enterInterrupt: restore flags and the
// interrupt enable, then return to the saved PC.
func (c *CPU) returnFromInterrupt() {
	packed := c.pop()
	c.flags.Unpack(packed)
	c.intEnable = packed&FlagIntEnable != 0

	lo := c.pop()
	hi := c.pop()
	c.jump(Bits16(uint16(hi)<<8 | uint16(lo)))
}
