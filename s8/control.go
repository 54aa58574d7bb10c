package s8

import (
	"seed8/gate"
	"seed8/logic"
)

// Opcode values, high nibble of instruction byte 2.
const (
	OpMisc = 0x0 // sub-dispatched on the rs field, see cpu.go
	OpLDI  = 0x1
	OpLD   = 0x2
	OpST   = 0x3
	OpADD  = 0x4
	OpSUB  = 0x5
	OpAND  = 0x6
	OpOR   = 0x7
	OpMOV  = 0x8
	OpCMP  = 0x9
	OpJMP  = 0xA
	OpJZ   = 0xB
	OpJNZ  = 0xC
	OpADDI = 0xD
	OpCALL = 0xE
	OpHLT  = 0xF
)

// Sub-operations of OpMisc, selected by the rs field (and within rs=0,
// the rd field).
const (
	miscSys  = 0 // rd: 0=NOP, 1=CLI, 2=STI, 3=RTI
	miscPush = 1
	miscPop  = 2
	miscFlow = 3 // rd: 0=RET, 1=SWI, 2=JC, 3=JNC
)

const (
	sysNOP = 0
	sysCLI = 1
	sysSTI = 2
	sysRTI = 3

	flowRET = 0
	flowSWI = 1
	flowJC  = 2
	flowJNC = 3
)

// ControlSignals is one wire per decision the CPU makes each cycle.
type ControlSignals struct {
	RegWrite   bool // write a result back to the register file
	MemRead    bool // read a byte from memory into a register
	MemWrite   bool // write a register value to memory
	AluOp0     bool // ALU operation select, low bit
	AluOp1     bool // ALU operation select, high bit
	AluSrcImm  bool // ALU input B comes from imm8 instead of Rs
	RegSrcMem  bool // writeback data comes from memory
	RegSrcImm  bool // writeback data comes from imm8
	IsMov      bool // writeback data comes from Rs
	PcJump     bool // load the PC with a new address
	FlagsWrite bool // update zero/carry from the ALU
	Halt       bool // stop the CPU
}

// ControlUnit derives the control signals from the opcode and the
// current zero flag. Pure combinational logic: a 4→16 decoder produces
// one-hot opcode lines, and each signal is an OR of the lines that need
// it. Opcodes 0x0 and 0xE are sentinels handled directly by the CPU.
type ControlUnit struct {
	Signals ControlSignals

	dec *logic.Decoder
}

// NewControlUnit returns a control unit with all signals low.
func NewControlUnit() *ControlUnit {
	return &ControlUnit{dec: logic.NewDecoder(4)}
}

// Decode drives the signal set for the given opcode bits.
func (cu *ControlUnit) Decode(opcode []bool, zeroFlag bool) {
	cu.dec.Decode(opcode, true)

	ldi := cu.dec.Outputs[OpLDI]
	ld := cu.dec.Outputs[OpLD]
	st := cu.dec.Outputs[OpST]
	add := cu.dec.Outputs[OpADD]
	sub := cu.dec.Outputs[OpSUB]
	and := cu.dec.Outputs[OpAND]
	or := cu.dec.Outputs[OpOR]
	mov := cu.dec.Outputs[OpMOV]
	cmp := cu.dec.Outputs[OpCMP]
	jmp := cu.dec.Outputs[OpJMP]
	jz := cu.dec.Outputs[OpJZ]
	jnz := cu.dec.Outputs[OpJNZ]
	addi := cu.dec.Outputs[OpADDI]
	hlt := cu.dec.Outputs[OpHLT]

	s := &cu.Signals

	s.RegWrite = gate.Or(gate.Or(gate.Or(ldi, ld), gate.Or(add, sub)),
		gate.Or(gate.Or(and, or), gate.Or(mov, addi)))

	s.MemRead = ld
	s.MemWrite = st

	// ALU select: ADD=00, SUB=01, AND=10, OR=11.
	s.AluOp0 = gate.Or(sub, gate.Or(or, cmp))
	s.AluOp1 = gate.Or(and, or)

	s.AluSrcImm = addi

	s.RegSrcMem = ld
	s.RegSrcImm = ldi
	s.IsMov = mov

	s.PcJump = gate.Or(jmp,
		gate.Or(gate.And(jz, zeroFlag),
			gate.And(jnz, gate.Not(zeroFlag))))

	s.FlagsWrite = gate.Or(gate.Or(add, sub),
		gate.Or(gate.Or(and, or), gate.Or(cmp, addi)))

	s.Halt = hlt
}
