package s8

import "seed8/seq"

// InstructionRegister holds one 24-bit instruction as three 8-bit
// sub-registers, loaded a byte at a time by the fetch unit:
//
//	byte0 = imm low
//	byte1 = imm high
//	byte2 = [opcode:4 | rd:2 | rs:2], opcode in the high nibble
type InstructionRegister struct {
	b0, b1, b2 *seq.Register
}

// NewInstructionRegister returns an IR holding 0.
func NewInstructionRegister() *InstructionRegister {
	return &InstructionRegister{
		b0: seq.NewRegister(8),
		b1: seq.NewRegister(8),
		b2: seq.NewRegister(8),
	}
}

func (ir *InstructionRegister) LoadByte0(clk, en bool, data []bool) {
	ir.b0.Clock(clk, en, data)
}

func (ir *InstructionRegister) LoadByte1(clk, en bool, data []bool) {
	ir.b1.Clock(clk, en, data)
}

func (ir *InstructionRegister) LoadByte2(clk, en bool, data []bool) {
	ir.b2.Clock(clk, en, data)
}

// Opcode is the high nibble of byte 2.
func (ir *InstructionRegister) Opcode() []bool {
	return []bool{ir.b2.Out[4], ir.b2.Out[5], ir.b2.Out[6], ir.b2.Out[7]}
}

// Rd is bits 3..2 of byte 2.
func (ir *InstructionRegister) Rd() []bool {
	return []bool{ir.b2.Out[2], ir.b2.Out[3]}
}

// Rs is bits 1..0 of byte 2.
func (ir *InstructionRegister) Rs() []bool {
	return []bool{ir.b2.Out[0], ir.b2.Out[1]}
}

// Imm8 is byte 0.
func (ir *InstructionRegister) Imm8() []bool {
	out := make([]bool, 8)
	copy(out, ir.b0.Out)
	return out
}

// Imm16 is byte1<<8 | byte0.
func (ir *InstructionRegister) Imm16() []bool {
	out := make([]bool, 16)
	copy(out[:8], ir.b0.Out)
	copy(out[8:], ir.b1.Out)
	return out
}
