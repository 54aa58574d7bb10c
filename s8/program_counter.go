package s8

import (
	"seed8/logic"
	"seed8/seq"
)

// Every instruction is three bytes in memory, so the PC advances by +3.
var pcStep = Bits16(3)

// ProgramCounter holds the 16-bit address of the next instruction. Each
// clock it either stores value+3 (computed by its own adder) or, when
// jump is asserted, the supplied target address.
type ProgramCounter struct {
	Value []bool

	reg   *seq.Register
	adder *logic.RippleCarryAdder
	mux   *logic.Mux2
}

// NewProgramCounter returns a PC at 0.
func NewProgramCounter() *ProgramCounter {
	return &ProgramCounter{
		Value: make([]bool, 16),
		reg:   seq.NewRegister(16),
		adder: logic.NewRippleCarryAdder(16),
		mux:   logic.NewMux2(16),
	}
}

// Clock advances the PC: +3 normally, jumpAddr when jump is high.
func (p *ProgramCounter) Clock(clk, jump bool, jumpAddr []bool) {
	p.adder.Add(p.Value, pcStep, false)
	p.mux.Select(jump, p.adder.Sum, jumpAddr)
	p.reg.Clock(clk, true, p.mux.Out)
	copy(p.Value, p.reg.Out)
}

// Reset forces the PC to 0.
func (p *ProgramCounter) Reset() {
	zero := make([]bool, 16)
	p.reg.Clock(false, true, zero)
	p.reg.Clock(true, true, zero)
	copy(p.Value, p.reg.Out)
}

// Addr returns the PC as a bus address.
func (p *ProgramCounter) Addr() uint16 {
	return Word(p.Value)
}
