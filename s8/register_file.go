package s8

import (
	"seed8/logic"
	"seed8/seq"
)

// RegisterFile is four 8-bit registers R0..R3 with two combinational
// read ports and one write port. The write port one-hot decodes the
// destination selector; every register sees the clock, but only the
// selected one has its load enable high.
type RegisterFile struct {
	RdOut []bool
	RsOut []bool

	regs  [4]*seq.Register
	dec   *logic.Decoder
	rdMux *logic.Mux4
	rsMux *logic.Mux4
}

// NewRegisterFile returns a register file with all registers at 0.
func NewRegisterFile() *RegisterFile {
	rf := &RegisterFile{
		RdOut: make([]bool, 8),
		RsOut: make([]bool, 8),
		dec:   logic.NewDecoder(2),
		rdMux: logic.NewMux4(8),
		rsMux: logic.NewMux4(8),
	}
	for i := range rf.regs {
		rf.regs[i] = seq.NewRegister(8)
	}
	return rf
}

// Read drives both read ports from the 2-bit selectors.
func (rf *RegisterFile) Read(rdSel, rsSel []bool) {
	rf.rdMux.Select(rdSel[0], rdSel[1],
		rf.regs[0].Out, rf.regs[1].Out, rf.regs[2].Out, rf.regs[3].Out)
	rf.rsMux.Select(rsSel[0], rsSel[1],
		rf.regs[0].Out, rf.regs[1].Out, rf.regs[2].Out, rf.regs[3].Out)
	copy(rf.RdOut, rf.rdMux.Out)
	copy(rf.RsOut, rf.rsMux.Out)
}

// Write clocks data into the register named by sel when writeEn is high.
func (rf *RegisterFile) Write(clk bool, sel []bool, writeEn bool, data []bool) {
	rf.dec.Decode(sel, writeEn)
	for i, r := range rf.regs {
		r.Clock(clk, rf.dec.Outputs[i], data)
	}
}

// Reg returns register i as a byte, for tests and the debug monitor.
func (rf *RegisterFile) Reg(i int) uint8 {
	return Byte(rf.regs[i].Out)
}
