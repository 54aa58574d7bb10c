package s8

import (
	"seed8/gate"
	"seed8/seq"
)

// Packed flags byte layout, shared by interrupt save/restore. The
// interrupt-enable bit is packed and unpacked by the CPU, not here, but
// lives in the same byte.
const (
	FlagZero      = 1 << 0
	FlagCarry     = 1 << 1
	FlagIntEnable = 1 << 2
)

// Flags holds the zero and carry bits in two D flip-flops behind a
// load-enable feedback mux, the same hold pattern the registers use.
// Only ALU-class instructions assert load; everything else leaves the
// flags untouched.
type Flags struct {
	Carry bool
	Zero  bool

	carryFF *seq.DFlipFlop
	zeroFF  *seq.DFlipFlop
}

// NewFlags returns cleared flags.
func NewFlags() *Flags {
	return &Flags{carryFF: seq.NewDFlipFlop(), zeroFF: seq.NewDFlipFlop()}
}

// Update captures the new flag values on a rising edge when load is high.
func (f *Flags) Update(clk, load, carry, zero bool) {
	cIn := gate.Or(gate.And(load, carry), gate.And(gate.Not(load), f.Carry))
	zIn := gate.Or(gate.And(load, zero), gate.And(gate.Not(load), f.Zero))

	f.carryFF.Clock(clk, cIn)
	f.zeroFF.Clock(clk, zIn)

	f.Carry = f.carryFF.Q
	f.Zero = f.zeroFF.Q
}

// Pack folds the flags into a byte for pushing during interrupt entry.
func (f *Flags) Pack() uint8 {
	var b uint8
	if f.Zero {
		b |= FlagZero
	}
	if f.Carry {
		b |= FlagCarry
	}
	return b
}

// Unpack restores the flags from a packed byte, forcing the flip-flops
// to match with a full clock edge.
func (f *Flags) Unpack(b uint8) {
	f.Zero = b&FlagZero != 0
	f.Carry = b&FlagCarry != 0
	f.zeroFF.Clock(false, f.Zero)
	f.zeroFF.Clock(true, f.Zero)
	f.carryFF.Clock(false, f.Carry)
	f.carryFF.Clock(true, f.Carry)
}
