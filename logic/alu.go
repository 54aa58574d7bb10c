package logic

import "seed8/gate"

// ALU selects one of four operations with two opcode bits:
//
//	op1 op0   op
//	 0   0    ADD  a + b
//	 0   1    SUB  a + NOT(b) + 1
//	 1   0    AND
//	 1   1    OR
//
// The arithmetic and logic paths are computed in parallel; op1 picks
// which one reaches the output. Carry is only meaningful for arithmetic
// and is forced low for AND/OR. Zero is set when every output bit is 0.
type ALU struct {
	Result []bool
	Carry  bool
	Zero   bool

	adder *RippleCarryAdder
	bMod  []bool
}

// NewALU returns an n-bit ALU.
func NewALU(n int) *ALU {
	return &ALU{
		Result: make([]bool, n),
		adder:  NewRippleCarryAdder(n),
		bMod:   make([]bool, n),
	}
}

// Compute runs the selected operation over a and b.
func (u *ALU) Compute(a, b []bool, op0, op1 bool) {
	// SUB path: XOR b with op0 inverts it, and op0 doubles as the
	// adder's carry-in, giving two's complement negation.
	for i := range u.bMod {
		u.bMod[i] = gate.Xor(b[i], op0)
	}
	u.adder.Add(a, u.bMod, op0)

	u.Zero = true
	for i := range u.Result {
		logicBit := gate.Or(
			gate.And(gate.Not(op0), gate.And(a[i], b[i])),
			gate.And(op0, gate.Or(a[i], b[i])),
		)
		u.Result[i] = gate.Or(
			gate.And(gate.Not(op1), u.adder.Sum[i]),
			gate.And(op1, logicBit),
		)
		if u.Result[i] {
			u.Zero = false
		}
	}

	u.Carry = gate.And(gate.Not(op1), u.adder.CarryOut)
}
