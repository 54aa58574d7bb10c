package logic

import "seed8/gate"

// HalfAdder adds two single bits.
type HalfAdder struct {
	Sum   bool
	Carry bool
}

// Add computes a + b.
func (h *HalfAdder) Add(a, b bool) {
	h.Sum = gate.Xor(a, b)
	h.Carry = gate.And(a, b)
}

// FullAdder adds two bits plus a carry-in, built from two half adders
// with an OR of their carries.
type FullAdder struct {
	Sum   bool
	Carry bool
}

// Add computes a + b + carryIn.
func (f *FullAdder) Add(a, b, carryIn bool) {
	var ha1, ha2 HalfAdder
	ha1.Add(a, b)
	ha2.Add(ha1.Sum, carryIn)
	f.Sum = ha2.Sum
	f.Carry = gate.Or(ha1.Carry, ha2.Carry)
}

// RippleCarryAdder chains n full adders; the carry ripples from bit 0 up.
type RippleCarryAdder struct {
	Sum      []bool
	CarryOut bool
}

// NewRippleCarryAdder returns an n-bit adder.
func NewRippleCarryAdder(n int) *RippleCarryAdder {
	return &RippleCarryAdder{Sum: make([]bool, n)}
}

// Add computes a + b + carryIn across the full width.
func (r *RippleCarryAdder) Add(a, b []bool, carryIn bool) {
	carry := carryIn
	for i := range r.Sum {
		var fa FullAdder
		fa.Add(a[i], b[i], carry)
		r.Sum[i] = fa.Sum
		carry = fa.Carry
	}
	r.CarryOut = carry
}
