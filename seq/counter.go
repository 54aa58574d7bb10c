package seq

import "seed8/gate"

// Counter is an n-bit ripple up-counter with synchronous reset and an
// enable. Bit i toggles on the rising edge when enable is high and every
// lower bit is 1.
type Counter struct {
	Value []bool

	bits []*DFlipFlop
}

// NewCounter returns an n-bit counter at 0.
func NewCounter(n int) *Counter {
	c := &Counter{
		Value: make([]bool, n),
		bits:  make([]*DFlipFlop, n),
	}
	for i := range c.bits {
		c.bits[i] = NewDFlipFlop()
	}
	return c
}

// Clock presents the clock, reset and enable inputs.
func (c *Counter) Clock(clk, reset, enable bool) {
	allLowerOnes := true
	for i, ff := range c.bits {
		toggle := gate.And(enable, allLowerOnes)
		next := gate.And(
			gate.Not(reset),
			gate.Xor(c.Value[i], toggle),
		)
		ff.Clock(clk, next)
		c.Value[i] = ff.Q
		allLowerOnes = gate.And(allLowerOnes, c.Value[i])
	}
}

// Int returns the count as an integer.
func (c *Counter) Int() int {
	v := 0
	for i, b := range c.Value {
		if b {
			v |= 1 << i
		}
	}
	return v
}
