package seq

import "seed8/gate"

// Register is a row of D flip-flops sharing one clock. When load is low
// each bit feeds its own output back in, so the stored value survives any
// number of clocks.
type Register struct {
	Out []bool

	bits []*DFlipFlop
}

// NewRegister returns an n-bit register holding 0.
func NewRegister(n int) *Register {
	r := &Register{
		Out:  make([]bool, n),
		bits: make([]*DFlipFlop, n),
	}
	for i := range r.bits {
		r.bits[i] = NewDFlipFlop()
	}
	return r
}

// Clock presents the clock, load-enable and data inputs. Data is captured
// on the rising edge only when load is high.
func (r *Register) Clock(clk, load bool, data []bool) {
	for i, ff := range r.bits {
		// load mux: new data when load, feedback otherwise
		d := gate.Or(
			gate.And(load, data[i]),
			gate.And(gate.Not(load), r.Out[i]),
		)
		ff.Clock(clk, d)
		r.Out[i] = ff.Q
	}
}
