// Package logic provides the combinational blocks of the datapath:
// decoder, multiplexers, adders, and the ALU. Everything here is pure
// gate composition over []bool buses, LSB at index 0.
package logic

import "seed8/gate"

// Decoder asserts exactly one of its 2^n output lines, selected by an
// n-bit address. A global enable gates every output.
type Decoder struct {
	Outputs []bool

	n int
}

// NewDecoder returns an n-to-2^n decoder.
func NewDecoder(n int) *Decoder {
	return &Decoder{Outputs: make([]bool, 1<<n), n: n}
}

// Decode drives the output lines for the given address bits.
func (d *Decoder) Decode(address []bool, enable bool) {
	for out := range d.Outputs {
		// AND together each address bit or its complement, depending on
		// the corresponding bit of the output index.
		match := true
		for bit := 0; bit < d.n; bit++ {
			term := address[bit]
			if (out>>bit)&1 == 0 {
				term = gate.Not(term)
			}
			match = gate.And(match, term)
		}
		d.Outputs[out] = gate.And(match, enable)
	}
}
