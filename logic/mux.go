package logic

import "seed8/gate"

// Mux2 is a bit-parallel 2-to-1 multiplexer: sel=0 selects a, sel=1
// selects b.
type Mux2 struct {
	Out []bool
}

// NewMux2 returns an n-bit wide 2-to-1 mux.
func NewMux2(n int) *Mux2 {
	return &Mux2{Out: make([]bool, n)}
}

// Select drives Out from a or b according to sel.
func (m *Mux2) Select(sel bool, a, b []bool) {
	for i := range m.Out {
		m.Out[i] = gate.Or(
			gate.And(gate.Not(sel), a[i]),
			gate.And(sel, b[i]),
		)
	}
}

// Mux4 is a 4-to-1 multiplexer composed from three Mux2s on a 2-bit
// selector (s0 low bit, s1 high bit).
type Mux4 struct {
	Out []bool

	lo, hi, fin *Mux2
}

// NewMux4 returns an n-bit wide 4-to-1 mux.
func NewMux4(n int) *Mux4 {
	return &Mux4{
		Out: make([]bool, n),
		lo:  NewMux2(n),
		hi:  NewMux2(n),
		fin: NewMux2(n),
	}
}

// Select drives Out from one of a, b, c, d according to the selector bits.
func (m *Mux4) Select(s0, s1 bool, a, b, c, d []bool) {
	m.lo.Select(s0, a, b)
	m.hi.Select(s0, c, d)
	m.fin.Select(s1, m.lo.Out, m.hi.Out)
	copy(m.Out, m.fin.Out)
}
