package seq

import "seed8/gate"

// DFlipFlop is an edge-triggered D flip-flop: two D latches in a
// master-slave arrangement. The master is transparent while the clock is
// low, the slave while it is high, so the output only changes on the 0→1
// clock transition. Callers produce a rising edge by clocking with
// clk=false and then clk=true.
type DFlipFlop struct {
	Q  bool
	QN bool

	master *DLatch
	slave  *DLatch
}

// NewDFlipFlop returns a flip-flop holding 0.
func NewDFlipFlop() *DFlipFlop {
	return &DFlipFlop{QN: true, master: NewDLatch(), slave: NewDLatch()}
}

// Clock presents the clock and data inputs.
func (f *DFlipFlop) Clock(clk, d bool) {
	f.master.Update(gate.Not(clk), d)
	f.slave.Update(clk, f.master.Q)
	f.Q = f.slave.Q
	f.QN = f.slave.QN
}
