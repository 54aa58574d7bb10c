// Package seq provides the sequential (state-holding) primitives: latches,
// flip-flops, registers, and a binary counter. Every element exposes its
// stored value through a stable output field that may be read at any time.
package seq

import "seed8/gate"

// SRLatch is a set/reset latch built from two cross-coupled NOR gates.
// Set drives Q high, Reset drives it low. Asserting both at once is
// invalid and leaves the outputs undefined.
type SRLatch struct {
	Q  bool
	QN bool
}

// NewSRLatch returns a latch holding 0.
func NewSRLatch() *SRLatch {
	return &SRLatch{QN: true}
}

// Update applies the set/reset inputs. The cross-coupled pair is relaxed
// for a fixed three passes to let the feedback settle.
func (l *SRLatch) Update(set, reset bool) {
	for i := 0; i < 3; i++ {
		l.Q = gate.Nor(reset, l.QN)
		l.QN = gate.Nor(set, l.Q)
	}
}

// DLatch is level-triggered: while enable is high the output follows D,
// and the last value is held once enable drops. It steers D into an SR
// latch as (enable AND d, enable AND NOT d).
type DLatch struct {
	Q  bool
	QN bool

	sr *SRLatch
}

// NewDLatch returns a latch holding 0.
func NewDLatch() *DLatch {
	return &DLatch{QN: true, sr: NewSRLatch()}
}

// Update applies the enable and data inputs.
func (l *DLatch) Update(enable, d bool) {
	set := gate.And(enable, d)
	reset := gate.And(enable, gate.Not(d))
	l.sr.Update(set, reset)
	l.Q = l.sr.Q
	l.QN = l.sr.QN
}
