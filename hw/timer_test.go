package hw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/hw"
)

// irqRecorder counts raised interrupts per number.
type irqRecorder struct {
	raised []uint8
}

func (r *irqRecorder) RaiseInterrupt(n uint8) {
	r.raised = append(r.raised, n)
}

func TestTimerDisabledByDefault(t *testing.T) {
	rec := &irqRecorder{}
	tm := hw.NewTimer(rec)
	tm.WriteReg(0, 3)

	for i := 0; i < 10; i++ {
		tm.Tick()
	}
	assert.Empty(t, rec.raised, "reload write alone must not enable")
	assert.Equal(t, uint8(3), tm.ReadReg(0))
}

func TestTimerFiresAndReloads(t *testing.T) {
	rec := &irqRecorder{}
	tm := hw.NewTimer(rec)
	tm.WriteReg(0, 3)
	tm.WriteReg(1, 2) // enable

	tm.Tick()
	tm.Tick()
	assert.Empty(t, rec.raised)

	tm.Tick()
	assert.Equal(t, []uint8{hw.TimerIRQ}, rec.raised)
	assert.Equal(t, uint8(3), tm.ReadReg(0), "counter reloads after firing")
	assert.Equal(t, uint8(3), tm.ReadReg(1), "fired and enabled bits set")

	// Second period.
	tm.Tick()
	tm.Tick()
	tm.Tick()
	assert.Len(t, rec.raised, 2)
}

func TestTimerAckClearsFired(t *testing.T) {
	rec := &irqRecorder{}
	tm := hw.NewTimer(rec)
	tm.WriteReg(0, 1)
	tm.WriteReg(1, 2)
	tm.Tick()
	assert.Equal(t, uint8(3), tm.ReadReg(1))

	tm.WriteReg(1, 2|1) // ack, stay enabled
	assert.Equal(t, uint8(2), tm.ReadReg(1))
}

func TestTimerDisableStopsCountdown(t *testing.T) {
	rec := &irqRecorder{}
	tm := hw.NewTimer(rec)
	tm.WriteReg(0, 5)
	tm.WriteReg(1, 2)
	tm.Tick()
	tm.WriteReg(1, 0) // disable

	for i := 0; i < 10; i++ {
		tm.Tick()
	}
	assert.Empty(t, rec.raised)
	assert.Equal(t, uint8(4), tm.ReadReg(0))
}

func TestTimerReset(t *testing.T) {
	rec := &irqRecorder{}
	tm := hw.NewTimer(rec)
	tm.WriteReg(0, 5)
	tm.WriteReg(1, 2)
	tm.Reset()

	assert.Equal(t, uint8(0), tm.ReadReg(0))
	assert.Equal(t, uint8(0), tm.ReadReg(1))
	tm.Tick()
	assert.Empty(t, rec.raised)
}
