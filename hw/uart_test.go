package hw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/hw"
)

func TestUARTTransmit(t *testing.T) {
	u := hw.NewUART(&irqRecorder{})
	assert.False(t, u.HasOutput())

	u.WriteReg(0, 'A')
	u.WriteReg(0, 'B')

	assert.True(t, u.HasOutput())
	assert.Equal(t, uint8('A'), u.RecvChar())
	assert.Equal(t, uint8('B'), u.RecvChar())
	assert.False(t, u.HasOutput())
	assert.Equal(t, uint8(0), u.RecvChar(), "empty TX queue reads as 0")
}

func TestUARTReceiveRaisesInterrupt(t *testing.T) {
	rec := &irqRecorder{}
	u := hw.NewUART(rec)

	u.SendChar('x')
	u.SendChar('y')
	assert.Equal(t, []uint8{hw.UARTIRQ, hw.UARTIRQ}, rec.raised)

	assert.Equal(t, uint8('x'), u.ReadReg(0))
	assert.Equal(t, uint8('y'), u.ReadReg(0))
	assert.Equal(t, uint8(0), u.ReadReg(0), "empty RX queue reads as 0")
}

func TestUARTStatus(t *testing.T) {
	u := hw.NewUART(&irqRecorder{})
	assert.Equal(t, uint8(hw.UartTxReady), u.ReadReg(1))

	u.SendChar('z')
	assert.Equal(t, uint8(hw.UartTxReady|hw.UartRxReady), u.ReadReg(1))

	u.ReadReg(0)
	assert.Equal(t, uint8(hw.UartTxReady), u.ReadReg(1))
}

func TestUARTUnmappedRegs(t *testing.T) {
	u := hw.NewUART(&irqRecorder{})
	assert.Equal(t, uint8(0), u.ReadReg(7))
	u.WriteReg(7, 0xFF) // dropped
	assert.False(t, u.HasOutput())
}

func TestUARTReset(t *testing.T) {
	u := hw.NewUART(&irqRecorder{})
	u.SendChar('a')
	u.WriteReg(0, 'b')
	u.Reset()

	assert.False(t, u.HasOutput())
	assert.Equal(t, uint8(hw.UartTxReady), u.ReadReg(1))
}
