package hw

import "seed8/common"

// UARTIRQ is the interrupt raised for each byte arriving on the RX side.
const UARTIRQ = 2

// UART status register bits.
const (
	UartRxReady = 1 << 0
	UartTxReady = 1 << 1
)

// UART is a serial character device on two registers:
//
//	reg 0: data. Writing transmits one byte; reading receives one (0 if
//	       the RX queue is empty).
//	reg 1: status. Bit 0 is RX-byte-available; bit 1 is TX-ready, which
//	       the host-side queue keeps permanently true.
//
// The host pushes RX bytes with SendChar (raising interrupt 2 per byte)
// and drains TX bytes with RecvChar.
type UART struct {
	cpu common.InterruptRaiser

	rx []uint8
	tx []uint8
}

// NewUART returns a UART with empty queues.
func NewUART(cpu common.InterruptRaiser) *UART {
	return &UART{cpu: cpu}
}

func (u *UART) WriteReg(off uint16, val uint8) {
	if off == 0 {
		u.tx = append(u.tx, val)
	}
}

func (u *UART) ReadReg(off uint16) uint8 {
	switch off {
	case 0:
		if len(u.rx) == 0 {
			return 0
		}
		ch := u.rx[0]
		u.rx = u.rx[1:]
		return ch
	case 1:
		var s uint8 = UartTxReady
		if len(u.rx) > 0 {
			s |= UartRxReady
		}
		return s
	}
	return 0
}

// Tick is a no-op; the UART has no time-dependent state.
func (u *UART) Tick() {}

// Reset drops both queues.
func (u *UART) Reset() {
	u.rx = nil
	u.tx = nil
}

// SendChar pushes a byte into the RX queue, as if typed on the wire.
func (u *UART) SendChar(ch uint8) {
	u.rx = append(u.rx, ch)
	u.cpu.RaiseInterrupt(UARTIRQ)
}

// HasOutput reports whether the CPU has transmitted anything undrained.
func (u *UART) HasOutput() bool {
	return len(u.tx) > 0
}

// RecvChar pulls one transmitted byte, 0 if none.
func (u *UART) RecvChar() uint8 {
	if len(u.tx) == 0 {
		return 0
	}
	ch := u.tx[0]
	u.tx = u.tx[1:]
	return ch
}
