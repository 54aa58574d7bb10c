package s8

import "seed8/gate"

// Memory geometry. In real hardware this would be a grid of flip-flops
// behind an address decoder; simulating half a million of them is
// pointless, so storage is a flat byte array while the Clock interface
// keeps the gate-level shape.
const (
	AddrBits = 16
	DataBits = 8
	MemSize  = 1 << AddrBits
)

// Memory is the 64 KiB byte-addressable store behind the Bus.
type Memory struct {
	DataOut []bool

	storage [MemSize]uint8
	prevClk bool
}

// NewMemory returns zeroed memory.
func NewMemory() *Memory {
	return &Memory{DataOut: make([]bool, DataBits)}
}

// Clock is the gate-level interface: the addressed byte is always driven
// onto DataOut, and dataIn is stored on a rising edge with writeEn high.
func (m *Memory) Clock(clk, writeEn bool, address, dataIn []bool) {
	addr := Word(address)
	copy(m.DataOut, Bits8(m.storage[addr]))

	risingEdge := gate.And(clk, gate.Not(m.prevClk))
	if gate.And(risingEdge, writeEn) {
		m.storage[addr] = Byte(dataIn)
	}
	m.prevClk = clk
}

// ReadByte is the direct interface used by the CPU at speed.
func (m *Memory) ReadByte(addr uint16) uint8 {
	return m.storage[addr]
}

func (m *Memory) WriteByte(addr uint16, val uint8) {
	m.storage[addr] = val
}

// ReadWord reads a 16-bit little-endian word.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.ReadByte(addr)
	hi := m.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (m *Memory) WriteWord(addr uint16, val uint16) {
	m.WriteByte(addr, uint8(val))
	m.WriteByte(addr+1, uint8(val>>8))
}
