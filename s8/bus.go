package s8

// Memory map. The IVT sits at the top of RAM, just below the I/O window.
const (
	IOBase  = 0xF000
	IVTBase = 0xEFF0
)

// IoReadFn and IoWriteFn handle accesses inside the I/O window. The
// address they receive is the offset from IOBase.
type IoReadFn func(off uint16) uint8
type IoWriteFn func(off uint16, val uint8)

// Bus routes CPU reads and writes to RAM or to memory-mapped I/O. The
// CPU never touches RAM directly; the bus decodes every address, which
// is where devices get the chance to intercept.
type Bus struct {
	ram     *Memory
	ioRead  IoReadFn
	ioWrite IoWriteFn
}

// NewBus returns a bus with zeroed RAM and no I/O handlers attached.
func NewBus() *Bus {
	return &Bus{ram: NewMemory()}
}

// AttachIO registers the handler pair for the I/O window. A single pair
// serves all devices; it multiplexes on the offset.
func (b *Bus) AttachIO(read IoReadFn, write IoWriteFn) {
	b.ioRead = read
	b.ioWrite = write
}

// ReadByte reads one byte. Unhandled I/O reads return 0.
func (b *Bus) ReadByte(addr uint16) uint8 {
	if addr >= IOBase {
		if b.ioRead != nil {
			return b.ioRead(addr - IOBase)
		}
		return 0
	}
	return b.ram.ReadByte(addr)
}

// WriteByte writes one byte. Unhandled I/O writes are dropped.
func (b *Bus) WriteByte(addr uint16, val uint8) {
	if addr >= IOBase {
		if b.ioWrite != nil {
			b.ioWrite(addr-IOBase, val)
		}
		return
	}
	b.ram.WriteByte(addr, val)
}

// ReadWord reads a 16-bit little-endian word.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.ReadByte(addr)
	hi := b.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a 16-bit little-endian word.
func (b *Bus) WriteWord(addr uint16, val uint16) {
	b.WriteByte(addr, uint8(val))
	b.WriteByte(addr+1, uint8(val>>8))
}

// Load copies a program image into memory starting at addr.
func (b *Bus) Load(addr uint16, data []byte) {
	for i, v := range data {
		b.WriteByte(addr+uint16(i), v)
	}
}

// RAM exposes the backing store for tests and the debug monitor.
func (b *Bus) RAM() *Memory {
	return b.ram
}
