package s8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/s8"
)

func sel2(v uint8) []bool {
	return []bool{v&1 == 1, v&2 == 2}
}

func writeReg(rf *s8.RegisterFile, reg uint8, val uint8) {
	rf.Write(false, sel2(reg), true, s8.Bits8(val))
	rf.Write(true, sel2(reg), true, s8.Bits8(val))
}

func TestRegisterFileWriteRead(t *testing.T) {
	rf := s8.NewRegisterFile()
	for i := uint8(0); i < 4; i++ {
		writeReg(rf, i, 10*i+1)
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(10*i+1), rf.Reg(i))
	}
}

func TestRegisterFileDualReadPorts(t *testing.T) {
	rf := s8.NewRegisterFile()
	writeReg(rf, 1, 0x11)
	writeReg(rf, 3, 0x33)

	rf.Read(sel2(1), sel2(3))
	assert.Equal(t, uint8(0x11), s8.Byte(rf.RdOut))
	assert.Equal(t, uint8(0x33), s8.Byte(rf.RsOut))

	// Both ports can name the same register.
	rf.Read(sel2(3), sel2(3))
	assert.Equal(t, uint8(0x33), s8.Byte(rf.RdOut))
	assert.Equal(t, uint8(0x33), s8.Byte(rf.RsOut))
}

func TestRegisterFileWriteTouchesOnlySelected(t *testing.T) {
	rf := s8.NewRegisterFile()
	for i := uint8(0); i < 4; i++ {
		writeReg(rf, i, 0x40+i)
	}
	writeReg(rf, 2, 0xEE)

	assert.Equal(t, uint8(0x40), rf.Reg(0))
	assert.Equal(t, uint8(0x41), rf.Reg(1))
	assert.Equal(t, uint8(0xEE), rf.Reg(2))
	assert.Equal(t, uint8(0x43), rf.Reg(3))
}

func TestRegisterFileWriteEnable(t *testing.T) {
	rf := s8.NewRegisterFile()
	writeReg(rf, 0, 0x55)

	rf.Write(false, sel2(0), false, s8.Bits8(0xFF))
	rf.Write(true, sel2(0), false, s8.Bits8(0xFF))
	assert.Equal(t, uint8(0x55), rf.Reg(0))
}
