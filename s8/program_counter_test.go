package s8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/s8"
)

func pcEdge(pc *s8.ProgramCounter, jump bool, addr []bool) {
	pc.Clock(false, jump, addr)
	pc.Clock(true, jump, addr)
}

func TestProgramCounterIncrementsByThree(t *testing.T) {
	pc := s8.NewProgramCounter()
	unused := make([]bool, 16)
	for i := 1; i <= 5; i++ {
		pcEdge(pc, false, unused)
		assert.Equal(t, uint16(3*i), pc.Addr())
	}
}

func TestProgramCounterJump(t *testing.T) {
	pc := s8.NewProgramCounter()
	pcEdge(pc, true, s8.Bits16(0x1234))
	assert.Equal(t, uint16(0x1234), pc.Addr())

	// Next normal clock resumes +3 from the target.
	pcEdge(pc, false, make([]bool, 16))
	assert.Equal(t, uint16(0x1237), pc.Addr())
}

func TestProgramCounterReset(t *testing.T) {
	pc := s8.NewProgramCounter()
	pcEdge(pc, true, s8.Bits16(0xABCD))
	pc.Reset()
	assert.Equal(t, uint16(0), pc.Addr())
}

func TestProgramCounterWraps(t *testing.T) {
	pc := s8.NewProgramCounter()
	pcEdge(pc, true, s8.Bits16(0xFFFE))
	pcEdge(pc, false, make([]bool, 16))
	assert.Equal(t, uint16(0x0001), pc.Addr())
}
