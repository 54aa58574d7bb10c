package s8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/s8"
)

func opBits(op uint8) []bool {
	return []bool{op&1 == 1, op&2 == 2, op&4 == 4, op&8 == 8}
}

func TestControlSignalTable(t *testing.T) {
	cases := []struct {
		name string
		op   uint8
		zero bool
		want s8.ControlSignals
	}{
		{"LDI", s8.OpLDI, false, s8.ControlSignals{RegWrite: true, RegSrcImm: true}},
		{"LD", s8.OpLD, false, s8.ControlSignals{RegWrite: true, MemRead: true, RegSrcMem: true}},
		{"ST", s8.OpST, false, s8.ControlSignals{MemWrite: true}},
		{"ADD", s8.OpADD, false, s8.ControlSignals{RegWrite: true, FlagsWrite: true}},
		{"SUB", s8.OpSUB, false, s8.ControlSignals{RegWrite: true, FlagsWrite: true, AluOp0: true}},
		{"AND", s8.OpAND, false, s8.ControlSignals{RegWrite: true, FlagsWrite: true, AluOp1: true}},
		{"OR", s8.OpOR, false, s8.ControlSignals{RegWrite: true, FlagsWrite: true, AluOp0: true, AluOp1: true}},
		{"MOV", s8.OpMOV, false, s8.ControlSignals{RegWrite: true, IsMov: true}},
		{"CMP", s8.OpCMP, false, s8.ControlSignals{FlagsWrite: true, AluOp0: true}},
		{"JMP", s8.OpJMP, false, s8.ControlSignals{PcJump: true}},
		{"JZ/z=1", s8.OpJZ, true, s8.ControlSignals{PcJump: true}},
		{"JZ/z=0", s8.OpJZ, false, s8.ControlSignals{}},
		{"JNZ/z=0", s8.OpJNZ, false, s8.ControlSignals{PcJump: true}},
		{"JNZ/z=1", s8.OpJNZ, true, s8.ControlSignals{}},
		{"ADDI", s8.OpADDI, false, s8.ControlSignals{RegWrite: true, FlagsWrite: true, AluSrcImm: true}},
		{"HLT", s8.OpHLT, false, s8.ControlSignals{Halt: true}},
		// Sentinels decode to nothing; the CPU handles them directly.
		{"misc", s8.OpMisc, false, s8.ControlSignals{}},
		{"CALL", s8.OpCALL, false, s8.ControlSignals{}},
	}

	cu := s8.NewControlUnit()
	for _, c := range cases {
		cu.Decode(opBits(c.op), c.zero)
		assert.Equalf(t, c.want, cu.Signals, "case %s", c.name)
	}
}
