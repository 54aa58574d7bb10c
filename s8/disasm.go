package s8

import "fmt"

// Disassembler. The format is:
// ADDR: B0 B1 B2    mnemonic operands

var regOps = map[uint8]string{
	OpADD: "ADD",
	OpSUB: "SUB",
	OpAND: "AND",
	OpOR:  "OR",
	OpMOV: "MOV",
	OpCMP: "CMP",
}

var jumpOps = map[uint8]string{
	OpJMP: "JMP",
	OpJZ:  "JZ",
	OpJNZ: "JNZ",
}

var sysOps = map[uint8]string{
	sysNOP: "NOP",
	sysCLI: "CLI",
	sysSTI: "STI",
	sysRTI: "RTI",
}

// DisasmOp formats the instruction whose three bytes start at pc.
func DisasmOp(b *Bus, pc uint16) string {
	b0 := b.ReadByte(pc)
	b1 := b.ReadByte(pc + 1)
	b2 := b.ReadByte(pc + 2)

	op := b2 >> 4
	rd := (b2 >> 2) & 3
	rs := b2 & 3
	imm8 := b0
	imm16 := uint16(b1)<<8 | uint16(b0)

	var text string
	switch op {
	case OpMisc:
		switch rs {
		case miscSys:
			text = sysOps[rd]
		case miscPush:
			text = fmt.Sprintf("PUSH R%d", rd)
		case miscPop:
			text = fmt.Sprintf("POP R%d", rd)
		case miscFlow:
			switch rd {
			case flowRET:
				text = "RET"
			case flowSWI:
				text = fmt.Sprintf("SWI %d", imm8)
			case flowJC:
				text = fmt.Sprintf("JC $%04x", imm16)
			case flowJNC:
				text = fmt.Sprintf("JNC $%04x", imm16)
			}
		}
	case OpLDI:
		text = fmt.Sprintf("LDI R%d, %d", rd, imm8)
	case OpLD:
		text = fmt.Sprintf("LD R%d, [$%04x]", rd, imm16)
	case OpST:
		text = fmt.Sprintf("ST [$%04x], R%d", imm16, rd)
	case OpADD, OpSUB, OpAND, OpOR, OpMOV, OpCMP:
		text = fmt.Sprintf("%s R%d, R%d", regOps[op], rd, rs)
	case OpJMP, OpJZ, OpJNZ:
		text = fmt.Sprintf("%s $%04x", jumpOps[op], imm16)
	case OpADDI:
		text = fmt.Sprintf("ADDI R%d, %d", rd, imm8)
	case OpCALL:
		text = fmt.Sprintf("CALL $%04x", imm16)
	case OpHLT:
		text = "HLT"
	}

	return fmt.Sprintf("%04x: %02x %02x %02x    %s", pc, b0, b1, b2, text)
}

// DisasmRange prints count instructions starting at pc to stdout.
func DisasmRange(b *Bus, pc uint16, count int) {
	for i := 0; i < count; i++ {
		fmt.Println(DisasmOp(b, pc))
		pc += 3
	}
}
