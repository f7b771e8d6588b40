package cpu

// opcodeEntry is one row of the opcode table below: the opcode byte, its
// mnemonic, its addressing-mode tag and its base cycle count.
type opcodeEntry struct {
	opcode byte
	name   string
	mode   string
	cycles int
}

// officialOpcodes is the byte-accurate 6502 opcode table for all 56
// documented mnemonics across every addressing mode the hardware actually
// assigns them. Anything not listed here decodes as NOP/IMP/2 cycles, per
// the "undocumented opcodes are no-op stubs" scope decision.
var officialOpcodes = []opcodeEntry{
	// ADC
	{0x69, "ADC", "IMM", 2}, {0x65, "ADC", "ZP0", 3}, {0x75, "ADC", "ZPX", 4},
	{0x6D, "ADC", "ABS", 4}, {0x7D, "ADC", "ABX", 4}, {0x79, "ADC", "ABY", 4},
	{0x61, "ADC", "IZX", 6}, {0x71, "ADC", "IZY", 5},
	// AND
	{0x29, "AND", "IMM", 2}, {0x25, "AND", "ZP0", 3}, {0x35, "AND", "ZPX", 4},
	{0x2D, "AND", "ABS", 4}, {0x3D, "AND", "ABX", 4}, {0x39, "AND", "ABY", 4},
	{0x21, "AND", "IZX", 6}, {0x31, "AND", "IZY", 5},
	// ASL
	{0x0A, "ASL", "ACC", 2}, {0x06, "ASL", "ZP0", 5}, {0x16, "ASL", "ZPX", 6},
	{0x0E, "ASL", "ABS", 6}, {0x1E, "ASL", "ABX", 7},
	// Branches
	{0x90, "BCC", "REL", 2}, {0xB0, "BCS", "REL", 2}, {0xF0, "BEQ", "REL", 2},
	{0x30, "BMI", "REL", 2}, {0xD0, "BNE", "REL", 2}, {0x10, "BPL", "REL", 2},
	{0x50, "BVC", "REL", 2}, {0x70, "BVS", "REL", 2},
	// BIT
	{0x24, "BIT", "ZP0", 3}, {0x2C, "BIT", "ABS", 4},
	// BRK
	{0x00, "BRK", "IMP", 7},
	// Flag ops
	{0x18, "CLC", "IMP", 2}, {0xD8, "CLD", "IMP", 2}, {0x58, "CLI", "IMP", 2},
	{0xB8, "CLV", "IMP", 2}, {0x38, "SEC", "IMP", 2}, {0xF8, "SED", "IMP", 2},
	{0x78, "SEI", "IMP", 2},
	// CMP
	{0xC9, "CMP", "IMM", 2}, {0xC5, "CMP", "ZP0", 3}, {0xD5, "CMP", "ZPX", 4},
	{0xCD, "CMP", "ABS", 4}, {0xDD, "CMP", "ABX", 4}, {0xD9, "CMP", "ABY", 4},
	{0xC1, "CMP", "IZX", 6}, {0xD1, "CMP", "IZY", 5},
	// CPX / CPY
	{0xE0, "CPX", "IMM", 2}, {0xE4, "CPX", "ZP0", 3}, {0xEC, "CPX", "ABS", 4},
	{0xC0, "CPY", "IMM", 2}, {0xC4, "CPY", "ZP0", 3}, {0xCC, "CPY", "ABS", 4},
	// DEC / DEX / DEY
	{0xC6, "DEC", "ZP0", 5}, {0xD6, "DEC", "ZPX", 6}, {0xCE, "DEC", "ABS", 6},
	{0xDE, "DEC", "ABX", 7}, {0xCA, "DEX", "IMP", 2}, {0x88, "DEY", "IMP", 2},
	// EOR
	{0x49, "EOR", "IMM", 2}, {0x45, "EOR", "ZP0", 3}, {0x55, "EOR", "ZPX", 4},
	{0x4D, "EOR", "ABS", 4}, {0x5D, "EOR", "ABX", 4}, {0x59, "EOR", "ABY", 4},
	{0x41, "EOR", "IZX", 6}, {0x51, "EOR", "IZY", 5},
	// INC / INX / INY
	{0xE6, "INC", "ZP0", 5}, {0xF6, "INC", "ZPX", 6}, {0xEE, "INC", "ABS", 6},
	{0xFE, "INC", "ABX", 7}, {0xE8, "INX", "IMP", 2}, {0xC8, "INY", "IMP", 2},
	// JMP / JSR
	{0x4C, "JMP", "ABS", 3}, {0x6C, "JMP", "IND", 5}, {0x20, "JSR", "ABS", 6},
	// LDA
	{0xA9, "LDA", "IMM", 2}, {0xA5, "LDA", "ZP0", 3}, {0xB5, "LDA", "ZPX", 4},
	{0xAD, "LDA", "ABS", 4}, {0xBD, "LDA", "ABX", 4}, {0xB9, "LDA", "ABY", 4},
	{0xA1, "LDA", "IZX", 6}, {0xB1, "LDA", "IZY", 5},
	// LDX
	{0xA2, "LDX", "IMM", 2}, {0xA6, "LDX", "ZP0", 3}, {0xB6, "LDX", "ZPY", 4},
	{0xAE, "LDX", "ABS", 4}, {0xBE, "LDX", "ABY", 4},
	// LDY
	{0xA0, "LDY", "IMM", 2}, {0xA4, "LDY", "ZP0", 3}, {0xB4, "LDY", "ZPX", 4},
	{0xAC, "LDY", "ABS", 4}, {0xBC, "LDY", "ABX", 4},
	// LSR
	{0x4A, "LSR", "ACC", 2}, {0x46, "LSR", "ZP0", 5}, {0x56, "LSR", "ZPX", 6},
	{0x4E, "LSR", "ABS", 6}, {0x5E, "LSR", "ABX", 7},
	// NOP
	{0xEA, "NOP", "IMP", 2},
	// ORA
	{0x09, "ORA", "IMM", 2}, {0x05, "ORA", "ZP0", 3}, {0x15, "ORA", "ZPX", 4},
	{0x0D, "ORA", "ABS", 4}, {0x1D, "ORA", "ABX", 4}, {0x19, "ORA", "ABY", 4},
	{0x01, "ORA", "IZX", 6}, {0x11, "ORA", "IZY", 5},
	// Stack ops
	{0x48, "PHA", "IMP", 3}, {0x08, "PHP", "IMP", 3},
	{0x68, "PLA", "IMP", 4}, {0x28, "PLP", "IMP", 4},
	// ROL / ROR
	{0x2A, "ROL", "ACC", 2}, {0x26, "ROL", "ZP0", 5}, {0x36, "ROL", "ZPX", 6},
	{0x2E, "ROL", "ABS", 6}, {0x3E, "ROL", "ABX", 7},
	{0x6A, "ROR", "ACC", 2}, {0x66, "ROR", "ZP0", 5}, {0x76, "ROR", "ZPX", 6},
	{0x6E, "ROR", "ABS", 6}, {0x7E, "ROR", "ABX", 7},
	// RTI / RTS
	{0x40, "RTI", "IMP", 6}, {0x60, "RTS", "IMP", 6},
	// SBC
	{0xE9, "SBC", "IMM", 2}, {0xE5, "SBC", "ZP0", 3}, {0xF5, "SBC", "ZPX", 4},
	{0xED, "SBC", "ABS", 4}, {0xFD, "SBC", "ABX", 4}, {0xF9, "SBC", "ABY", 4},
	{0xE1, "SBC", "IZX", 6}, {0xF1, "SBC", "IZY", 5},
	// STA
	{0x85, "STA", "ZP0", 3}, {0x95, "STA", "ZPX", 4}, {0x8D, "STA", "ABS", 4},
	{0x9D, "STA", "ABX", 5}, {0x99, "STA", "ABY", 5}, {0x81, "STA", "IZX", 6},
	{0x91, "STA", "IZY", 6},
	// STX / STY
	{0x86, "STX", "ZP0", 3}, {0x96, "STX", "ZPY", 4}, {0x8E, "STX", "ABS", 4},
	{0x84, "STY", "ZP0", 3}, {0x94, "STY", "ZPX", 4}, {0x8C, "STY", "ABS", 4},
	// Register transfers
	{0xAA, "TAX", "IMP", 2}, {0xA8, "TAY", "IMP", 2}, {0xBA, "TSX", "IMP", 2},
	{0x8A, "TXA", "IMP", 2}, {0x9A, "TXS", "IMP", 2}, {0x98, "TYA", "IMP", 2},
}

func operateFor(name string) func(c *CPU) byte {
	switch name {
	case "ADC":
		return (*CPU).opADC
	case "AND":
		return (*CPU).opAND
	case "ASL":
		return (*CPU).opASL
	case "BCC":
		return (*CPU).opBCC
	case "BCS":
		return (*CPU).opBCS
	case "BEQ":
		return (*CPU).opBEQ
	case "BIT":
		return (*CPU).opBIT
	case "BMI":
		return (*CPU).opBMI
	case "BNE":
		return (*CPU).opBNE
	case "BPL":
		return (*CPU).opBPL
	case "BRK":
		return (*CPU).opBRK
	case "BVC":
		return (*CPU).opBVC
	case "BVS":
		return (*CPU).opBVS
	case "CLC":
		return (*CPU).opCLC
	case "CLD":
		return (*CPU).opCLD
	case "CLI":
		return (*CPU).opCLI
	case "CLV":
		return (*CPU).opCLV
	case "CMP":
		return (*CPU).opCMP
	case "CPX":
		return (*CPU).opCPX
	case "CPY":
		return (*CPU).opCPY
	case "DEC":
		return (*CPU).opDEC
	case "DEX":
		return (*CPU).opDEX
	case "DEY":
		return (*CPU).opDEY
	case "EOR":
		return (*CPU).opEOR
	case "INC":
		return (*CPU).opINC
	case "INX":
		return (*CPU).opINX
	case "INY":
		return (*CPU).opINY
	case "JMP":
		return (*CPU).opJMP
	case "JSR":
		return (*CPU).opJSR
	case "LDA":
		return (*CPU).opLDA
	case "LDX":
		return (*CPU).opLDX
	case "LDY":
		return (*CPU).opLDY
	case "LSR":
		return (*CPU).opLSR
	case "NOP":
		return (*CPU).opNOP
	case "ORA":
		return (*CPU).opORA
	case "PHA":
		return (*CPU).opPHA
	case "PHP":
		return (*CPU).opPHP
	case "PLA":
		return (*CPU).opPLA
	case "PLP":
		return (*CPU).opPLP
	case "ROL":
		return (*CPU).opROL
	case "ROR":
		return (*CPU).opROR
	case "RTI":
		return (*CPU).opRTI
	case "RTS":
		return (*CPU).opRTS
	case "SBC":
		return (*CPU).opSBC
	case "SEC":
		return (*CPU).opSEC
	case "SED":
		return (*CPU).opSED
	case "SEI":
		return (*CPU).opSEI
	case "STA":
		return (*CPU).opSTA
	case "STX":
		return (*CPU).opSTX
	case "STY":
		return (*CPU).opSTY
	case "TAX":
		return (*CPU).opTAX
	case "TAY":
		return (*CPU).opTAY
	case "TSX":
		return (*CPU).opTSX
	case "TXA":
		return (*CPU).opTXA
	case "TXS":
		return (*CPU).opTXS
	case "TYA":
		return (*CPU).opTYA
	default:
		return (*CPU).opNOP
	}
}

func addrModeFor(mode string) func(c *CPU) byte {
	switch mode {
	case "ACC":
		return (*CPU).amACC
	case "IMM":
		return (*CPU).amIMM
	case "ZP0":
		return (*CPU).amZP0
	case "ZPX":
		return (*CPU).amZPX
	case "ZPY":
		return (*CPU).amZPY
	case "ABS":
		return (*CPU).amABS
	case "ABX":
		return (*CPU).amABX
	case "ABY":
		return (*CPU).amABY
	case "REL":
		return (*CPU).amREL
	case "IND":
		return (*CPU).amIND
	case "IZX":
		return (*CPU).amIZX
	case "IZY":
		return (*CPU).amIZY
	default:
		return (*CPU).amIMP
	}
}

// buildLookupTable assembles the 256-entry opcode table: officialOpcodes
// override a default fill of NOP/IMP/2, matching the hardware fact that
// every byte value decodes to *something* even when undocumented.
func (c *CPU) buildLookupTable() [256]Instruction {
	var table [256]Instruction
	for i := range table {
		table[i] = Instruction{
			Name:         "NOP",
			Operate:      (*CPU).opNOP,
			AddrMode:     (*CPU).amIMP,
			AddrModeName: "IMP",
			Cycles:       2,
		}
	}
	for _, e := range officialOpcodes {
		table[e.opcode] = Instruction{
			Name:         e.name,
			Operate:      operateFor(e.name),
			AddrMode:     addrModeFor(e.mode),
			AddrModeName: e.mode,
			Cycles:       e.cycles,
		}
	}
	return table
}
