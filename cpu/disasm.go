package cpu

import "fmt"

// Disassemble walks bus addresses [start, end) and renders one text line
// per instruction, keyed by the address the instruction starts at. The
// caller supplies a read function so the walk can go through a
// side-effect-free ("readonly") bus path instead of one that would, say,
// clear the PPU's vertical-blank flag on every $2002 it passes over.
func (c *CPU) Disassemble(start, end uint16, read func(addr uint16) byte) map[uint16]string {
	lines := make(map[uint16]string)
	addr := uint32(start)

	for addr < uint32(end) {
		lineAddr := uint16(addr)
		opcode := read(uint16(addr))
		addr++
		instr := c.lookup[opcode]

		line := fmt.Sprintf("%04X: %s ", lineAddr, instr.Name)

		switch instr.AddrModeName {
		case "IMP", "ACC":
			line += "(IMP)"
		case "IMM":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("#$%02X (IMM)", v)
		case "ZP0":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("$%02X (ZP0)", v)
		case "ZPX":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("$%02X, X (ZPX)", v)
		case "ZPY":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("$%02X, Y (ZPY)", v)
		case "IZX":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("($%02X, X) (IZX)", v)
		case "IZY":
			v := read(uint16(addr))
			addr++
			line += fmt.Sprintf("($%02X), Y (IZY)", v)
		case "ABS":
			lo := uint16(read(uint16(addr)))
			addr++
			hi := uint16(read(uint16(addr)))
			addr++
			line += fmt.Sprintf("$%04X (ABS)", hi<<8|lo)
		case "ABX":
			lo := uint16(read(uint16(addr)))
			addr++
			hi := uint16(read(uint16(addr)))
			addr++
			line += fmt.Sprintf("$%04X, X (ABX)", hi<<8|lo)
		case "ABY":
			lo := uint16(read(uint16(addr)))
			addr++
			hi := uint16(read(uint16(addr)))
			addr++
			line += fmt.Sprintf("$%04X, Y (ABY)", hi<<8|lo)
		case "IND":
			lo := uint16(read(uint16(addr)))
			addr++
			hi := uint16(read(uint16(addr)))
			addr++
			line += fmt.Sprintf("#$%04X (IND)", hi<<8|lo)
		case "REL":
			v := read(uint16(addr))
			addr++
			rel := uint16(v)
			if rel&0x80 != 0 {
				rel |= 0xFF00
			}
			target := uint16(addr) + rel
			line += fmt.Sprintf("$%02X [$%04X] (REL)", v, target)
		}

		lines[lineAddr] = line
	}

	return lines
}
