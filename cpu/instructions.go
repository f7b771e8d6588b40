package cpu

// Instruction describes one entry of the 256-slot opcode table: its
// mnemonic, the addressing-mode and operate functions that implement it,
// and the base cycle count charged before any page-cross bonus.
//
// Both AddrMode and Operate return 1 when they are willing to contribute
// an extra cycle for a page boundary crossing; Clock only actually charges
// that cycle when both functions agree (extraAddr & extraOp), matching
// the hardware's "only certain opcodes in certain addressing modes get
// the bonus cycle" behavior.
type Instruction struct {
	Name         string
	Operate      func(c *CPU) byte
	AddrMode     func(c *CPU) byte
	AddrModeName string
	Cycles       int
}
