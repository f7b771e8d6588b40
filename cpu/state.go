package cpu

// State is a gob-encodable snapshot of everything Reset/Clock mutate,
// following the same shape as bus.State and ppu.State so the three can be
// saved and restored together.
type State struct {
	PC, AddrAbs, AddrRel            uint16
	SP, A, X, Y, P, Opcode, Fetched byte
	CyclesRemaining                 int
	NmiPending, IrqPending          bool
}

// SaveState snapshots the CPU's registers and in-flight instruction
// state.
func (c *CPU) SaveState() State {
	return State{
		PC:              c.PC,
		AddrAbs:         c.addrAbs,
		AddrRel:         c.addrRel,
		SP:              c.SP,
		A:               c.A,
		X:               c.X,
		Y:               c.Y,
		P:               c.P,
		Opcode:          c.opcode,
		Fetched:         c.fetched,
		CyclesRemaining: c.cyclesRemaining,
		NmiPending:      c.nmiPending,
		IrqPending:      c.irqPending,
	}
}

// LoadState restores a snapshot produced by SaveState.
func (c *CPU) LoadState(s State) {
	c.PC = s.PC
	c.addrAbs = s.AddrAbs
	c.addrRel = s.AddrRel
	c.SP = s.SP
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.P = s.P
	c.opcode = s.Opcode
	c.fetched = s.Fetched
	c.cyclesRemaining = s.CyclesRemaining
	c.nmiPending = s.NmiPending
	c.irqPending = s.IrqPending
}
