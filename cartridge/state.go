package cartridge

// State is a gob-encodable snapshot of the mutable part of a cartridge.
// Mapper 0 has no bank-select registers to save; the only thing that can
// diverge from the ROM image on disk is CHR-RAM content.
type State struct {
	CHRRAM []byte
}

// SaveState snapshots CHR-RAM, if the cartridge has any.
func (c *Cartridge) SaveState() State {
	if !c.IsCHRRAM {
		return State{}
	}
	chr := make([]byte, len(c.CHR))
	copy(chr, c.CHR)
	return State{CHRRAM: chr}
}

// LoadState restores CHR-RAM content saved by SaveState.
func (c *Cartridge) LoadState(s State) {
	if c.IsCHRRAM && len(s.CHRRAM) > 0 {
		copy(c.CHR, s.CHRRAM)
	}
}
