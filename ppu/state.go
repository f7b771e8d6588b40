package ppu

// State is a gob-encodable snapshot of everything except the noise
// framebuffer, which carries no information worth persisting across a
// save since it's re-sampled from an RNG on the very next Clock.
type State struct {
	Nametable          [2][1024]byte
	Pattern            [2][4096]byte
	Palette            [32]byte
	Ctrl, Mask, Status byte
	OAMAddr, OAMData   byte
	AddrLatch          bool
	VRAMAddr           uint16
	DataBuffer         byte
	Dot, Scanline      int
	FrameComplete      bool
	NMIPending         bool
}

func (p *PPU) SaveState() State {
	return State{
		Nametable:     p.nametable,
		Pattern:       p.pattern,
		Palette:       p.palette,
		Ctrl:          p.Ctrl,
		Mask:          p.Mask,
		Status:        p.Status,
		OAMAddr:       p.oamAddr,
		OAMData:       p.oamData,
		AddrLatch:     p.addrLatch,
		VRAMAddr:      p.vramAddr,
		DataBuffer:    p.dataBuffer,
		Dot:           p.dot,
		Scanline:      p.scanline,
		FrameComplete: p.frameComplete,
		NMIPending:    p.nmiPending,
	}
}

func (p *PPU) LoadState(s State) {
	p.nametable = s.Nametable
	p.pattern = s.Pattern
	p.palette = s.Palette
	p.Ctrl = s.Ctrl
	p.Mask = s.Mask
	p.Status = s.Status
	p.oamAddr = s.OAMAddr
	p.oamData = s.OAMData
	p.addrLatch = s.AddrLatch
	p.vramAddr = s.VRAMAddr
	p.dataBuffer = s.DataBuffer
	p.dot = s.Dot
	p.scanline = s.Scanline
	p.frameComplete = s.FrameComplete
	p.nmiPending = s.NMIPending
}
