package ppu

import "testing"

type fakeCart struct {
	chr [0x2000]byte
}

func (f *fakeCart) PPURead(addr uint16) (byte, bool) {
	if addr <= 0x1FFF {
		return f.chr[addr], true
	}
	return 0, false
}

func (f *fakeCart) PPUWrite(addr uint16, data byte) bool {
	if addr <= 0x1FFF {
		f.chr[addr] = data
		return true
	}
	return false
}

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.Status |= StatusVBlank
	p.addrLatch = true

	v := p.CPURead(0x2002)
	if v&StatusVBlank == 0 {
		t.Fatalf("expected the read value to still report VBlank was set")
	}
	if p.Status&StatusVBlank != 0 {
		t.Fatalf("VBlank bit should clear as a side effect of reading $2002")
	}
	if p.addrLatch {
		t.Fatalf("address latch should reset to 0 after reading $2002")
	}
}

func TestPPUAddrTwoPhaseWrite(t *testing.T) {
	p := New()
	p.CPUWrite(0x2006, 0x3F) // high byte, masked to 6 bits
	p.CPUWrite(0x2006, 0x10) // low byte

	if p.vramAddr != 0x3F10 {
		t.Fatalf("vramAddr = %#04x, want 0x3F10", p.vramAddr)
	}
	if p.addrLatch {
		t.Fatalf("latch should be back to 0 after the second write")
	}
}

func TestPPUAddrHighByteMaskedTo6Bits(t *testing.T) {
	p := New()
	p.CPUWrite(0x2006, 0xFF)
	p.CPUWrite(0x2006, 0x00)
	if p.vramAddr != 0x3F00 {
		t.Fatalf("vramAddr = %#04x, want 0x3F00 (high byte masked to 6 bits)", p.vramAddr)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := New()
	p.CPUWrite(0x2006, 0x3F)
	p.CPUWrite(0x2006, 0x10)
	p.CPUWrite(0x2007, 0x22)

	if p.palette[0x00] != 0x22 {
		t.Fatalf("write to $3F10 should mirror to palette[0x00], got %#02x", p.palette[0x00])
	}
}

func TestDataPortPaletteReadIsUnbuffered(t *testing.T) {
	p := New()
	p.palette[0x05] = 0x2A

	p.CPUWrite(0x2006, 0x3F)
	p.CPUWrite(0x2006, 0x05)
	v := p.CPURead(0x2007)
	if v != 0x2A {
		t.Fatalf("palette read via $2007 should be immediate, got %#02x want 0x2A", v)
	}
}

func TestDataPortNonPaletteReadIsBuffered(t *testing.T) {
	p := New()
	cart := &fakeCart{}
	cart.chr[0x0010] = 0x99
	p.ConnectCartridge(cart)

	p.CPUWrite(0x2006, 0x00)
	p.CPUWrite(0x2006, 0x10)

	first := p.CPURead(0x2007)
	if first != 0 {
		t.Fatalf("first $2007 read should return the stale buffer (0), got %#02x", first)
	}
	second := p.CPURead(0x2007)
	if second != 0x99 {
		t.Fatalf("second $2007 read should return the buffered CHR byte, got %#02x", second)
	}
}

func TestPPUAddrIncrementsAfterDataPortAccess(t *testing.T) {
	p := New()
	p.CPUWrite(0x2006, 0x00)
	p.CPUWrite(0x2006, 0x10)
	before := p.vramAddr
	p.CPURead(0x2007)
	if p.vramAddr != before+1 {
		t.Fatalf("vramAddr after $2007 access = %#04x, want %#04x", p.vramAddr, before+1)
	}
}

func TestClockAdvancesDotAndScanline(t *testing.T) {
	p := New()
	for i := 0; i < 341; i++ {
		p.Clock()
	}
	if p.dot != 0 || p.scanline != 1 {
		t.Fatalf("after 341 clocks: dot=%d scanline=%d, want 0,1", p.dot, p.scanline)
	}
}

func TestFrameCompleteFiresOncePerFrame(t *testing.T) {
	p := New()
	for i := 0; i < 341*261; i++ {
		p.Clock()
	}
	if !p.FrameComplete() {
		t.Fatalf("expected frame_complete after 341*261 clocks")
	}
	if p.dot != 0 || p.scanline != 0 {
		t.Fatalf("dot=%d scanline=%d after full frame, want 0,0", p.dot, p.scanline)
	}
}

func TestVBlankSetsAndNMIFiresWhenEnabled(t *testing.T) {
	p := New()
	p.Ctrl |= CtrlEnableNMI

	// Clock through scanline 241, dot 1.
	for i := 0; i < 241*341+2; i++ {
		p.Clock()
	}
	if p.Status&StatusVBlank == 0 {
		t.Fatalf("expected VBlank flag set at scanline 241 dot 1")
	}
	if !p.TakeNMI() {
		t.Fatalf("expected a pending NMI edge when ENABLE_NMI is set")
	}
	if p.TakeNMI() {
		t.Fatalf("TakeNMI should clear the pending flag")
	}
}

func TestGetPatternTableProducesFullImage(t *testing.T) {
	p := New()
	cart := &fakeCart{}
	cart.chr[0] = 0xFF // first row of tile 0, LSB plane, all bits set
	p.ConnectCartridge(cart)

	img := p.GetPatternTable(0, 0)
	if len(img) != 128*128 {
		t.Fatalf("pattern table image length = %d, want %d", len(img), 128*128)
	}
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	p := New()
	p.palette[3] = 0x11
	p.vramAddr = 0x2ABC
	p.Status |= StatusVBlank

	snap := p.SaveState()

	p2 := New()
	p2.LoadState(snap)

	if p2.palette[3] != 0x11 || p2.vramAddr != 0x2ABC || p2.Status&StatusVBlank == 0 {
		t.Fatalf("state round trip lost fields: %+v", p2)
	}
}
