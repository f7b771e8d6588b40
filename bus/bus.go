// Package bus wires the CPU, PPU, and cartridge together behind a single
// shared address space and drives the master clock divider between them.
package bus

import (
	"github.com/LintfordPickle/NES-Sharp/cartridge"
	"github.com/LintfordPickle/NES-Sharp/cpu"
	"github.com/LintfordPickle/NES-Sharp/ppu"
)

// Bus, also referred to as the core, owns the 2 KiB of system RAM, the
// CPU, the PPU, and (once inserted) a cartridge. It is the single
// mutable owner every access routes through, so neither the CPU nor the
// PPU ever needs a back-pointer to it.
type Bus struct {
	ram [2048]byte

	cpu *cpu.CPU
	ppu *ppu.PPU

	cart *cartridge.Cartridge

	systemClock int

	// resetVecLo/Hi back $FFFC/$FFFD when no cartridge is inserted, so
	// the core can still be reset and stepped for bring-up and testing
	// before a ROM is loaded.
	resetVecLo, resetVecHi byte
}

// New builds a Bus with no cartridge inserted.
func New() *Bus {
	b := &Bus{
		cpu: cpu.New(),
		ppu: ppu.New(),
	}
	b.cpu.ConnectBus(b)
	return b
}

// CPU exposes the CPU for register/flag/disassembly inspection.
func (b *Bus) CPU() *cpu.CPU { return b.cpu }

// PPU exposes the PPU for framebuffer and pattern-table inspection.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// SystemClock returns the number of master ticks clocked since reset.
func (b *Bus) SystemClock() int { return b.systemClock }

// InsertCartridge connects a cartridge to both the CPU-side bus and the
// PPU's internal bus, then resets the core so the reset vector and
// initial disassembly reflect the freshly inserted ROM.
func (b *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.ppu.ConnectCartridge(cart)
	b.Reset()
}

// Reset zeroes the master clock and resets the CPU and PPU. If no
// cartridge is inserted, it also plants a synthetic reset vector
// pointing at $8000 so the core is still steppable without a ROM.
func (b *Bus) Reset() {
	if b.cart == nil {
		b.resetVecLo, b.resetVecHi = 0x00, 0x80
	}
	b.systemClock = 0
	b.cpu.Reset()
	b.ppu.Reset()
}

// Clock advances the master clock by one tick: the PPU is clocked every
// tick, the CPU every third. When the PPU raises an NMI edge (entering
// VBlank with NMI enabled) it is forwarded to the CPU on the same tick.
func (b *Bus) Clock() {
	b.ppu.Clock()
	if b.systemClock%3 == 0 {
		b.cpu.Clock()
	}
	if b.ppu.TakeNMI() {
		b.cpu.NMI()
	}
	b.systemClock++
}

// StepCPUInstruction clocks the core until any in-flight instruction
// finishes, then clocks through exactly one full instruction.
func (b *Bus) StepCPUInstruction() {
	for !b.cpu.CycleComplete() {
		b.Clock()
	}
	for b.cpu.CycleComplete() {
		b.Clock()
	}
	for !b.cpu.CycleComplete() {
		b.Clock()
	}
}

// StepPPUFrame clocks the core until the PPU completes a frame, finishes
// whatever CPU instruction was in flight at that instant, then clears
// the frame-complete latch.
func (b *Bus) StepPPUFrame() {
	for !b.ppu.FrameComplete() {
		b.Clock()
	}
	for !b.cpu.CycleComplete() {
		b.Clock()
	}
	b.ppu.ClearFrameComplete()
}

// Read implements cpu.Bus: the cartridge is consulted first on every
// access, ahead of RAM and the PPU register window, so a future mapper
// could intercept any range.
func (b *Bus) Read(addr uint16) byte {
	if b.cart != nil {
		if v, hit := b.cart.CPURead(addr); hit {
			return v
		}
	}
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.ppu.CPURead(addr)
	case addr <= 0x4017:
		return 0 // APU/IO stub
	default:
		return b.readOpenRange(addr)
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, data byte) {
	if b.cart != nil {
		if b.cart.CPUWrite(addr, data) {
			return
		}
	}
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data
	case addr <= 0x3FFF:
		b.ppu.CPUWrite(addr, data)
	case addr <= 0x4017:
		// APU/IO stub: writes ignored.
	default:
		b.writeOpenRange(addr, data)
	}
}

func (b *Bus) readOpenRange(addr uint16) byte {
	if b.cart == nil {
		switch addr {
		case 0xFFFC:
			return b.resetVecLo
		case 0xFFFD:
			return b.resetVecHi
		}
	}
	return 0
}

func (b *Bus) writeOpenRange(addr uint16, data byte) {
	if b.cart == nil {
		switch addr {
		case 0xFFFC:
			b.resetVecLo = data
		case 0xFFFD:
			b.resetVecHi = data
		}
	}
}

// CPURead is the debugger-facing read used while walking a disassembly:
// readonly promises the call will not mutate observable state, which
// matters for the PPU's $2002/$2007 side effects.
func (b *Bus) CPURead(addr uint16, readonly bool) byte {
	if !readonly {
		return b.Read(addr)
	}
	if b.cart != nil {
		if v, hit := b.cart.CPURead(addr); hit {
			return v
		}
	}
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.ppu.Peek(addr)
	case addr <= 0x4017:
		return 0
	default:
		return b.readOpenRange(addr)
	}
}

// CPUWrite is the debugger-facing write counterpart to CPURead.
func (b *Bus) CPUWrite(addr uint16, data byte) {
	b.Write(addr, data)
}

// Disassemble renders the instruction stream in [start, end) through the
// readonly CPU-read path, so walking it never disturbs PPU register
// state.
func (b *Bus) Disassemble(start, end uint16) map[uint16]string {
	return b.cpu.Disassemble(start, end, func(addr uint16) byte {
		return b.CPURead(addr, true)
	})
}
