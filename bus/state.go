package bus

import (
	"encoding/gob"
	"os"

	"github.com/LintfordPickle/NES-Sharp/cartridge"
	"github.com/LintfordPickle/NES-Sharp/cpu"
	"github.com/LintfordPickle/NES-Sharp/ppu"
)

// State is a gob-encodable snapshot of the entire core: RAM, the master
// clock, and every component's own State.
type State struct {
	RAM          [2048]byte
	SystemClocks int
	CPU          cpu.State
	PPU          ppu.State
	Cartridge    cartridge.State
}

// SaveState writes a full core snapshot to filename.
func (b *Bus) SaveState(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	s := State{
		RAM:          b.ram,
		SystemClocks: b.systemClock,
		CPU:          b.cpu.SaveState(),
		PPU:          b.ppu.SaveState(),
	}
	if b.cart != nil {
		s.Cartridge = b.cart.SaveState()
	}

	return gob.NewEncoder(file).Encode(s)
}

// LoadState restores a snapshot written by SaveState. The cartridge
// itself is not re-created from the snapshot — the host is expected to
// have already inserted the same ROM; only that cartridge's CHR-RAM
// content is restored onto it.
func (b *Bus) LoadState(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return err
	}

	b.ram = s.RAM
	b.systemClock = s.SystemClocks
	b.cpu.LoadState(s.CPU)
	b.ppu.LoadState(s.PPU)
	if b.cart != nil {
		b.cart.LoadState(s.Cartridge)
	}

	return nil
}
