package cartridge

import (
	"errors"
	"os"
	"testing"
)

func buildROM(prgBanks, chrBanks int, mapperNibbleLo, mapperNibbleHi byte) []byte {
	header := make([]byte, 16)
	copy(header, []byte{'N', 'E', 'S', 0x1A})
	header[4] = byte(prgBanks)
	header[5] = byte(chrBanks)
	header[6] = mapperNibbleLo << 4
	header[7] = mapperNibbleHi & 0xF0

	data := append(header, make([]byte, prgBanks*prgBankSize)...)
	data = append(data, make([]byte, chrBanks*chrBankSize)...)
	return data
}

func TestLoadBytesMapper0(t *testing.T) {
	data := buildROM(2, 1, 0, 0)
	// stamp a marker byte so we can confirm PRG copied at the right offset
	data[16] = 0xAB

	cart, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(cart.PRG) != 2*prgBankSize {
		t.Fatalf("PRG size = %d, want %d", len(cart.PRG), 2*prgBankSize)
	}
	if len(cart.CHR) != 1*chrBankSize {
		t.Fatalf("CHR size = %d, want %d", len(cart.CHR), chrBankSize)
	}
	if cart.PRG[0] != 0xAB {
		t.Fatalf("PRG[0] = %#02x, want 0xAB", cart.PRG[0])
	}
	if cart.IsCHRRAM {
		t.Fatalf("expected CHR-ROM cartridge, got CHR-RAM")
	}
}

func TestLoadBytesRejectsBadMagic(t *testing.T) {
	data := buildROM(1, 1, 0, 0)
	data[0] = 'X'
	if _, err := LoadBytes(data); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestLoadBytesRejectsUnsupportedMapper(t *testing.T) {
	data := buildROM(1, 1, 1, 0) // mapper nibble low = 1 -> mapper ID 1 (MMC1)
	_, err := LoadBytes(data)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("expected ErrUnsupportedMapper, got %v", err)
	}
}

func TestLoadBytesAllocatesCHRRAMWhenAbsent(t *testing.T) {
	data := buildROM(1, 0, 0, 0)
	cart, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if !cart.IsCHRRAM {
		t.Fatalf("expected CHR-RAM cartridge when chr_banks == 0")
	}
	if len(cart.CHR) != chrBankSize {
		t.Fatalf("CHR-RAM size = %d, want %d", len(cart.CHR), chrBankSize)
	}
}

func TestLoadBytesSkipsTrainer(t *testing.T) {
	header := make([]byte, 16)
	copy(header, []byte{'N', 'E', 'S', 0x1A})
	header[4] = 1
	header[5] = 0
	header[6] = 0x04 // trainer present

	data := append(header, make([]byte, trainerSize)...)
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42
	data = append(data, prg...)

	cart, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cart.PRG[0] != 0x42 {
		t.Fatalf("trainer not skipped: PRG[0] = %#02x, want 0x42", cart.PRG[0])
	}
}

func TestLoad(t *testing.T) {
	data := buildROM(1, 1, 0, 0)
	tmp, err := os.CreateTemp(t.TempDir(), "test-*.nes")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.Write(data); err != nil {
		t.Fatal(err)
	}
	tmp.Close()

	cart, err := Load(tmp.Name())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cart.PRG) != prgBankSize {
		t.Fatalf("PRG size = %d, want %d", len(cart.PRG), prgBankSize)
	}
}

func TestCPUReadMirrorsSingleBank(t *testing.T) {
	cart, err := LoadBytes(buildROM(1, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	cart.PRG[0] = 0x11
	lo, hitLo := cart.CPURead(0x8000)
	hi, hitHi := cart.CPURead(0xC000)
	if !hitLo || !hitHi || lo != hi {
		t.Fatalf("single 16KB PRG bank should mirror into $C000: lo=%d(%v) hi=%d(%v)", lo, hitLo, hi, hitHi)
	}
}

func TestPPUReadPassesThroughToCHR(t *testing.T) {
	cart, err := LoadBytes(buildROM(1, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	cart.CHR[0x0123] = 0x77
	v, hit := cart.PPURead(0x0123)
	if !hit || v != 0x77 {
		t.Fatalf("PPURead(0x0123) = %d, %v; want 0x77, true", v, hit)
	}
}

func TestPPUWriteAllowedOnlyForCHRRAM(t *testing.T) {
	rom, err := LoadBytes(buildROM(1, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if rom.PPUWrite(0x0000, 0xFF) {
		t.Fatalf("PPUWrite should fail against CHR-ROM")
	}

	ram, err := LoadBytes(buildROM(1, 0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !ram.PPUWrite(0x0000, 0xFF) || ram.CHR[0] != 0xFF {
		t.Fatalf("PPUWrite should succeed against CHR-RAM")
	}
}

func TestStateRoundTripCHRRAM(t *testing.T) {
	cart, err := LoadBytes(buildROM(1, 0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	cart.CHR[10] = 0x55
	snap := cart.SaveState()

	cart.CHR[10] = 0
	cart.LoadState(snap)
	if cart.CHR[10] != 0x55 {
		t.Fatalf("CHR-RAM not restored from snapshot")
	}
}
