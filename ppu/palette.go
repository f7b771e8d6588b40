package ppu

// paletteLUT is the fixed 64-entry NES master palette (NESTOPIA/blargg
// values), packed as 0xAARRGGBB. Alpha is always opaque; the ten entries
// the hardware can never actually output (0x0D/0E/0F, 0x1D/1E/1F,
// 0x2E/2F, 0x3E/3F) are pure black.
var paletteLUT = [64]uint32{
	0xFF666666, 0xFF002A88, 0xFF1412A7, 0xFF3B00A4,
	0xFF5C007E, 0xFF6E0040, 0xFF6C0600, 0xFF561D00,
	0xFF333500, 0xFF0B4800, 0xFF005200, 0xFF004F08,
	0xFF00404D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFADADAD, 0xFF155FD9, 0xFF4240FF, 0xFF7527FE,
	0xFFA01ACC, 0xFFB71E7B, 0xFFB53120, 0xFF994E00,
	0xFF6B6D00, 0xFF388700, 0xFF0C9300, 0xFF008F32,
	0xFF007C8D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFF64B0FF, 0xFF9290FF, 0xFFC676FF,
	0xFFF36AFF, 0xFFFE6ECC, 0xFFFE8170, 0xFFEA9E22,
	0xFFBCBE00, 0xFF88D800, 0xFF5CE430, 0xFF45E082,
	0xFF48CDDE, 0xFF4F4F4F, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFFC0DFFF, 0xFFD3D2FF, 0xFFE8C8FF,
	0xFFFBC2FF, 0xFFFEC4EA, 0xFFFECCC5, 0xFFF7D8A5,
	0xFFE4E594, 0xFFCFEF96, 0xFFBDF4AB, 0xFFB3F3CC,
	0xFFB5EBF2, 0xFFB8B8B8, 0xFF000000, 0xFF000000,
}

// GetPatternTable renders one of the two 4 KiB pattern tables (which is 0
// or 1) into a 128x128 pixel ARGB image, coloring 2-bit tile pixels
// through the given palette (0-7) via palette RAM and the master
// palette. Background pixel (color index 0) always renders black,
// matching the pattern-table debug view's usual convention.
func (p *PPU) GetPatternTable(which int, palette byte) []uint32 {
	img := make([]uint32, 128*128)

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := uint16(tileY*256 + tileX*16)
			for row := uint16(0); row < 8; row++ {
				lsb := p.ppuRead(uint16(which)*0x1000 + offset + row)
				msb := p.ppuRead(uint16(which)*0x1000 + offset + row + 8)

				for col := 0; col < 8; col++ {
					pixel := (lsb & 0x01) | ((msb & 0x01) << 1)
					lsb >>= 1
					msb >>= 1

					x := tileX*8 + (7 - col)
					y := tileY*8 + int(row)

					var c uint32
					if pixel == 0 {
						c = 0xFF000000
					} else {
						idx := p.ppuRead(0x3F00 + (uint16(palette)<<2+uint16(pixel))&0x3F)
						c = paletteLUT[idx]
					}
					img[y*128+x] = c
				}
			}
		}
	}
	return img
}
