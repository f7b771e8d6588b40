// Command nesview is a minimal ebiten host for the NES-Sharp core: it
// drives the bus one video frame per tick, blits the noise-placeholder
// framebuffer, and renders both CHR pattern tables alongside it. It owns
// no emulation state of its own, only presentation.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"github.com/LintfordPickle/NES-Sharp/bus"
	"github.com/LintfordPickle/NES-Sharp/cartridge"
)

const (
	screenWidth  = 256
	screenHeight = 240
	patternSize  = 128
	scale        = 2
)

type game struct {
	core *bus.Bus

	screenImg    *ebiten.Image
	patternLeft  *ebiten.Image
	patternRight *ebiten.Image

	romLoadChan chan string
	loadPending bool
}

func newGame(core *bus.Bus) *game {
	return &game{
		core:         core,
		screenImg:    ebiten.NewImage(screenWidth, screenHeight),
		patternLeft:  ebiten.NewImage(patternSize, patternSize),
		patternRight: ebiten.NewImage(patternSize, patternSize),
		romLoadChan:  make(chan string, 1),
	}
}

func (g *game) loadROM(path string) {
	cart, err := cartridge.Load(path)
	if err != nil {
		log.Printf("nesview: failed to load %s: %v", path, err)
		return
	}
	g.core.InsertCartridge(cart)
}

func (g *game) Update() error {
	select {
	case path := <-g.romLoadChan:
		g.loadROM(path)
		g.loadPending = false
	default:
	}

	if !g.loadPending && ebiten.IsKeyPressed(ebiten.KeyL) {
		g.loadPending = true
		go func() {
			path, err := dialog.File().Filter("iNES ROM", "nes").Load()
			if err != nil {
				log.Println(err)
				return
			}
			g.romLoadChan <- path
		}()
	}

	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.core.Reset()
	}

	g.core.StepPPUFrame()
	return nil
}

// argbToRGBA converts the core's 0xAARRGGBB framebuffer into the
// interleaved R,G,B,A byte order ebiten.Image.WritePixels expects.
func argbToRGBA(src []uint32, dst []byte) {
	for i, v := range src {
		dst[i*4+0] = byte(v >> 16)
		dst[i*4+1] = byte(v >> 8)
		dst[i*4+2] = byte(v)
		dst[i*4+3] = byte(v >> 24)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.core.PPU().Framebuffer()
	pix := make([]byte, len(fb)*4)
	argbToRGBA(fb, pix)
	g.screenImg.WritePixels(pix)

	left := g.core.PPU().GetPatternTable(0, 0)
	leftPix := make([]byte, len(left)*4)
	argbToRGBA(left, leftPix)
	g.patternLeft.WritePixels(leftPix)

	right := g.core.PPU().GetPatternTable(1, 0)
	rightPix := make([]byte, len(right)*4)
	argbToRGBA(right, rightPix)
	g.patternRight.WritePixels(rightPix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.screenImg, op)

	opLeft := &ebiten.DrawImageOptions{}
	opLeft.GeoM.Translate(0, screenHeight*scale)
	screen.DrawImage(g.patternLeft, opLeft)

	opRight := &ebiten.DrawImageOptions{}
	opRight.GeoM.Translate(patternSize, screenHeight*scale)
	screen.DrawImage(g.patternRight, opRight)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * scale, screenHeight*scale + patternSize
}

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM to load at startup")
	flag.Parse()

	core := bus.New()
	if *romPath != "" {
		cart, err := cartridge.Load(*romPath)
		if err != nil {
			log.Fatalf("nesview: failed to load %s: %v", *romPath, err)
		}
		core.InsertCartridge(cart)
	}

	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale+patternSize)
	ebiten.SetWindowTitle("NES-Sharp (L: load ROM, R: reset)")

	if err := ebiten.RunGame(newGame(core)); err != nil {
		log.Fatal(err)
	}
}
