package render

import (
	"image/color"
	"math/rand/v2"
)

// Placeholder supplies fill colors for board regions that have no model
// behind them yet (hands, chat, quest timer).
type Placeholder interface {
	Next() color.RGBA
}

// RandomPalette yields a random opaque color per region. Two palettes
// built from the same seed yield the same sequence.
type RandomPalette struct {
	rng *rand.Rand
}

func NewRandomPalette(seed uint64) *RandomPalette {
	return &RandomPalette{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPalette) Next() color.RGBA {
	n := p.rng.Uint32()
	return color.RGBA{R: uint8(n), G: uint8(n >> 8), B: uint8(n >> 16), A: 255}
}

// FixedPalette paints every placeholder region with the same color.
type FixedPalette color.RGBA

func (p FixedPalette) Next() color.RGBA { return color.RGBA(p) }
