package web

import (
	"crypto/rand"
	"encoding/binary"
)

// Visitor is what the server remembers about one browser.
type Visitor struct {
	// Seed drives the placeholder colors so a reload shows the same board.
	Seed    uint64
	Renders int
}

func NewVisitor() Visitor {
	return Visitor{Seed: newSeed()}
}

func newSeed() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
