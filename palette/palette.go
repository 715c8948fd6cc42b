// Package palette implements the paletted-container bit-unpacking
// algorithm: the decode step that turns a section's block_states or
// biomes compound (a palette list plus an optional packed LongArray) into
// a dense array of indices into a region-scoped cache.
//
// Block and biome packing share a bit-width formula shape but differ in
// whether indices may straddle a u64 word boundary. Those two extraction
// loops are kept separate (see unpackNonStraddling / unpackStraddling)
// rather than folded into one branchy loop, per the format's own history:
// blocks moved to non-straddling packing in 1.16, biomes never did.
package palette

import (
	"errors"
	"fmt"

	"github.com/astei/nbtregion/tag"
)

const (
	// BlockCount is the number of block entries in a 16x16x16 section.
	BlockCount = 4096
	// BiomeCount is the number of biome entries in a 16x16x16 section
	// (biomes are sampled on a 4x4x4 grid, 64 cells).
	BiomeCount = 64
)

// ErrPaletteOutOfRange is returned when a packed index is >= the palette
// length it indexes into.
var ErrPaletteOutOfRange = errors.New("palette: packed index exceeds palette size")

// ErrMissingData is returned when a palette has more than one entry but
// the container has no "data" LongArray to unpack.
var ErrMissingData = errors.New("palette: packed container has no data array")

// bitWidthBlocks computes the block bit width: max(4, ceil(log2(paletteLen))),
// via explicit shifts rather than floating-point log/pow.
func bitWidthBlocks(paletteLen int) int {
	b := bitWidthCeilLog2(paletteLen)
	if b < 4 {
		b = 4
	}
	return b
}

// bitWidthBiomes computes the biome bit width: ceil(log2(paletteLen)), with
// no floor.
func bitWidthBiomes(paletteLen int) int {
	return bitWidthCeilLog2(paletteLen)
}

func bitWidthCeilLog2(n int) int {
	b := 0
	for (1 << uint(b)) < n {
		b++
	}
	return b
}

func paletteList(container *tag.Tag) (*tag.List, error) {
	comp, err := container.AsCompound()
	if err != nil {
		return nil, err
	}
	paletteTag, err := comp.Get("palette")
	if err != nil {
		return nil, err
	}
	return paletteTag.AsList()
}

func dataLongArray(container *tag.Tag) ([]int64, bool, error) {
	comp, err := container.AsCompound()
	if err != nil {
		return nil, false, err
	}
	if !comp.Contains("data") {
		return nil, false, nil
	}
	dataTag, _ := comp.Get("data")
	arr, err := dataTag.AsLongArray()
	if err != nil {
		return nil, false, err
	}
	return arr, true, nil
}

func outOfRange(k, paletteLen int) error {
	return fmt.Errorf("%w: index %d >= palette length %d", ErrPaletteOutOfRange, k, paletteLen)
}

// ErrShortData is returned when data runs out before the required count
// of indices has been unpacked.
var ErrShortData = errors.New("palette: data array too short for output count")

func errShortData(produced, want int) error {
	return fmt.Errorf("%w: produced %d of %d", ErrShortData, produced, want)
}
