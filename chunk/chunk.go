// Package chunk reifies a chunk's NBT tag into per-section arrays of
// block and biome indices, driving the palette package's bit-unpacking
// over each section in turn.
package chunk

import (
	"fmt"

	"github.com/astei/nbtregion/cache"
	"github.com/astei/nbtregion/palette"
	"github.com/astei/nbtregion/tag"
)

// SectionBlocks holds one section's dense block and biome index arrays.
type SectionBlocks struct {
	Blocks [palette.BlockCount]int
	Biomes [palette.BiomeCount]int
}

// Blocks is the decoded result for one chunk: sections keyed by their Y
// coordinate, not by position in the sections list — sparse worlds can
// and do skip Y values, and indexing by loop position would silently
// collide or misplace sections in that case.
type Blocks struct {
	Sections map[int8]SectionBlocks
}

// fullStatuses are the chunk Status values this decoder treats as fully
// generated. Anything else (e.g. "minecraft:full" predecessors like
// "carved", "liquid_carved", "structure_starts") is left unwalked: its
// section data may not be in final form yet.
var fullStatuses = map[string]bool{
	"minecraft:full": true,
	"full":           true,
}

// Decode walks root's sections list and decodes each section's
// block_states and biomes paletted containers. If root's Status is not a
// "full" status, Sections is returned empty rather than partially walked.
func Decode(root *tag.Tag, blocks *cache.BlockCache, biomes *cache.BiomeCache) (*Blocks, error) {
	comp, err := root.AsCompound()
	if err != nil {
		return nil, err
	}

	statusTag, err := comp.Get("Status")
	if err != nil {
		return nil, err
	}
	status, err := statusTag.AsString()
	if err != nil {
		return nil, err
	}
	if !fullStatuses[status] {
		return &Blocks{Sections: map[int8]SectionBlocks{}}, nil
	}

	sectionsTag, err := comp.Get("sections")
	if err != nil {
		return nil, err
	}
	sectionsList, err := sectionsTag.AsList()
	if err != nil {
		return nil, err
	}

	result := &Blocks{Sections: make(map[int8]SectionBlocks, sectionsList.Len())}
	for i := 0; i < sectionsList.Len(); i++ {
		sectionComp, err := sectionsList.At(i).AsCompound()
		if err != nil {
			return nil, fmt.Errorf("chunk: section %d: %w", i, err)
		}

		yTag, err := sectionComp.Get("Y")
		if err != nil {
			return nil, fmt.Errorf("chunk: section %d: %w", i, err)
		}
		y, err := yTag.AsByte()
		if err != nil {
			return nil, fmt.Errorf("chunk: section %d: %w", i, err)
		}

		var sec SectionBlocks
		if sectionComp.Contains("block_states") {
			bsTag, _ := sectionComp.Get("block_states")
			sec.Blocks, err = palette.DecodeBlocks(bsTag, blocks)
			if err != nil {
				return nil, fmt.Errorf("chunk: section Y=%d: block_states: %w", y, err)
			}
		}
		if sectionComp.Contains("biomes") {
			bTag, _ := sectionComp.Get("biomes")
			sec.Biomes, err = palette.DecodeBiomes(bTag, biomes)
			if err != nil {
				return nil, fmt.Errorf("chunk: section Y=%d: biomes: %w", y, err)
			}
		}
		result.Sections[y] = sec
	}
	return result, nil
}
