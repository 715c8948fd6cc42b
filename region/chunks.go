package region

import (
	"fmt"

	"github.com/astei/nbtregion/chunk"
)

// DecodeChunkBlocks reifies chunk index i's sections into dense block and
// biome index arrays, using (and growing) the region's shared caches. It
// returns nil, nil for an absent chunk.
func (r *Region) DecodeChunkBlocks(i int) (*chunk.Blocks, error) {
	slot := r.Chunks[i]
	if slot.Absent() {
		return nil, nil
	}
	blocks, err := chunk.Decode(slot.Tag, r.Blocks, r.Biomes)
	if err != nil {
		return nil, fmt.Errorf("region: chunk %d: %w", i, err)
	}
	return blocks, nil
}
