package palette

import (
	"github.com/astei/nbtregion/cache"
	"github.com/astei/nbtregion/tag"
)

// DecodeBiomes decodes a section's biomes compound into BiomeCount (64)
// indices into biomes.
func DecodeBiomes(container *tag.Tag, biomes *cache.BiomeCache) ([BiomeCount]int, error) {
	var out [BiomeCount]int

	list, err := paletteList(container)
	if err != nil {
		return out, err
	}
	paletteLen := list.Len()

	names := make([]string, paletteLen)
	for i := 0; i < paletteLen; i++ {
		name, err := list.At(i).AsString()
		if err != nil {
			return out, err
		}
		names[i] = name
	}

	if paletteLen == 1 {
		idx := biomes.InsertOrLookup(names[0])
		for i := range out {
			out[i] = idx
		}
		return out, nil
	}

	data, hasData, err := dataLongArray(container)
	if err != nil {
		return out, err
	}
	if !hasData {
		return out, ErrMissingData
	}

	bitWidth := bitWidthBiomes(paletteLen)
	emit := func(i, k int) error {
		if k >= paletteLen {
			return outOfRange(k, paletteLen)
		}
		out[i] = biomes.InsertOrLookup(names[k])
		return nil
	}

	if paletteLen < 3 {
		// bitWidth <= 1: 64 single-bit slots pack exactly into one word,
		// so the non-straddling loop already never straddles here.
		err = unpackNonStraddling(data, bitWidth, BiomeCount, emit)
	} else {
		err = unpackStraddling(data, bitWidth, BiomeCount, emit)
	}
	if err != nil {
		return out, err
	}
	return out, nil
}
