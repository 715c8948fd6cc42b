package palette

import (
	"github.com/astei/nbtregion/cache"
	"github.com/astei/nbtregion/tag"
)

// DecodeBlocks decodes a section's block_states compound into BlockCount
// (4096) indices into blocks, deduplicating palette entries as they're
// first seen.
func DecodeBlocks(container *tag.Tag, blocks *cache.BlockCache) ([BlockCount]int, error) {
	var out [BlockCount]int

	list, err := paletteList(container)
	if err != nil {
		return out, err
	}
	paletteLen := list.Len()

	entries := make([]cache.BlockProperties, paletteLen)
	for i := 0; i < paletteLen; i++ {
		entry, err := blockPropertiesFromTag(list.At(i))
		if err != nil {
			return out, err
		}
		entries[i] = entry
	}

	if paletteLen == 1 {
		idx := blocks.InsertOrLookup(entries[0])
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

	bitWidth := bitWidthBlocks(paletteLen)
	emit := func(i, k int) error {
		if k >= paletteLen {
			return outOfRange(k, paletteLen)
		}
		out[i] = blocks.InsertOrLookup(entries[k])
		return nil
	}
	if err := unpackNonStraddling(data, bitWidth, BlockCount, emit); err != nil {
		return out, err
	}
	return out, nil
}

func blockPropertiesFromTag(entryTag *tag.Tag) (cache.BlockProperties, error) {
	entry, err := entryTag.AsCompound()
	if err != nil {
		return cache.BlockProperties{}, err
	}
	nameTag, err := entry.Get("Name")
	if err != nil {
		return cache.BlockProperties{}, err
	}
	name, err := nameTag.AsString()
	if err != nil {
		return cache.BlockProperties{}, err
	}

	var props []cache.KV
	if entry.Contains("Properties") {
		propsTag, _ := entry.Get("Properties")
		propsComp, err := propsTag.AsCompound()
		if err != nil {
			return cache.BlockProperties{}, err
		}
		for _, child := range propsComp.Children() {
			v, err := child.AsString()
			if err != nil {
				return cache.BlockProperties{}, err
			}
			props = append(props, cache.KV{Key: child.Name, Value: v})
		}
	}

	return cache.BlockProperties{Name: name, Properties: props}, nil
}
