package palette

// unpackNonStraddling extracts exactly n indices of bitWidth bits each from
// data, never letting an index cross a u64 boundary: each word yields
// floor(64/bitWidth) indices and any leftover low bits are discarded
// before moving to the next word. Used by blocks unconditionally, and by
// biomes when paletteLen < 3 (bitWidth <= 1).
func unpackNonStraddling(data []int64, bitWidth int, n int, emit func(idx, k int) error) error {
	mask := uint64(1<<uint(bitWidth)) - 1
	perWord := 64 / bitWidth

	idx := 0
	word := 0
	for idx < n {
		if word >= len(data) {
			return errShortData(idx, n)
		}
		w := uint64(data[word])
		for i := 0; i < perWord && idx < n; i++ {
			k := int((w >> uint(i*bitWidth)) & mask)
			if err := emit(idx, k); err != nil {
				return err
			}
			idx++
		}
		word++
	}
	return nil
}

// unpackStraddling extracts n indices of bitWidth bits each from data,
// allowing an index to straddle a u64 word boundary: when the current
// word is exhausted with fewer than bitWidth bits left, the remaining low
// bits are kept, the next word is read, and the top bits of the index are
// taken from its low end: (highBits << lowLen) | lowBits. Extraction then
// continues from the remainder of the new word. Used by biomes when
// paletteLen >= 3.
func unpackStraddling(data []int64, bitWidth int, n int, emit func(idx, k int) error) error {
	mask := uint64(1<<uint(bitWidth)) - 1

	idx := 0
	wordPos := 0
	var word uint64
	bitsAvail := 0
	for idx < n {
		if bitsAvail == 0 {
			if wordPos >= len(data) {
				return errShortData(idx, n)
			}
			word = uint64(data[wordPos])
			wordPos++
			bitsAvail = 64
		}

		if bitsAvail >= bitWidth {
			k := int(word & mask)
			word >>= uint(bitWidth)
			bitsAvail -= bitWidth
			if err := emit(idx, k); err != nil {
				return err
			}
			idx++
			continue
		}

		lowLen := bitsAvail
		lowBits := word & (uint64(1<<uint(lowLen)) - 1)
		if wordPos >= len(data) {
			return errShortData(idx, n)
		}
		next := uint64(data[wordPos])
		wordPos++

		highLen := bitWidth - lowLen
		highMask := uint64(1<<uint(highLen)) - 1
		highBits := next & highMask

		k := int((highBits << uint(lowLen)) | lowBits)
		if err := emit(idx, k); err != nil {
			return err
		}
		idx++

		word = next >> uint(highLen)
		bitsAvail = 64 - highLen
	}
	return nil
}
