package region

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/astei/nbtregion/bytesio"
	"github.com/astei/nbtregion/cache"
	"github.com/astei/nbtregion/compress"
	"github.com/astei/nbtregion/tag"
)

type location struct {
	offsetSectors uint32
	sectorCount   uint8
}

// ReadRegion parses the 8 KiB header and decodes every present chunk's NBT
// compound. A chunk whose compression scheme is LZ4 or custom (refused)
// aborts the whole read with ErrUnsupported; absent chunks (location
// offset zero) are left as the zero ChunkSlot and do not affect the
// result of decoding any other chunk.
func ReadRegion(r io.ReadSeeker) (*Region, error) {
	locations, err := readLocations(r)
	if err != nil {
		return nil, err
	}
	timestamps, err := readTimestamps(r)
	if err != nil {
		return nil, err
	}

	region := &Region{
		Timestamps: timestamps,
		Blocks:     cache.NewBlockCache(),
		Biomes:     cache.NewBiomeCache(),
	}

	for i, loc := range locations {
		if loc.offsetSectors == 0 {
			continue
		}
		chunkTag, err := readChunkPayload(r, loc)
		if err != nil {
			return nil, fmt.Errorf("region: chunk %d: %w", i, err)
		}
		region.Chunks[i] = ChunkSlot{Tag: chunkTag}
	}
	return region, nil
}

func readLocations(r io.ReadSeeker) ([ChunkCount]location, error) {
	var out [ChunkCount]location
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return out, err
	}
	buf := make([]byte, SectorSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return out, wrapTruncated(err)
	}
	for i := range out {
		v := binary.BigEndian.Uint32(buf[i*4 : i*4+4])
		out[i] = location{offsetSectors: v >> 8, sectorCount: uint8(v)}
	}
	return out, nil
}

func readTimestamps(r io.ReadSeeker) ([ChunkCount]uint32, error) {
	var out [ChunkCount]uint32
	buf := make([]byte, SectorSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return out, wrapTruncated(err)
	}
	for i := range out {
		out[i] = binary.BigEndian.Uint32(buf[i*4 : i*4+4])
	}
	return out, nil
}

func readChunkPayload(r io.ReadSeeker, loc location) (*tag.Tag, error) {
	if _, err := r.Seek(int64(loc.offsetSectors)*SectorSize, io.SeekStart); err != nil {
		return nil, err
	}

	length, err := bytesio.ReadI32(r)
	if err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: chunk payload length %d", tag.ErrInvalid, length)
	}
	schemeByte, err := bytesio.ReadI8(r)
	if err != nil {
		return nil, err
	}
	scheme := Scheme(byte(schemeByte))

	compressed := io.LimitReader(r, int64(length)-1)

	switch scheme {
	case SchemeGzip:
		gz, err := compress.GzipReader(compressed)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return tag.Decode(gz)
	case SchemeZlib:
		zr, err := compress.ZlibReader(compressed)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return tag.Decode(zr)
	case SchemeNone:
		return tag.Decode(compressed)
	default:
		return nil, schemeError(scheme)
	}
}

func wrapTruncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return bytesio.ErrTruncated
	}
	return err
}
