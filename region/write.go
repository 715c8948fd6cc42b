package region

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/astei/nbtregion/bytesio"
	"github.com/astei/nbtregion/compress"
	"github.com/astei/nbtregion/tag"
)

// WriteOptions configures WriteRegion.
type WriteOptions struct {
	// Scheme is the compression scheme applied to every written chunk.
	// Must be one of SchemeGzip, SchemeZlib, SchemeNone.
	Scheme Scheme
	// Timestamp supplies the modification timestamp recorded for chunk
	// index i. If nil, every chunk gets the wall-clock time WriteRegion
	// was called at.
	Timestamp func(i int) uint32
}

// DefaultWriteOptions returns zlib compression with wall-clock timestamps,
// matching this format's conventional defaults.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Scheme: SchemeZlib}
}

// WriteRegion rewrites the whole of w: a placeholder locations table, the
// timestamps table, then each present chunk's compressed payload in index
// order, padded to the next sector boundary, with the locations table
// back-patched once every chunk's true sector range is known. Chunks
// SHOULD be written in index order for determinism; this implementation
// always does.
func WriteRegion(w io.WriteSeeker, r *Region, opts WriteOptions) error {
	if opts.Scheme == 0 {
		opts.Scheme = SchemeZlib
	}
	if !validWriteScheme(opts.Scheme) {
		return schemeError(opts.Scheme)
	}
	if opts.Timestamp == nil {
		now := uint32(time.Now().Unix())
		opts.Timestamp = func(int) uint32 { return now }
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, SectorSize)); err != nil {
		return err
	}

	timestamps := make([]byte, SectorSize)
	for i := 0; i < ChunkCount; i++ {
		binary.BigEndian.PutUint32(timestamps[i*4:i*4+4], opts.Timestamp(i))
	}
	if _, err := w.Write(timestamps); err != nil {
		return err
	}

	var locations [ChunkCount]uint32
	for i, slot := range r.Chunks {
		if slot.Absent() {
			continue
		}
		entry, err := writeChunk(w, slot.Tag, opts.Scheme)
		if err != nil {
			return fmt.Errorf("region: chunk %d: %w", i, err)
		}
		locations[i] = entry
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	locBuf := make([]byte, SectorSize)
	for i, v := range locations {
		binary.BigEndian.PutUint32(locBuf[i*4:i*4+4], v)
	}
	_, err := w.Write(locBuf)
	return err
}

// writeChunk writes one chunk's length-prefixed, scheme-tagged, compressed
// payload starting at the sink's current position (which must be a sector
// boundary), pads to the next boundary, and returns the packed
// (offset_in_sectors<<8 | sector_count) locations-table entry.
func writeChunk(w io.WriteSeeker, t *tag.Tag, scheme Scheme) (uint32, error) {
	sectorStart, err := tell(w)
	if err != nil {
		return 0, err
	}
	if sectorStart%SectorSize != 0 {
		return 0, fmt.Errorf("region: writer not sector-aligned at offset %d", sectorStart)
	}

	if err := bytesio.WriteI32(w, 0); err != nil { // placeholder length
		return 0, err
	}
	schemeStart, err := tell(w)
	if err != nil {
		return 0, err
	}
	if err := bytesio.WriteI8(w, int8(scheme)); err != nil {
		return 0, err
	}

	if err := writeCompressed(w, t, scheme); err != nil {
		return 0, err
	}

	end, err := tell(w)
	if err != nil {
		return 0, err
	}
	length := uint32(end - schemeStart)

	paddedEnd := sectorStart + ceilToSector(end-sectorStart)
	if pad := paddedEnd - end; pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return 0, err
		}
	}

	sectorCount := (paddedEnd - sectorStart) / SectorSize
	if sectorCount > 255 {
		return 0, fmt.Errorf("%w: chunk needs %d sectors", ErrPayloadTooLarge, sectorCount)
	}

	if _, err := w.Seek(sectorStart, io.SeekStart); err != nil {
		return 0, err
	}
	if err := bytesio.WriteI32(w, int32(length)); err != nil {
		return 0, err
	}
	if _, err := w.Seek(paddedEnd, io.SeekStart); err != nil {
		return 0, err
	}

	sectorIndex := sectorStart / SectorSize
	return (uint32(sectorIndex) << 8) | uint32(sectorCount), nil
}

func writeCompressed(w io.Writer, t *tag.Tag, scheme Scheme) error {
	switch scheme {
	case SchemeGzip:
		gz := compress.GzipWriter(w)
		if err := tag.Encode(gz, t); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	case SchemeZlib:
		zw := compress.ZlibWriter(w)
		if err := tag.Encode(zw, t); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case SchemeNone:
		return tag.Encode(w, t)
	default:
		return schemeError(scheme)
	}
}

func tell(s io.Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

func ceilToSector(n int64) int64 {
	if n%SectorSize == 0 {
		return n
	}
	return n + (SectorSize - n%SectorSize)
}
