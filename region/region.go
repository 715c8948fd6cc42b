// Package region implements the Anvil region-file container: an 8 KiB
// header (a 4096-byte locations table plus a 4096-byte timestamps table)
// followed by up to 1024 independently-compressed chunk NBT payloads,
// sector-aligned to 4096 bytes.
package region

import (
	"errors"
	"fmt"

	"github.com/astei/nbtregion/cache"
	"github.com/astei/nbtregion/tag"
)

const (
	// ChunkCount is the fixed number of chunk slots a region file holds
	// (32x32 chunks).
	ChunkCount = 1024
	// SectorSize is the allocation granularity of a region file, in bytes.
	SectorSize = 4096
)

// Scheme identifies how a chunk payload is compressed.
type Scheme byte

const (
	SchemeGzip   Scheme = 1
	SchemeZlib   Scheme = 2
	SchemeNone   Scheme = 3
	SchemeLZ4    Scheme = 4   // recognized, refused
	SchemeCustom Scheme = 127 // recognized, refused
)

func (s Scheme) String() string {
	switch s {
	case SchemeGzip:
		return "gzip"
	case SchemeZlib:
		return "zlib"
	case SchemeNone:
		return "none"
	case SchemeLZ4:
		return "lz4"
	case SchemeCustom:
		return "custom"
	default:
		return fmt.Sprintf("unknown(%d)", byte(s))
	}
}

var (
	// ErrInvalidScheme is returned for a compression scheme byte this
	// format has never assigned meaning to.
	ErrInvalidScheme = errors.New("region: invalid compression scheme")
	// ErrUnsupported is returned for a compression scheme that is
	// recognized (LZ4, custom) but refused by this implementation.
	ErrUnsupported = errors.New("region: unsupported compression scheme")
	// ErrPayloadTooLarge is returned when a single chunk's padded size
	// would need more than 255 sectors to represent.
	ErrPayloadTooLarge = errors.New("region: chunk payload needs more than 255 sectors")
	// ErrChunkOverlap names two chunks whose sector ranges overlap.
	// Nothing in this package returns it: WriteRegion always appends
	// each chunk after the previous one, and ReadRegion does not check
	// sector ranges.
	ErrChunkOverlap = errors.New("region: chunk sector ranges overlap")
)

// ChunkSlot is one of the 1024 positions a region file indexes. A nil Tag
// means the chunk is absent — distinguishable from an actually-decoded
// compound tag, never conflated with it.
type ChunkSlot struct {
	Tag *tag.Tag
}

// Absent reports whether this slot has no chunk.
func (s ChunkSlot) Absent() bool { return s.Tag == nil }

// Region is a fully-read (or in-progress) Anvil region file: 1024 chunk
// slots, their modification timestamps, and the two region-lifetime
// caches the paletted-container decoder filled while decoding them.
type Region struct {
	Chunks     [ChunkCount]ChunkSlot
	Timestamps [ChunkCount]uint32
	Blocks     *cache.BlockCache
	Biomes     *cache.BiomeCache
}

func schemeError(s Scheme) error {
	switch s {
	case SchemeLZ4, SchemeCustom:
		return fmt.Errorf("%w: %s", ErrUnsupported, s)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidScheme, byte(s))
	}
}

func validWriteScheme(s Scheme) bool {
	return s == SchemeGzip || s == SchemeZlib || s == SchemeNone
}
