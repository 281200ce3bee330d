package silo

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/TheBitDrifter/bark"
)

// chunk is a fixed-size byte block holding column-major storage for a
// contiguous run of rows of one archetype, per spec.md §3. Rather than the
// original's raw interior pointers into the byte buffer, every column is
// addressed by a byte offset into buf (spec.md §9's reimplementation
// note), computed once in newChunk.
type chunk struct {
	archetype Archetype
	size      int
	capacity  int
	buf       []byte

	indexOff int       // offset of the row -> entity-map-index column (uint16 each)
	idOff    int        // offset of the row -> EntityID column (uint32 each)
	compOff  [maxComponents]int // offset of each present component's column, -1 if absent
}

const (
	indexElemSize = 2 // uint16
	idElemSize    = 4 // uint32 EntityID
)

// capacityFor computes, without allocating a chunk, how many rows of
// archetype fit in one ChunkSize-byte chunk. header_overhead reserves
// alignment padding for each column boundary (spec.md §3's capacity
// formula), since Go chunks keep no interior pointers and so need no
// per-pointer overhead, but do need alignment slack per column.
func (s *Store) capacityFor(archetype Archetype) int {
	rowStride := indexElemSize + idElemSize
	numPresent := 0
	for id := ComponentID(0); int(id) < s.roster.count; id++ {
		if archetype.has(id) {
			rowStride += s.roster.sizes[id]
			numPresent++
		}
	}
	headerOverhead := 8 * (2 + numPresent)
	if int(s.cfg.ChunkSize) <= headerOverhead {
		return 0
	}
	return (int(s.cfg.ChunkSize) - headerOverhead) / rowStride
}

// newChunk allocates and lays out a chunk for archetype. Capacity is
// derived once, per spec.md §3: floor((ChunkSize - overhead) / rowStride).
func (s *Store) newChunk(archetype Archetype) chunk {
	capacity := s.capacityFor(archetype)

	c := chunk{archetype: archetype, capacity: capacity, buf: make([]byte, s.cfg.ChunkSize)}
	for i := range c.compOff {
		c.compOff[i] = -1
	}

	off := 0
	c.indexOff = off
	off += capacity * indexElemSize

	off = alignUp(off, idElemSize)
	c.idOff = off
	off += capacity * idElemSize

	for id := ComponentID(0); int(id) < s.roster.count; id++ {
		if !archetype.has(id) {
			continue
		}
		off = alignUp(off, s.roster.aligns[id])
		c.compOff[id] = off
		off += capacity * s.roster.sizes[id]
	}

	if off > len(c.buf) {
		// capacityFor's headerOverhead is a conservative reservation for
		// alignment slack; if it's ever insufficient that's a bug in the
		// overhead math, not a reachable runtime condition.
		err := fmt.Errorf("silo: chunk layout for archetype %#x overflowed its %d-byte buffer by %d bytes",
			archetype, len(c.buf), off-len(c.buf))
		panic(bark.AddTrace(err))
	}
	return c
}

func (c *chunk) indexAt(row int) uint16 {
	return binary.LittleEndian.Uint16(c.buf[c.indexOff+row*indexElemSize:])
}

func (c *chunk) setIndexAt(row int, v uint16) {
	binary.LittleEndian.PutUint16(c.buf[c.indexOff+row*indexElemSize:], v)
}

func (c *chunk) idAt(row int) EntityID {
	return EntityID(binary.LittleEndian.Uint32(c.buf[c.idOff+row*idElemSize:]))
}

func (c *chunk) setIDAt(row int, id EntityID) {
	binary.LittleEndian.PutUint32(c.buf[c.idOff+row*idElemSize:], uint32(id))
}

// idSlice exposes the chunk's live id column as a read-only slice, for
// SubView.IDs and example/demo code (spec.md's "readId").
func (c *chunk) idSlice() []EntityID {
	if c.size == 0 {
		return nil
	}
	ptr := (*EntityID)(unsafe.Pointer(&c.buf[c.idOff]))
	return unsafe.Slice(ptr, c.size)[:c.size:c.size]
}

// copyComponent copies component id's bytes for one row from src to dst.
// Both chunks must have the component present (caller-checked).
func copyComponent(dst *chunk, dstRow int, src *chunk, srcRow int, id ComponentID, size int) {
	dOff := dst.compOff[id] + dstRow*size
	sOff := src.compOff[id] + srcRow*size
	copy(dst.buf[dOff:dOff+size], src.buf[sOff:sOff+size])
}

// copyRowWithin copies component id's bytes from one row to another within
// the same chunk, used by swap-remove compaction.
func copyRowWithin(c *chunk, dstRow, srcRow int, size int, off int) {
	dOff := off + dstRow*size
	sOff := off + srcRow*size
	copy(c.buf[dOff:dOff+size], c.buf[sOff:sOff+size])
}

// componentColumn returns the typed, size-c.size slice backing component id
// for T in this chunk. Callers (SubView readers/writers) are responsible
// for requesting a T that matches the ComponentID's registered type.
func componentColumn[T any](c *chunk, id ComponentID) []T {
	if c.size == 0 {
		return nil
	}
	off := c.compOff[id]
	ptr := (*T)(unsafe.Pointer(&c.buf[off]))
	return unsafe.Slice(ptr, c.size)[:c.size:c.size]
}

// setComponent writes a single component value at row, used by the
// AddComponentN family when inserting or overwriting a row.
func setComponent[T any](c *chunk, id ComponentID, row int, v T) {
	off := c.compOff[id] + row*int(unsafe.Sizeof(v))
	*(*T)(unsafe.Pointer(&c.buf[off])) = v
}
