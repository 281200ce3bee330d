package silo

import "math"

// EntityID is an opaque, non-zero entity handle. Zero is reserved as
// "empty slot"; a dedicated sentinel is reserved as "tombstone". Handles
// are generated by a monotonically increasing counter starting at 1.
type EntityID uint32

const (
	emptySlot EntityID = 0
	tombstone EntityID = math.MaxUint32
)

// entityPosition locates a live entity's row: which archetype-map slot it
// lives in, and which row within that slot's chunk.
type entityPosition struct {
	slot int
	row  int
}

// findEntityMapIndex implements spec.md §4.1's lookup probe: linear from
// id%P_E, matching on exact handle, stopping at the first empty or
// tombstoned slot (both terminate a lookup).
func (s *Store) findEntityMapIndex(id EntityID) (int, error) {
	capE := len(s.entityIDs)
	i := int(id) % capE
	unvisited := capE
	for unvisited > 0 {
		if s.entityIDs[i] == id {
			return i, nil
		}
		if s.entityIDs[i] == emptySlot || s.entityIDs[i] == tombstone {
			break
		}
		i = (i + 1) % capE
		unvisited--
	}
	return 0, ErrNotFound
}

// findAvailableEntityMapIndex implements spec.md §4.1's insert-or-find
// probe: like findEntityMapIndex, but a tombstone is not a terminator —
// it's remembered as an insertion fallback, and the walk continues past
// it looking for either the handle (already present further along) or an
// empty slot, at which point compaction returns the remembered tombstone.
func (s *Store) findAvailableEntityMapIndex(id EntityID) (int, error) {
	capE := len(s.entityIDs)
	i := int(id) % capE
	unvisited := capE
	for unvisited > 0 {
		if s.entityIDs[i] == id || s.entityIDs[i] == emptySlot {
			return i, nil
		}
		if s.entityIDs[i] == tombstone {
			break
		}
		i = (i + 1) % capE
		unvisited--
	}
	if unvisited == 0 {
		return 0, ErrOutOfSpace
	}

	firstDirty := i
	i = (i + 1) % capE
	unvisited--
	for unvisited > 0 {
		if s.entityIDs[i] == id {
			return i, nil
		}
		if s.entityIDs[i] == emptySlot {
			break
		}
		i = (i + 1) % capE
		unvisited--
	}
	return firstDirty, nil
}
